package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError is returned for request payloads and parameters the client has to fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Validate checks the validate struct tags of v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fe.Namespace(), fe.Tag()))
		}
	}
	return &ValidationError{Message: strings.Join(msgs, "; ")}
}

// DecodeJSONBody decodes a JSON request body into dst and validates it.
func DecodeJSONBody(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != ContentType.JSON {
		return NewValidationError("invalid content type")
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewValidationError("invalid json body: %s", err)
	}

	return Validate(dst)
}

// RouteVarInt reads a positive integer path parameter.
func RouteVarInt(r *http.Request, name string) (int, error) {
	val := mux.Vars(r)[name]
	if val == "" {
		return 0, NewValidationError("%s empty", name)
	}
	id, err := strconv.Atoi(val)
	if err != nil || id < 1 {
		return 0, NewValidationError("%s must be a positive number", name)
	}
	return id, nil
}
