package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("random bytes length must be positive")
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string.
func GenerateRandomString(s int) (string, error) {
	b, err := GenerateRandomBytes(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// EscapeLike escapes LIKE/ILIKE wildcards so the term is matched literally.
func EscapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// QueryInt parses an optional integer query param, returning def when it is missing.
func QueryInt(q url.Values, name string, def int) (int, error) {
	valStr := q.Get(name)
	if valStr == "" {
		return def, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, NewValidationError("parameter <%s> is not a number", name)
	}
	return val, nil
}

// Pagination parses limit and offset query params.
// limit falls back to defLimit and is capped at maxLimit.
func Pagination(q url.Values, defLimit, maxLimit int) (limit, offset int, err error) {
	limit, err = QueryInt(q, "limit", defLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = QueryInt(q, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 {
		return 0, 0, NewValidationError("parameter <limit> must be greater than 0")
	}
	if offset < 0 {
		return 0, 0, NewValidationError("parameter <offset> must not be negative")
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, offset, nil
}
