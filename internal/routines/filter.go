package routines

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/2beens/routinehub/pkg"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Filter narrows the public routine catalog. All set criteria must hold.
type Filter struct {
	BodyParts       []string // any of
	Difficulty      string
	MinDuration     *int
	MaxDuration     *int
	EquipmentNeeded *bool
	Search          string // case-insensitive, title or description
	CreatorID       string
	Limit           int
	Offset          int
}

// ParseFilter reads the catalog query parameters.
func ParseFilter(q url.Values) (Filter, error) {
	var (
		f   Filter
		err error
	)

	if bodyParts := strings.TrimSpace(q.Get("bodyParts")); bodyParts != "" {
		for _, part := range strings.Split(bodyParts, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !slices.Contains(BodyParts, part) {
				return Filter{}, pkg.NewValidationError("invalid body part: %s", part)
			}
			if !slices.Contains(f.BodyParts, part) {
				f.BodyParts = append(f.BodyParts, part)
			}
		}
	}

	if difficulty := q.Get("difficulty"); difficulty != "" {
		if !slices.Contains(Difficulties, difficulty) {
			return Filter{}, pkg.NewValidationError("invalid difficulty: %s", difficulty)
		}
		f.Difficulty = difficulty
	}

	if f.MinDuration, err = optionalInt(q, "minDuration"); err != nil {
		return Filter{}, err
	}
	if f.MaxDuration, err = optionalInt(q, "maxDuration"); err != nil {
		return Filter{}, err
	}
	if f.MinDuration != nil && f.MaxDuration != nil && *f.MinDuration > *f.MaxDuration {
		return Filter{}, pkg.NewValidationError("minDuration greater than maxDuration")
	}

	switch equipment := q.Get("equipmentNeeded"); equipment {
	case "":
	case "true", "false":
		needed := equipment == "true"
		f.EquipmentNeeded = &needed
	default:
		return Filter{}, pkg.NewValidationError("parameter <equipmentNeeded> must be true or false")
	}

	f.Search = strings.TrimSpace(q.Get("search"))
	f.CreatorID = q.Get("creatorId")

	f.Limit, f.Offset, err = pkg.Pagination(q, DefaultListLimit, MaxListLimit)
	if err != nil {
		return Filter{}, err
	}

	return f, nil
}

func optionalInt(q url.Values, name string) (*int, error) {
	valStr := q.Get(name)
	if valStr == "" {
		return nil, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return nil, pkg.NewValidationError("parameter <%s> must be a non-negative number", name)
	}
	return &val, nil
}

// buildListQuery renders the catalog query for f; predicates are added only for set criteria.
func buildListQuery(f Filter) (string, []any) {
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	conditions := []string{"r.is_public = TRUE"}
	if len(f.BodyParts) > 0 {
		conditions = append(conditions, "r.body_parts && "+arg(f.BodyParts)+"::text[]")
	}
	if f.Difficulty != "" {
		conditions = append(conditions, "r.difficulty = "+arg(f.Difficulty))
	}
	if f.MinDuration != nil {
		conditions = append(conditions, "r.duration >= "+arg(*f.MinDuration))
	}
	if f.MaxDuration != nil {
		conditions = append(conditions, "r.duration <= "+arg(*f.MaxDuration))
	}
	if f.EquipmentNeeded != nil {
		conditions = append(conditions, "r.equipment_needed = "+arg(*f.EquipmentNeeded))
	}
	if f.Search != "" {
		p := arg("%" + pkg.EscapeLike(f.Search) + "%")
		conditions = append(conditions, "(r.title ILIKE "+p+" OR r.description ILIKE "+p+")")
	}
	if f.CreatorID != "" {
		conditions = append(conditions, "r.creator_id = "+arg(f.CreatorID))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT ` + SelectColumns() + `
		FROM routines r
		JOIN users u ON u.id = r.creator_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY r.rating DESC, r.total_saves DESC, r.id DESC
		LIMIT ` + arg(limit) + ` OFFSET ` + arg(f.Offset)

	return query, args
}
