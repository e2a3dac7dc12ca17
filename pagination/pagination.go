package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/forgo/batteries/problem"
)

// Defaults and bounds for parsed pagination parameters.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

var (
	// ErrPageTooSmall indicates a page number below 1.
	ErrPageTooSmall = errors.New("page must be greater than 0")

	// ErrSizeTooSmall indicates a page size below 1.
	ErrSizeTooSmall = errors.New("size must be greater than 0")
)

// PageSize holds 1-based page/size pagination parameters.
type PageSize struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// OffsetLimit holds offset/limit pagination parameters.
type OffsetLimit struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// OffsetLimit converts page/size into the equivalent offset/limit pair.
// The receiver is assumed validated; see ParsePageSize.
func (p PageSize) OffsetLimit() (offset, limit int) {
	return (p.Page - 1) * p.Size, p.Size
}

// PageSizeToOffsetLimit converts a page/size pair to offset/limit with
// range validation.
func PageSizeToOffsetLimit(page, size int) (offset, limit int, err error) {
	if page < 1 {
		return 0, 0, ErrPageTooSmall
	}
	if size < 1 {
		return 0, 0, ErrSizeTooSmall
	}
	return (page - 1) * size, size, nil
}

// ParsePageSize parses "page" and "size" from query parameters.
// Missing parameters take DefaultPage/DefaultSize. Violations return a
// *problem.Problem validation error naming the offending parameter.
func ParsePageSize(q url.Values) (PageSize, error) {
	p := PageSize{Page: DefaultPage, Size: DefaultSize}

	var fieldErrs []problem.FieldError

	if v, ok, err := parseIntParam(q, "page"); err != nil {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "page", Message: err.Error()})
	} else if ok {
		p.Page = v
	}
	if v, ok, err := parseIntParam(q, "size"); err != nil {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "size", Message: err.Error()})
	} else if ok {
		p.Size = v
	}

	if p.Page < 1 {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "page", Message: ErrPageTooSmall.Error()})
	}
	if p.Size < 1 {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "size", Message: ErrSizeTooSmall.Error()})
	} else if p.Size > MaxSize {
		fieldErrs = append(fieldErrs, problem.FieldError{
			Field:   "size",
			Message: fmt.Sprintf("size must be at most %d", MaxSize),
		})
	}

	if len(fieldErrs) > 0 {
		return PageSize{}, problem.NewValidation(fieldErrs)
	}
	return p, nil
}

// ParseOffsetLimit parses "offset" and "limit" from query parameters.
// Missing parameters take offset 0 and DefaultSize. Violations return a
// *problem.Problem validation error naming the offending parameter.
func ParseOffsetLimit(q url.Values) (OffsetLimit, error) {
	p := OffsetLimit{Offset: 0, Limit: DefaultSize}

	var fieldErrs []problem.FieldError

	if v, ok, err := parseIntParam(q, "offset"); err != nil {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "offset", Message: err.Error()})
	} else if ok {
		p.Offset = v
	}
	if v, ok, err := parseIntParam(q, "limit"); err != nil {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "limit", Message: err.Error()})
	} else if ok {
		p.Limit = v
	}

	if p.Offset < 0 {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "offset", Message: "offset must not be negative"})
	}
	if p.Limit < 1 {
		fieldErrs = append(fieldErrs, problem.FieldError{Field: "limit", Message: "limit must be greater than 0"})
	} else if p.Limit > MaxSize {
		fieldErrs = append(fieldErrs, problem.FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must be at most %d", MaxSize),
		})
	}

	if len(fieldErrs) > 0 {
		return OffsetLimit{}, problem.NewValidation(fieldErrs)
	}
	return p, nil
}

func parseIntParam(q url.Values, name string) (value int, present bool, err error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer", name)
	}
	return v, true, nil
}
