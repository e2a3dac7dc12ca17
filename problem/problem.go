package problem

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Problem represents RFC 9457 Problem Details for HTTP APIs
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`

	// note is an internal-only debug annotation. It is logged by the
	// handler adapter but never serialized into the response body.
	note string
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// TypeBlank is the RFC 9457 default problem type. A Problem whose Type
// is empty is serialized with TypeBlank.
const TypeBlank = "about:blank"

// New creates a Problem with the given status and title. The type
// defaults to "about:blank" per RFC 9457.
func New(status int, title string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  title,
		Status: status,
	}
}

// Error implements the error interface
func (p *Problem) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WithType sets the machine-readable problem type URI.
func (p *Problem) WithType(uri string) *Problem {
	p.Type = uri
	return p
}

// WithDetail sets the human-readable detail string.
func (p *Problem) WithDetail(detail string) *Problem {
	p.Detail = detail
	return p
}

// WithInstance sets the URI identifying this occurrence of the problem.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// WithNote attaches an internal-only debug note. The note is logged by
// the Handler adapter and excluded from the serialized body.
func (p *Problem) WithNote(note string) *Problem {
	p.note = note
	return p
}

// Note returns the internal-only debug note.
func (p *Problem) Note() string {
	return p.note
}

// WriteJSON writes the problem as an application/problem+json response
func (p *Problem) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// MarshalJSON serializes the problem, substituting "about:blank" for an
// unset type so the body always carries a valid type member.
func (p *Problem) MarshalJSON() ([]byte, error) {
	type alias Problem
	out := alias(*p)
	if out.Type == "" {
		out.Type = TypeBlank
	}
	return json.Marshal(out)
}

// Common problem constructors

func NewBadRequest(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

func NewUnauthorized(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: detail,
	}
}

func NewForbidden(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Forbidden",
		Status: http.StatusForbidden,
		Detail: detail,
	}
}

func NewNotFound(resource string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
	}
}

func NewConflict(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
	}
}

// NewValidation builds a 422 problem from field errors. The detail
// names the first offending field so clients get a usable message even
// when they ignore the errors extension member.
func NewValidation(errors []FieldError) *Problem {
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	return &Problem{
		Type:   TypeBlank,
		Title:  "Validation Error",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Errors: errors,
	}
}

func NewContentTooLarge(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Content Too Large",
		Status: http.StatusRequestEntityTooLarge,
		Detail: detail,
	}
}

func NewUnsupportedMediaType(detail string) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Unsupported Media Type",
		Status: http.StatusUnsupportedMediaType,
		Detail: detail,
	}
}

func NewTooManyRequests(retryAfterSeconds int) *Problem {
	return &Problem{
		Type:   TypeBlank,
		Title:  "Too Many Requests",
		Status: http.StatusTooManyRequests,
		Detail: fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfterSeconds),
	}
}

func NewInternal(detail string) *Problem {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &Problem{
		Type:   TypeBlank,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}
