// Package validate applies declarative per-field rules to inbound payloads
// before any business logic runs. Rules are pure predicates over the
// submitted values; Apply accumulates every violation instead of stopping
// at the first one.
package validate

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-records/internal/model"
)

// Values holds the submitted fields of a request. A key is present only if
// the caller actually supplied that field, which is what lets the same
// rules distinguish "missing" from "empty" on partial updates.
type Values map[string]string

func (v Values) Has(field string) bool {
	_, ok := v[field]
	return ok
}

type Rule func(v Values) *model.FieldError

// Apply evaluates every rule against v and returns the accumulated
// violations. An empty result means the payload passed.
func Apply(v Values, rules ...Rule) []model.FieldError {
	var errs []model.FieldError
	for _, rule := range rules {
		if fe := rule(v); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

func Required(field string) Rule {
	return func(v Values) *model.FieldError {
		if strings.TrimSpace(v[field]) == "" {
			return &model.FieldError{Field: field, Message: field + " is required"}
		}
		return nil
	}
}

func Email(field string) Rule {
	return func(v Values) *model.FieldError {
		if !validEmail(v[field]) {
			return &model.FieldError{Field: field, Message: "valid email is required"}
		}
		return nil
	}
}

func MinLen(field string, n int) Rule {
	return func(v Values) *model.FieldError {
		if len(v[field]) < n {
			return &model.FieldError{Field: field, Message: field + " min " + strconv.Itoa(n) + " chars"}
		}
		return nil
	}
}

func Numeric(field string) Rule {
	return func(v Values) *model.FieldError {
		if _, err := strconv.ParseFloat(strings.TrimSpace(v[field]), 64); err != nil {
			return &model.FieldError{Field: field, Message: field + " must be a number"}
		}
		return nil
	}
}

func ISODate(field string) Rule {
	return func(v Values) *model.FieldError {
		if !validISODate(v[field]) {
			return &model.FieldError{Field: field, Message: field + " must be an ISO date"}
		}
		return nil
	}
}

// UUID checks the fixed-format opaque store identifier.
func UUID(field string) Rule {
	return func(v Values) *model.FieldError {
		if _, err := uuid.Parse(strings.TrimSpace(v[field])); err != nil {
			return &model.FieldError{Field: field, Message: "invalid employee id"}
		}
		return nil
	}
}

// AnyOf requires at least one of the named fields to be non-empty.
func AnyOf(message string, fields ...string) Rule {
	return func(v Values) *model.FieldError {
		for _, field := range fields {
			if strings.TrimSpace(v[field]) != "" {
				return nil
			}
		}
		return &model.FieldError{Field: strings.Join(fields, "|"), Message: message}
	}
}

// Optional applies rule only when the field was supplied, so partial
// updates skip checks for fields the caller did not send.
func Optional(field string, rule Rule) Rule {
	return func(v Values) *model.FieldError {
		if !v.Has(field) {
			return nil
		}
		return rule(v)
	}
}

func validEmail(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	parsed, err := mail.ParseAddress(trimmed)
	return err == nil && parsed.Address == trimmed
}

func validISODate(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	if _, err := time.Parse(model.DateOnly, trimmed); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, trimmed)
	return err == nil
}
