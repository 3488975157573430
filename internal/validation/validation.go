// Package validation evaluates declarative per-field constraints against
// transfer objects. Constraints carry validation groups so the same object
// type can have different mandatory-field rules per operation.
package validation

import (
	"context"
	"strings"
	"unicode"

	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/message"
)

// Group names a subset of constraints active for one operation.
type Group string

const (
	// Default constraints are evaluated on every operation.
	Default Group = "Default"
	// OnCreate constraints are evaluated when saving a new entity.
	OnCreate Group = "OnCreate"
	// OnUpdate constraints are evaluated on full updates.
	OnUpdate Group = "OnUpdate"
	// OnPatch constraints are evaluated against the post-merge object.
	OnPatch Group = "OnPatch"
)

// Check reports whether the object satisfies one constraint.
type Check[D any] func(d D) bool

type constraint[D any] struct {
	field  string
	code   string
	groups []Group
	check  Check[D]
}

// Rules is the constraint set for one transfer object type, defined once
// and evaluated against caller-supplied group sets.
type Rules[D any] struct {
	msg         *message.Service
	constraints []constraint[D]
}

// NewRules creates an empty constraint set resolving violation messages
// through msg.
func NewRules[D any](msg *message.Service) *Rules[D] {
	return &Rules[D]{msg: msg}
}

// Constraint registers a check for a field. A constraint with no explicit
// groups belongs to the always-active Default group.
func (r *Rules[D]) Constraint(field, code string, check Check[D], groups ...Group) *Rules[D] {
	if len(groups) == 0 {
		groups = []Group{Default}
	}
	r.constraints = append(r.constraints, constraint[D]{field: field, code: code, groups: groups, check: check})
	return r
}

// Validate evaluates every constraint whose groups intersect the requested
// set and returns the violations, empty on success.
func (r *Rules[D]) Validate(ctx context.Context, d D, groups ...Group) []errs.Violation {
	var violations []errs.Violation
	for _, c := range r.constraints {
		if !intersects(c.groups, groups) {
			continue
		}
		if c.check(d) {
			continue
		}
		violations = append(violations, errs.Violation{
			Field:   c.field,
			Code:    c.code,
			Message: r.msg.Get(ctx, c.code),
		})
	}
	return violations
}

func intersects(a, b []Group) bool {
	for _, ga := range a {
		for _, gb := range b {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

// NotBlank fails on a nil, empty or whitespace-only string.
func NotBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// MinLen passes on nil (absence is NotBlank's concern) and otherwise
// requires at least n characters.
func MinLen(s *string, n int) bool {
	return s == nil || len([]rune(*s)) >= n
}

// HasLowerUpperDigit passes on nil and otherwise requires at least one
// lower-case letter, one upper-case letter and one digit. The equivalent
// regular expression needs lookaheads, which Go's regexp does not support.
func HasLowerUpperDigit(s *string) bool {
	if s == nil {
		return true
	}
	var lower, upper, digit bool
	for _, r := range *s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
