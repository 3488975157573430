// Package message resolves message codes to localized, caller-facing text.
// The caller's locale travels in the context; resolution never affects
// control flow, only the rendered error strings.
package message

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

type localeKey struct{}

// WithLocale returns a context carrying the caller's locale.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// Service maps message codes to per-locale templates. Unknown codes
// resolve to the code itself so a missing translation never hides an error.
type Service struct {
	matcher  language.Matcher
	tags     []language.Tag
	catalogs []map[string]string
}

// NewService builds a Service from the given catalogs. The first catalog's
// locale is the default for callers without a locale in context.
func NewService(catalogs ...Catalog) *Service {
	s := &Service{}
	for _, c := range catalogs {
		s.tags = append(s.tags, c.Tag)
		s.catalogs = append(s.catalogs, c.Messages)
	}
	s.matcher = language.NewMatcher(s.tags)
	return s
}

// Catalog is a set of message templates for one locale.
type Catalog struct {
	Tag      language.Tag
	Messages map[string]string
}

// Get resolves code for the locale in ctx and formats it with args.
func (s *Service) Get(ctx context.Context, code string, args ...any) string {
	_, idx, _ := s.matcher.Match(s.locale(ctx))
	template, ok := s.catalogs[idx][code]
	if !ok {
		return code
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

func (s *Service) locale(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey{}).(language.Tag); ok {
		return tag
	}
	return s.tags[0]
}
