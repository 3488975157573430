package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kharvol/tms/internal/message"
)

type form struct {
	Name   *string
	Secret *string
}

func str(s string) *string { return &s }

func testMessages() *message.Service {
	return message.NewService(message.Catalog{
		Tag: language.English,
		Messages: map[string]string{
			"form.name.blank":   "name must not be blank",
			"form.secret.blank": "secret must not be blank",
		},
	})
}

func testRules() *Rules[form] {
	return NewRules[form](testMessages()).
		Constraint("name", "form.name.blank", func(f form) bool { return NotBlank(f.Name) }).
		Constraint("secret", "form.secret.blank", func(f form) bool { return NotBlank(f.Secret) }, OnCreate)
}

func TestValidate_GroupSelection(t *testing.T) {
	ctx := context.Background()
	rules := testRules()
	f := form{Name: str("n")} // secret missing

	// OnCreate requires the secret
	violations := rules.Validate(ctx, f, OnCreate, Default)
	require.Len(t, violations, 1)
	require.Equal(t, "secret", violations[0].Field)
	require.Equal(t, "form.secret.blank", violations[0].Code)
	require.Equal(t, "secret must not be blank", violations[0].Message)

	// OnUpdate does not
	require.Empty(t, rules.Validate(ctx, f, OnUpdate, Default))
}

func TestValidate_DefaultGroupAlwaysActive(t *testing.T) {
	ctx := context.Background()
	rules := testRules()
	f := form{} // name missing: default-group constraint

	for _, group := range []Group{OnCreate, OnUpdate, OnPatch} {
		violations := rules.Validate(ctx, f, group, Default)
		fields := make([]string, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, v.Field)
		}
		require.Contains(t, fields, "name", "group %s", group)
	}
}

func TestValidate_OK(t *testing.T) {
	rules := testRules()
	f := form{Name: str("n"), Secret: str("s")}
	require.Empty(t, rules.Validate(context.Background(), f, OnCreate, Default))
}

func TestNotBlank(t *testing.T) {
	require.False(t, NotBlank(nil))
	require.False(t, NotBlank(str("")))
	require.False(t, NotBlank(str("   ")))
	require.True(t, NotBlank(str("x")))
}

func TestMinLen(t *testing.T) {
	require.True(t, MinLen(nil, 8), "absence is NotBlank's concern")
	require.False(t, MinLen(str("short"), 8))
	require.True(t, MinLen(str("长长长长长长长长"), 8), "runes, not bytes")
	require.True(t, MinLen(str("12345678"), 8))
}

func TestHasLowerUpperDigit(t *testing.T) {
	require.True(t, HasLowerUpperDigit(nil))
	require.True(t, HasLowerUpperDigit(str("Aa123456")))
	require.False(t, HasLowerUpperDigit(str("aa123456")))
	require.False(t, HasLowerUpperDigit(str("AA123456")))
	require.False(t, HasLowerUpperDigit(str("Aabcdefg")))
}
