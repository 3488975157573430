package patch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kharvol/tms/internal/errs"
)

func TestParse_ThreeStates(t *testing.T) {
	doc, err := Parse([]byte(`{"firstName":"X","lastName":null,"nickname":"null"}`))
	require.NoError(t, err)

	require.True(t, doc.Has("firstName"))
	require.False(t, doc.IsNull("firstName"))

	require.True(t, doc.Has("lastName"))
	require.True(t, doc.IsNull("lastName"))

	// the literal text "null" counts as null too
	require.True(t, doc.IsNull("nickname"))

	// absent is neither present nor null
	require.False(t, doc.Has("status"))
	require.False(t, doc.IsNull("status"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	require.Error(t, err)

	_, err = Parse([]byte(`{"a":`))
	require.Error(t, err)
}

func TestFields_Sorted(t *testing.T) {
	doc, err := Parse([]byte(`{"b":1,"a":2,"c":3}`))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, doc.Fields())
}

func TestDecode_SkipsNullFields(t *testing.T) {
	type target struct {
		First *string `json:"firstName"`
		Last  *string `json:"lastName"`
		Nick  *string `json:"nickname"`
	}

	doc, err := Parse([]byte(`{"firstName":"X","lastName":null,"nickname":"null"}`))
	require.NoError(t, err)

	var got target
	require.NoError(t, doc.Decode(&got))

	require.NotNil(t, got.First)
	require.Equal(t, "X", *got.First)
	// null and "null" both come back absent; clearing is the merger's job
	require.Nil(t, got.Last)
	require.Nil(t, got.Nick)
}

func TestDecode_UndecodableValueIsMalformed(t *testing.T) {
	type target struct {
		Age *int `json:"age"`
	}

	doc, err := Parse([]byte(`{"age":"not-a-number"}`))
	require.NoError(t, err)

	var got target
	require.ErrorIs(t, doc.Decode(&got), errs.ErrMalformedPatch)
}
