package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

func TestAQFSpecialAtoms(t *testing.T) {
	opts := model.Options{AQF: true}

	s, ok := model.AsString(mustParse(t, "!e", opts))
	require.True(t, ok)
	assert.Equal(t, "", s)

	s, ok = model.AsString(mustParse(t, "!null", opts))
	require.True(t, ok)
	assert.Equal(t, "null", s)

	s, ok = model.AsString(mustParse(t, "!true", opts))
	require.True(t, ok)
	assert.Equal(t, "true", s)

	s, ok = model.AsString(mustParse(t, "!false", opts))
	require.True(t, ok)
	assert.Equal(t, "false", s)
}

func TestAQFLeadingBangForcesString(t *testing.T) {
	opts := model.Options{AQF: true}
	s, ok := model.AsString(mustParse(t, "!123", opts))
	require.True(t, ok)
	assert.Equal(t, "123", s)

	s, ok = model.AsString(mustParse(t, "1e!23", opts))
	require.True(t, ok)
	assert.Equal(t, "1e23", s)
}

func TestAQFPlusEscapeIsLiteralPlus(t *testing.T) {
	opts := model.Options{AQF: true}
	s, ok := model.AsString(mustParse(t, "a!+b", opts))
	require.True(t, ok)
	assert.Equal(t, "a+b", s, "!+ must decode to a literal plus, not a space")
}

func TestAQFStructuralEscapes(t *testing.T) {
	opts := model.Options{AQF: true}
	s, ok := model.AsString(mustParse(t, "a!,b!:c", opts))
	require.True(t, ok)
	assert.Equal(t, "a,b:c", s)
}

func TestAQFTrailingBangIsError(t *testing.T) {
	opts := model.Options{AQF: true}
	_, err := Parse("abc!", opts)
	require.Error(t, err)
	var pe *model.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, model.ErrTrailingBang, pe.Code)
}

func TestAQFInvalidEscapeIsError(t *testing.T) {
	opts := model.Options{AQF: true}
	_, err := Parse("ab!xcd", opts)
	require.Error(t, err)
	var pe *model.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, model.ErrInvalidEscape, pe.Code)
}

func TestAQFPartialPreDecode(t *testing.T) {
	opts := model.Options{AQF: true}
	v := mustParse(t, "%28a%2Cb%29", opts)
	items, ok := model.AsList(v)
	require.True(t, ok)
	require.Len(t, items, 2)
}
