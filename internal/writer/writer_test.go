package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

func mustWrite(t *testing.T, v model.Value, opts model.Options) string {
	t.Helper()
	text, err := Write(v, opts)
	require.NoError(t, err)
	return text
}

func TestWriteAtoms(t *testing.T) {
	assert.Equal(t, "null", mustWrite(t, model.Null, model.Options{}))
	assert.Equal(t, "true", mustWrite(t, model.Bool(true), model.Options{}))
	assert.Equal(t, "123", mustWrite(t, model.Int(123), model.Options{}))
	assert.Equal(t, "aaa", mustWrite(t, model.Str("aaa"), model.Options{}))
}

func TestWriteStringNeedsQuoting(t *testing.T) {
	assert.Equal(t, "'true'", mustWrite(t, model.Str("true"), model.Options{}))
	assert.Equal(t, "'123'", mustWrite(t, model.Str("123"), model.Options{}))
	assert.Equal(t, "''", mustWrite(t, model.Str(""), model.Options{}))
}

func TestWriteSpaceAndUnsafe(t *testing.T) {
	assert.Equal(t, "b+c", mustWrite(t, model.Str("b c"), model.Options{}))
	assert.Equal(t, "b%24c", mustWrite(t, model.Str("b$c"), model.Options{}))
}

func TestWriteComposites(t *testing.T) {
	d := model.NewDict()
	d.Set(model.Str("a"), model.Int(1))
	assert.Equal(t, "(a:1)", mustWrite(t, d, model.Options{}))

	assert.Equal(t, "()", mustWrite(t, model.NewDict(), model.Options{}))
	assert.Equal(t, "()", mustWrite(t, model.NewList(), model.Options{}))

	list := model.NewList(model.Int(1), model.NewList(model.Int(2)))
	assert.Equal(t, "(1,(2))", mustWrite(t, list, model.Options{}))
}

func TestWriteDistinguishEmptyListDict(t *testing.T) {
	opts := model.Options{DistinguishEmptyListDict: true}
	assert.Equal(t, "()", mustWrite(t, model.NewList(), opts))
	assert.Equal(t, "(:)", mustWrite(t, model.NewDict(), opts))
}

func TestWriteImpliedForms(t *testing.T) {
	assert.Equal(t, "", mustWrite(t, model.NewList(), model.Options{ImpliedList: true}))
	assert.Equal(t, "", mustWrite(t, model.NewDict(), model.Options{ImpliedDict: true}))

	list := model.NewList(model.Int(1), model.Int(2))
	assert.Equal(t, "1,2", mustWrite(t, list, model.Options{ImpliedList: true}))
}

func TestWriteAQFStructuralEscape(t *testing.T) {
	opts := model.Options{AQF: true}
	assert.Equal(t, "a!,b", mustWrite(t, model.Str("a,b"), opts))
	assert.Equal(t, "!e", mustWrite(t, model.Str(""), opts))
	assert.Equal(t, "!true", mustWrite(t, model.Str("true"), opts))
	assert.Equal(t, "!123", mustWrite(t, model.Str("123"), opts))
}

func TestWriteAQFNoQuoteCharNeeded(t *testing.T) {
	opts := model.Options{AQF: true}
	text := mustWrite(t, model.Str("hello world"), opts)
	assert.NotContains(t, text, "'")
	assert.Equal(t, "hello+world", text)
}
