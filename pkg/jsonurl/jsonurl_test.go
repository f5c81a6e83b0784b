package jsonurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdleonard/jsonurl-go/pkg/jsonurl"
)

func TestRoundTrip(t *testing.T) {
	d := jsonurl.NewDict()
	d.Set(jsonurl.Str("age"), jsonurl.Int(64))
	name := jsonurl.NewDict()
	name.Set(jsonurl.Str("first"), jsonurl.Str("Fred"))
	d.Set(jsonurl.Str("name"), name)

	text, err := jsonurl.Encode(d)
	require.NoError(t, err)

	back, err := jsonurl.Decode(text)
	require.NoError(t, err)
	assert.True(t, jsonurl.Equal(d, back))
}

func TestDecodeMatchesSpecExamples(t *testing.T) {
	v, err := jsonurl.Decode("(age:64,name:(first:Fred))")
	require.NoError(t, err)
	d, ok := jsonurl.AsDict(v)
	require.True(t, ok)

	age, ok := d.Get(jsonurl.Str("age"))
	require.True(t, ok)
	i, _ := jsonurl.AsInt(age)
	assert.Equal(t, int64(64), i)
}

func TestAQFRoundTripWithStructuralChars(t *testing.T) {
	v := jsonurl.Str("a,b:c(d)")
	text, err := jsonurl.Encode(v, jsonurl.WithAQF())
	require.NoError(t, err)

	back, err := jsonurl.Decode(text, jsonurl.WithAQF())
	require.NoError(t, err)
	assert.True(t, jsonurl.Equal(v, back))
}

func TestMutuallyExclusiveOptionsRejected(t *testing.T) {
	_, err := jsonurl.Decode("", jsonurl.WithImpliedList(), jsonurl.WithImpliedDict())
	require.Error(t, err)
	var oe *jsonurl.OptionError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, jsonurl.ErrMutuallyExclusiveOptions, oe.Code)
}

func TestUnsafeCharInSafeSetRejected(t *testing.T) {
	_, err := jsonurl.Encode(jsonurl.Str("x"), jsonurl.WithSafe("("))
	require.Error(t, err)
	var oe *jsonurl.OptionError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, jsonurl.ErrUnsafeCharInSafeSet, oe.Code)
}

func TestWithSafeLeavesCharUnencoded(t *testing.T) {
	text, err := jsonurl.Encode(jsonurl.Str("a$b"), jsonurl.WithSafe("$"))
	require.NoError(t, err)
	assert.Equal(t, "a$b", text)
}
