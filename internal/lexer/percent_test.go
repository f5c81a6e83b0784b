package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePercentRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		wantText string
		wantPos  int
		wantErr  bool
	}{
		{"single byte", "%41", 0, "A", 3, false},
		{"run of three", "%45%6e%67", 0, "Eng", 9, false},
		{"lowercase hex", "%2e", 0, ".", 3, false},
		{"stops at non-percent", "%41x", 0, "A", 3, false},
		{"invalid hex digit", "%4g", 0, "", 0, true},
		{"truncated at end", "%4", 0, "", 0, true},
		{"invalid utf8", "%ff", 0, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, pos, err := DecodePercentRun(tt.input, tt.pos)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestEncodePercent(t *testing.T) {
	alwaysOnly := func(b byte) bool { return IsAlwaysSafe(b) || (b >= 'a' && b <= 'z') }

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"space becomes plus", "a b", "a+b"},
		{"unsafe byte escaped", "a!b", "a%21b"},
		{"already safe bytes untouched", "a-b_c", "a-b_c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodePercent(tt.in, alwaysOnly))
		})
	}
}

func TestCharset(t *testing.T) {
	assert.True(t, IsUnencoded('A'))
	assert.True(t, IsUnencoded('9'))
	assert.True(t, IsUnencoded('!'))
	assert.False(t, IsUnencoded('('))
	assert.True(t, IsStructural('('))
	assert.True(t, IsStructural(':'))
	assert.False(t, IsStructural('A'))
	assert.True(t, IsAlwaysSafe('-'))
	assert.False(t, IsAlwaysSafe('!'))
}
