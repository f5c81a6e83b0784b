package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"empty is valid", Options{}, false},
		{"implied list alone", Options{ImpliedList: true}, false},
		{"implied dict alone", Options{ImpliedDict: true}, false},
		{"both implied is invalid", Options{ImpliedList: true, ImpliedDict: true}, true},
		{"safe char allowed non-AQF", Options{Safe: "$"}, false},
		{"quote not allowed non-AQF", Options{Safe: "'"}, true},
		{"quote allowed under AQF", Options{AQF: true, Safe: "'"}, false},
		{"structural char never allowed", Options{AQF: true, Safe: "("}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOptionsIsSafe(t *testing.T) {
	o := Options{Safe: "$@"}
	assert.True(t, o.IsSafe('$'))
	assert.True(t, o.IsSafe('@'))
	assert.False(t, o.IsSafe('!'))
}
