package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdleonard/jsonurl-go/internal/lexer"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in      string
		ok      bool
		isFloat bool
	}{
		{"0", true, false},
		{"123", true, false},
		{"0123", true, false},
		{"-0123", true, false},
		{"-1", true, false},
		{"1.5", true, true},
		{"012.5", true, true},
		{"1e3", true, true},
		{"1E-3", true, true},
		{"-1.5e+10", true, true},
		{"", false, false},
		{"-", false, false},
		{".5", false, false},
		{"1.", false, false},
		{"1e", false, false},
		{"1e+", false, false},
		{"01a", false, false},
		{"1 ", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			isFloat, ok := lexer.ScanNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.isFloat, isFloat)
			}
		})
	}
}
