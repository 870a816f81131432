package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePNRFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		pnr := GeneratePNR()
		assert.Len(t, pnr, 10)
		assert.True(t, IsValidPNR(pnr), "generated pnr %q should be valid", pnr)
		// Never zero-padded: the range starts at 1000000000.
		assert.NotEqual(t, byte('0'), pnr[0])
	}
}

func TestIsValidPNR(t *testing.T) {
	tests := []struct {
		pnr   string
		valid bool
	}{
		{"1234567890", true},
		{"9999999999", true},
		{"123456789", false},
		{"12345678901", false},
		{"", false},
		{"12345abcde", false},
		{"12345 7890", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.valid, IsValidPNR(test.pnr), "pnr %q", test.pnr)
	}
}

func TestGenerateFoodOrderIDFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GenerateFoodOrderID()
		assert.True(t, strings.HasPrefix(id, "FO-"))
		assert.Len(t, id, 11)
		for _, r := range id[3:] {
			assert.True(t, r >= '0' && r <= '9', "order id %q", id)
		}
	}
}
