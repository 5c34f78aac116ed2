package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R-001", "R-001"},
		{"  R-001  ", "R-001"},
		{"R   001", "R 001"},
		{"\tSteel \n rods ", "Steel rods"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.in), "input %q", tt.in)
	}
}
