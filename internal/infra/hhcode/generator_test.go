package hhcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Format(t *testing.T) {
	gen := NewGenerator()

	code := gen.Generate()
	assert.True(t, strings.HasPrefix(code, "HK-"))
	assert.Len(t, code, len("HK-")+codeDigits)

	for _, r := range strings.TrimPrefix(code, "HK-") {
		assert.Contains(t, "0123456789ABCDEFGHJKMNPQRSTVWXYZ", string(r))
	}
}

func TestGenerator_Uniqueness(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		code := gen.Generate()
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
