// Package hhcode generates household codes (so ho khau).
package hhcode

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"

	"hokhau/internal/domain/service"
)

const (
	codePrefix = "HK-"
	codeDigits = 8
)

// Crockford alphabet, avoids the ambiguous I/L/O/U.
var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

type generator struct{}

// NewGenerator is the constructor for the household code generator.
func NewGenerator() service.HouseholdCodeGenerator {
	return &generator{}
}

// Generate returns a new household code such as "HK-7F3KQ2MD". Uniqueness is
// enforced by the so_ho_khau unique column; the 40 random bits here make a
// collision within one ward's worth of households vanishingly unlikely.
func (g *generator) Generate() string {
	id := uuid.New()
	encoded := crockford.EncodeToString(id[:])

	return codePrefix + strings.ToUpper(encoded[:codeDigits])
}
