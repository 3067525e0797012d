// Package invite generates and normalizes family invitation codes.
// Codes are six uppercase alphanumeric characters rendered as XXX-XXX.
package invite

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 6

var codePattern = regexp.MustCompile(`^[A-Z0-9]{3}-[A-Z0-9]{3}$`)

var rawPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// Generate produces a random invitation code in XXX-XXX form. Uniqueness
// across families is the storage layer's job; callers regenerate on a
// duplicate-key conflict.
func Generate() (string, error) {
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf[:3]) + "-" + string(buf[3:]), nil
}

// Normalize strips whitespace, upper-cases, and inserts the separating dash
// when the result is exactly six contiguous alphanumeric characters.
// Anything else passes through stripped and upper-cased but otherwise
// untouched; rejecting bad input is IsValidFormat's job.
func Normalize(input string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	stripped = strings.ToUpper(stripped)

	if rawPattern.MatchString(stripped) {
		return stripped[:3] + "-" + stripped[3:]
	}
	return stripped
}

// IsValidFormat reports whether the input normalizes to XXX-XXX.
func IsValidFormat(input string) bool {
	return codePattern.MatchString(Normalize(input))
}
