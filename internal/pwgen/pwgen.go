// Package pwgen builds character sets from category flags and samples
// passwords from them.
//
// The default index source is math/rand/v2, which is NOT cryptographically
// secure. Passwords produced by this package must not protect anything of
// value.
package pwgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers   = "1234567890"
	Symbols   = "!@#$%^&*()<>?[]=-+_/,?:'|"

	All = Lowercase + Uppercase + Numbers + Symbols
)

// ErrNoCharset is returned by Charset when the customization string names
// no known category.
var ErrNoCharset = errors.New("no valid character types specified, use --customize with a, c, n, s, or l")

// IndexFunc returns a uniformly distributed index in [0, n). n is always > 0.
type IndexFunc func(n int) int

// DefaultIndex is the general-purpose pseudo-random source used when no
// IndexFunc is supplied.
func DefaultIndex(n int) int {
	return rand.IntN(n)
}

// Charset derives the character set for a customization string.
//
// An "a" anywhere selects All and short-circuits every other flag. Otherwise
// lowercase is included for "l" or for an empty string, followed by
// uppercase ("c"), numbers ("n") and symbols ("s") in that order. Unknown
// characters are ignored.
func Charset(customize string) (string, error) {
	if strings.Contains(customize, "a") {
		return All, nil
	}
	var sb strings.Builder
	if customize == "" || strings.Contains(customize, "l") {
		sb.WriteString(Lowercase)
	}
	if strings.Contains(customize, "c") {
		sb.WriteString(Uppercase)
	}
	if strings.Contains(customize, "n") {
		sb.WriteString(Numbers)
	}
	if strings.Contains(customize, "s") {
		sb.WriteString(Symbols)
	}
	if sb.Len() == 0 {
		return "", ErrNoCharset
	}
	return sb.String(), nil
}

// Generate returns a password of n characters, each picked independently
// from charset using idx. A nil idx means DefaultIndex.
func Generate(n int, charset string, idx IndexFunc) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", n)
	}
	if charset == "" {
		return "", ErrNoCharset
	}
	if idx == nil {
		idx = DefaultIndex
	}
	pw := make([]byte, n)
	for i := range pw {
		j := idx(len(charset))
		if j < 0 || j >= len(charset) {
			return "", fmt.Errorf("BUG: index source returned %d, want [0, %d)", j, len(charset))
		}
		pw[i] = charset[j]
	}
	return string(pw), nil
}
