// Package rotator implements a cyclic shift over the 26 letters of the Latin alphabet.
package rotator

import (
	"fmt"
	"strings"
)

const alphabetSize = 26

// Index returns the zero-based position of an ASCII letter, ignoring case.
// It panics when r is not an ASCII letter, callers are expected to check first.
func Index(r rune) int {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r - 'a')
	case 'A' <= r && r <= 'Z':
		return int(r - 'A')
	}
	panic(fmt.Sprintf("rotator: %q is not an ASCII letter", r))
}

// Letter is the inverse of Index.
func Letter(i int, upper bool) rune {
	if upper {
		return 'A' + rune(i)
	}
	return 'a' + rune(i)
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

type Rotator struct {
	shift int
}

func New(shift int) Rotator {
	// reduce up front so index+shift can't overflow
	return Rotator{shift: shift % alphabetSize}
}

// Shift is the configured shift reduced into [0, 25].
func (rotator Rotator) Shift() int {
	return (rotator.shift + alphabetSize) % alphabetSize
}

// Inverse returns the rotator that undoes this one.
func (rotator Rotator) Inverse() Rotator {
	return New(alphabetSize - rotator.Shift())
}

func (rotator Rotator) Rot(r rune) rune {
	if !isLetter(r) {
		return r
	}

	index := ((Index(r)+rotator.shift)%alphabetSize + alphabetSize) % alphabetSize
	return Letter(index, isUpper(r))
}

func (rotator Rotator) RotString(s string) string {
	return strings.Map(rotator.Rot, s)
}
