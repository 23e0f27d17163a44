// Package gate implements the arithmetic challenge that guards parent-only
// actions. The challenge is a single-digit addition or subtraction with a
// non-negative result; verification tolerates full-width digit input from
// Japanese IMEs. There is no lockout, retries are unlimited.
package gate

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Challenge is one arithmetic problem.
type Challenge struct {
	Question string
	answer   int
}

// NewChallenge generates a random single-digit problem. Subtraction always
// puts the larger operand first so the answer is never negative.
func NewChallenge() Challenge {
	a := rand.Intn(9) + 1
	b := rand.Intn(9) + 1

	if rand.Intn(2) == 0 {
		return Challenge{
			Question: fmt.Sprintf("%d + %d", a, b),
			answer:   a + b,
		}
	}

	if a < b {
		a, b = b, a
	}
	return Challenge{
		Question: fmt.Sprintf("%d - %d", a, b),
		answer:   a - b,
	}
}

// Verify reports whether input answers the challenge. Full-width digits are
// normalized to half-width before parsing; unparseable input fails.
func (c Challenge) Verify(input string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(normalizeDigits(input)))
	if err != nil {
		return false
	}
	return n == c.answer
}

// Answer returns the expected answer. Exposed for display in tests and
// debugging tools, not for the child-facing UI.
func (c Challenge) Answer() int {
	return c.answer
}

// normalizeDigits maps full-width digits (U+FF10..U+FF19) to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return r - 0xFEE0
		}
		return r
	}, s)
}
