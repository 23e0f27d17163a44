package gate

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewChallengeShape(t *testing.T) {
	// The generator is random; check the contract over many draws.
	for i := 0; i < 200; i++ {
		c := NewChallenge()

		if c.answer < 0 {
			t.Fatalf("challenge %q has negative answer %d", c.Question, c.answer)
		}
		if c.answer > 18 {
			t.Fatalf("challenge %q answer %d exceeds single-digit range", c.Question, c.answer)
		}

		parts := strings.Fields(c.Question)
		if len(parts) != 3 {
			t.Fatalf("challenge question %q not of the form 'a op b'", c.Question)
		}
		a, _ := strconv.Atoi(parts[0])
		b, _ := strconv.Atoi(parts[2])
		switch parts[1] {
		case "+":
			if a+b != c.answer {
				t.Fatalf("%q: answer %d, want %d", c.Question, c.answer, a+b)
			}
		case "-":
			if a-b != c.answer {
				t.Fatalf("%q: answer %d, want %d", c.Question, c.answer, a-b)
			}
			if a < b {
				t.Fatalf("%q: smaller operand first in subtraction", c.Question)
			}
		default:
			t.Fatalf("unexpected operator in %q", c.Question)
		}
	}
}

func TestVerify(t *testing.T) {
	c := Challenge{Question: "7 + 7", answer: 14}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain correct", "14", true},
		{"correct with spaces", "  14 ", true},
		{"full-width digits", "１４", true},
		{"mixed width digits", "1４", true},
		{"wrong answer", "15", false},
		{"empty input", "", false},
		{"non-numeric input", "juu-yon", false},
		{"negative sign", "-14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Verify(tt.input); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVerifyUnlimitedRetries(t *testing.T) {
	c := Challenge{Question: "3 - 1", answer: 2}

	// Repeated failures never lock the challenge out.
	for i := 0; i < 10; i++ {
		if c.Verify("99") {
			t.Fatal("wrong answer accepted")
		}
	}
	if !c.Verify("2") {
		t.Fatal("correct answer rejected after repeated failures")
	}
}
