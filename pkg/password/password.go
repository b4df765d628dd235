// Package password evaluates and generates passwords. Nothing here is
// enforced by the store; it only advises the user.
package password

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// constant rules
const (
	MinLength = 8
	MaxLength = 64

	// SafeScore is the minimal zxcvbn score of a password considered safe
	SafeScore = 3
)

// Strength is the result of a password evaluation
type Strength struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// IsSafe reports whether the score reaches SafeScore
func (s Strength) IsSafe() bool {
	return s.Score >= SafeScore
}

// Label returns a human-readable name of the score
func (s Strength) Label() string {
	switch s.Score {
	case 0:
		return "very weak"
	case 1:
		return "weak"
	case 2:
		return "fair"
	case 3:
		return "strong"
	default:
		return "very strong"
	}
}

// Evaluate scores a raw password, userInputs are words that make
// a password weaker when used in it (account name, username etc.)
func Evaluate(rawpass string, userInputs []string) Strength {
	result := zxcvbn.PasswordStrength(rawpass, userInputs)

	return Strength{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}

// EvaluatePasswordStrength evaluates password's strength by checking length,
// complexity, characters used etc.
func EvaluatePasswordStrength(rawpass []byte, userInputs []string) error {
	pl := len(rawpass)
	if pl < MinLength {
		return ErrShortPassword
	}

	if pl > MaxLength {
		return ErrLongPassword
	}

	// evaluating password's strength by the library's score
	if !Evaluate(string(rawpass), userInputs).IsSafe() {
		return ErrUnsafePassword
	}

	return nil
}
