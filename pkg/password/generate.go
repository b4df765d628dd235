package password

import (
	"strings"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/pkg/errors"
)

// DefaultLength is the length of generated passwords unless specified
const DefaultLength = 20

// Charset is a set of characters a password is generated from
type Charset string

// predefined charsets
const (
	Alphanumeric Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Symbols      Charset = "!@#$%^&*()-_=+[]{}<>?,./~"
	WithSymbols          = Alphanumeric + Symbols
)

// Generate produces a random password of a given length
// NOTE: every character is drawn uniformly from the charset
func Generate(length int, charset Charset) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", errors.Wrapf(ErrInvalidLength, "%d is out of [%d, %d]", length, MinLength, MaxLength)
	}

	alphabet := []rune(string(charset))
	if len(alphabet) == 0 {
		return "", ErrEmptyCharset
	}

	var b strings.Builder
	b.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := util.RandomIndex(len(alphabet))
		if err != nil {
			return "", errors.Wrap(err, "failed to generate password")
		}

		b.WriteRune(alphabet[idx])
	}

	return b.String(), nil
}
