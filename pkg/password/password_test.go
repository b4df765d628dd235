package password_test

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/agubarev/easypass/pkg/password"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestEvaluatePassword(t *testing.T) {
	a := assert.New(t)

	err := password.EvaluatePasswordStrength([]byte("1234567"), []string{})
	a.Error(err)
	a.EqualError(password.ErrShortPassword, err.Error())

	// generating password which must be lenghtier than max allowed
	pass := make([]byte, password.MaxLength+1)
	_, err = rand.Read(pass)
	a.NoError(err)

	err = password.EvaluatePasswordStrength(pass, []string{})
	a.Error(err)
	a.EqualError(password.ErrLongPassword, err.Error())

	err = password.EvaluatePasswordStrength([]byte("12345678"), []string{})
	a.Error(err)
	a.EqualError(password.ErrUnsafePassword, err.Error())

	err = password.EvaluatePasswordStrength([]byte("s@fer!@()*!p@ssw0rd*!jahaajk8!*@^%"), []string{})
	a.NoError(err)
}

func TestEvaluate(t *testing.T) {
	a := assert.New(t)

	weak := password.Evaluate("password", nil)
	a.False(weak.IsSafe())
	a.Equal("very weak", weak.Label())

	strong := password.Evaluate("s@fer!@()*!p@ssw0rd*!jahaajk8!*@^%", nil)
	a.True(strong.IsSafe())
	a.True(strong.Entropy > weak.Entropy)
	a.NotEmpty(strong.CrackTime)
}

func TestGenerate(t *testing.T) {
	a := assert.New(t)

	p, err := password.Generate(password.DefaultLength, password.Alphanumeric)
	a.NoError(err)
	a.Len(p, password.DefaultLength)

	for _, r := range p {
		a.True(strings.ContainsRune(string(password.Alphanumeric), r))
	}

	// two generated passwords must differ
	p2, err := password.Generate(password.DefaultLength, password.Alphanumeric)
	a.NoError(err)
	a.NotEqual(p, p2)

	p, err = password.Generate(password.MaxLength, password.WithSymbols)
	a.NoError(err)
	a.Len(p, password.MaxLength)
	a.NoError(password.EvaluatePasswordStrength([]byte(p), nil))

	_, err = password.Generate(password.MinLength-1, password.Alphanumeric)
	a.Equal(password.ErrInvalidLength, errors.Cause(err))

	_, err = password.Generate(password.MaxLength+1, password.Alphanumeric)
	a.Equal(password.ErrInvalidLength, errors.Cause(err))

	_, err = password.Generate(password.DefaultLength, "")
	a.Equal(password.ErrEmptyCharset, err)
}
