package password

import "github.com/pkg/errors"

// errors
var (
	ErrShortPassword  = errors.New("password is too short")
	ErrLongPassword   = errors.New("password is too long")
	ErrUnsafePassword = errors.New("password is too unsafe")
	ErrInvalidLength  = errors.New("invalid password length")
	ErrEmptyCharset   = errors.New("charset is empty")
)
