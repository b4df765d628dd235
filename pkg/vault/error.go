package vault

import "github.com/pkg/errors"

// errors
var (
	ErrNilStore           = errors.New("password store is nil")
	ErrEmptyPath          = errors.New("store file path is empty")
	ErrEmptySection       = errors.New("store section name is empty")
	ErrFileNotFound       = errors.New("store file not found")
	ErrParse              = errors.New("failed to parse store file")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrEmptyAccountName   = errors.New("account name is empty")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidPassword    = errors.New("invalid password")
)
