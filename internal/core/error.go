package core

import "github.com/pkg/errors"

// errors
var (
	ErrNilCore      = errors.New("easypass core is nil")
	ErrNilStore     = errors.New("password store is nil")
	ErrNilViper     = errors.New("viper instance is nil")
	ErrEmptyStore   = errors.New("store path is empty")
	ErrEmptySection = errors.New("store section is empty")
)
