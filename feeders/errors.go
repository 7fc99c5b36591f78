package feeders

import (
	"errors"
	"fmt"
)

// Static error definitions for feeders
var (
	ErrEnvInvalidStructure     = errors.New("env: invalid structure")
	ErrEnvEmptyPrefixAndSuffix = errors.New("env: prefix or suffix cannot be empty")
	ErrEnvFieldCannotBeSet     = errors.New("env: field cannot be set")
	ErrEnvConversion           = errors.New("env: cannot convert value")

	ErrFileRead      = errors.New("cannot read config file")
	ErrFileDecode    = errors.New("cannot decode config file")
	ErrUnknownFormat = errors.New("unknown config file format")
)

func wrapFileReadError(path string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrFileRead, path, err)
}

func wrapFileDecodeError(format, path string, err error) error {
	return fmt.Errorf("%w (%s) %s: %w", ErrFileDecode, format, path, err)
}
