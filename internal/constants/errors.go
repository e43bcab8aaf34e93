package constants

import "errors"

// CLI configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidParameter = errors.New("parameters must be key=value")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrNoSecretInput    = errors.New("no client secret provided")
)
