package services

import (
	"errors"
	"strings"
)

var (
	// ErrAuthCodeRequired indicates a destructive operation was attempted
	// without the configured authorization code.
	ErrAuthCodeRequired = errors.New("authorization code is required for this operation")
	// ErrAuthCodeInvalid indicates the supplied authorization code does not
	// match the configured one.
	ErrAuthCodeInvalid = errors.New("authorization code does not match")
)

// checkDeleteAuthCode enforces the delete authorization code before any
// repository call is made. An empty configured code disables the check.
func checkDeleteAuthCode(configured, provided string) error {
	if configured == "" {
		return nil
	}
	if strings.TrimSpace(provided) == "" {
		return ErrAuthCodeRequired
	}
	if provided != configured {
		return ErrAuthCodeInvalid
	}
	return nil
}
