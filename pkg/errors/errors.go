// Package errors defines the error vocabulary shared across the satdl
// pipeline. Errors fall into four groups: configuration errors raised before
// any I/O, format errors raised when a filename or timestamp does not parse,
// transport errors scoped to a failing remote path, and repository conflicts.
package errors

import "fmt"

// Common error types.
var (
	// Configuration errors.
	ErrInvalidToken        = fmt.Errorf("invalid token value")
	ErrInvalidCombination  = fmt.Errorf("invalid token combination")
	ErrUnsupportedBackend  = fmt.Errorf("unsupported backend")
	ErrStartTimeRequired   = fmt.Errorf("start time must be provided")
	ErrInvalidTimeWindow   = fmt.Errorf("end time precedes start time")
	ErrToleranceOutOfRange = fmt.Errorf("time tolerance out of range")

	// Config file errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")

	// Format errors.
	ErrFilenameFormat = fmt.Errorf("filename does not match the product pattern")
	ErrTimestampParse = fmt.Errorf("timestamp does not parse")

	// Transport errors.
	ErrUnreachable     = fmt.Errorf("remote endpoint is unreachable")
	ErrListingFailed   = fmt.Errorf("failed to list remote directory")
	ErrRetrievalFailed = fmt.Errorf("failed to retrieve remote file")

	// Cache errors.
	ErrCacheMiss = fmt.Errorf("directory not present in cache")

	// Repository errors.
	ErrFileExists   = fmt.Errorf("file already exists in repository")
	ErrFileNotFound = fmt.Errorf("file does not exist in repository")
	ErrNotDirectory = fmt.Errorf("path is not a directory")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
