package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no file is stored under the key.
var ErrNotFound = errors.New("file not found")

// ErrUnknownProvider builds the error for an unrecognized storage provider
// name in configuration.
func ErrUnknownProvider(provider string) error {
	return fmt.Errorf("unknown storage provider %q (expected \"local\" or \"minio\")", provider)
}
