package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCache is returned when a cache file has the wrong magic, version or checksum
	ErrBadCache = errors.New("bad terrain cache")

	// ErrEmptyImage is returned for zero-sized heightfield or colour map images
	ErrEmptyImage = errors.New("empty terrain image")
)

// AssetLoadError reports a failed terrain asset operation; it is fatal at startup
type AssetLoadError struct {
	Op   string // "read", "decode", "write"
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("terrain %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

func assetErr(op, path string, err error) error {
	return &AssetLoadError{Op: op, Path: path, Err: err}
}
