package disk

import "errors"

var (
	// ErrDestinationExists indicates the move target is already occupied.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrMoveFailed indicates a file could not be relocated.
	ErrMoveFailed = errors.New("failed to move file")

	// ErrNotDirectory indicates a path expected to be a directory is not one.
	ErrNotDirectory = errors.New("not a directory")
)
