// internal/organizer/errors.go
package organizer

import "errors"

var (
	// ErrNoEpisodes indicates a file has no linked episodes to name it after.
	ErrNoEpisodes = errors.New("file has no episodes")

	// ErrPathTraversal indicates a built path escapes the series folder.
	ErrPathTraversal = errors.New("path traversal detected")
)
