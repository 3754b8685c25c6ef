package search

import "errors"

// ErrNoIndexers is returned when a search is attempted without indexers.
var ErrNoIndexers = errors.New("no indexers configured")
