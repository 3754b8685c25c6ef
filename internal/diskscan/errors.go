package diskscan

import "errors"

// ErrSeriesFolderMissing indicates the series folder does not exist on disk.
var ErrSeriesFolderMissing = errors.New("series folder missing")
