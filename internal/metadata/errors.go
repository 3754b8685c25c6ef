package metadata

import "errors"

// ErrNoTVDBID is returned when a series has not been matched to a TVDB entry.
var ErrNoTVDBID = errors.New("series has no tvdb id")
