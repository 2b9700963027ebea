package persist

import "errors"

// ErrIOFailure indicates the plan file could not be read or written.
// Missing files also match fs.ErrNotExist.
var ErrIOFailure = errors.New("plan file I/O failed")
