package repositories

import "errors"

// ErrNotFound reports that a lookup matched zero rows. Repositories wrap it
// with context; handlers detect it with errors.Is and map it to a 404. Empty
// list results are not errors — list methods return empty slices instead.
var ErrNotFound = errors.New("record not found")
