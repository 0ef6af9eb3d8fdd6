package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist or is not
// owned by the requesting user. Callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")
