// Package repository stores committed rosters.  A store always holds at
// most one current roster; Replace swaps it atomically and Clear drops it.
package repository

import "errors"

// ErrRosterNotFound is returned when no roster has been committed, or the
// current one was cleared.  Handlers translate it into an HTTP 404.
var ErrRosterNotFound = errors.New("roster not found")
