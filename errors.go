package gagyebu

import "errors"

// ErrNotFound reports that a referenced event does not exist in the store.
// It is recoverable: the operation leaves the ledger untouched.
var ErrNotFound = errors.New("not found")

// ErrUnknownKind reports an event kind outside the enumerated policy table.
// It is fatal for the call and aborts the whole atomic scope; it indicates an
// upstream validation gap and must never occur in normal operation.
var ErrUnknownKind = errors.New("unknown kind")
