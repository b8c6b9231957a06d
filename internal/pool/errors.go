package pool

import (
	"errors"
)

// ErrExhausted is returned when Next gives up without finding a fresh ID.
var ErrExhausted = errors.New("no unused id found")
