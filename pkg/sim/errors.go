package sim

import "errors"

var ErrKindMismatch = errors.New("clock kind mismatch")
