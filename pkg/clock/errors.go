package clock

import "errors"

var ErrMissingProcess = errors.New("export snapshot has no process id")
var ErrMissingTimestamp = errors.New("export snapshot has no timestamp")
var ErrUnknownKind = errors.New("unknown clock kind")
