package config

import "errors"

var ErrConfigIsNil = errors.New("config is nil")
var ErrNoProcesses = errors.New("no processes")
var ErrEmptyProcessName = errors.New("empty process name")
var ErrDuplicateProcess = errors.New("duplicate process name")
var ErrUnknownOp = errors.New("unknown step op")
var ErrUnknownProcess = errors.New("unknown process in step")
var ErrMissingEndpoint = errors.New("send step needs from and to")
var ErrNegativeTimes = errors.New("negative times in step")
