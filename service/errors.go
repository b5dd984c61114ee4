package service

import "errors"

// ErrInvalidArgument is the single error kind of the projection engine:
// every precondition violation wraps it.
var ErrInvalidArgument = errors.New("invalid argument")
