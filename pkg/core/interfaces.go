package core

import "errors"

// ErrInvalidArgument is wrapped by construction and bounds errors
var ErrInvalidArgument = errors.New("invalid argument")

// Logger interface for raytracer logging
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}
