package httpserver

import "errors"

var (
	ErrServerFailed   = errors.New("httpserver.failed_to_serve")
	ErrShutdownFailed = errors.New("httpserver.failed_to_shut_down")
)
