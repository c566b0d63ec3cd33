package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyCredentials = errors.New("username and password are required")

	errSessionClosed = errors.New("sync session closed")
)
