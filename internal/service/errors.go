package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrIDExists         = errors.New("a new entity cannot already have an ID")
	ErrIDNull           = errors.New("invalid id")
	ErrLoginAlreadyUsed = errors.New("login name already used")
	ErrEmailAlreadyUsed = errors.New("email is already in use")
	ErrUUIDAlreadyUsed  = errors.New("solution uuid already used")

	ErrUserNotFound     = errors.New("user not found")
	ErrSolutionNotFound = errors.New("solution not found")

	ErrForbidden        = errors.New("access to the resource is forbidden")
	ErrWrongCredentials = errors.New("wrong login or password")
	ErrUserNotActivated = errors.New("user was not activated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
