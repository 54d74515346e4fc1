package stores

import "errors"

var (
	ErrHandleTaken   = errors.New("store handle already taken")
	ErrInvalidHandle = errors.New("invalid store handle")
)
