package session

import "errors"

var (
	// ErrUnauthenticated means the caller presented no valid session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNoSession is returned by repositories when a token hash matches no
	// live session.
	ErrNoSession = errors.New("session not found")
)
