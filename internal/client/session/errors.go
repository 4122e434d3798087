package session

import "errors"

var (
	// ErrIncompleteSession is returned by Login when the user id or token
	// is empty. The store is left unchanged.
	ErrIncompleteSession = errors.New("session requires a user id and a token")

	// ErrNoSession is returned by Storage.Load when nothing is persisted.
	ErrNoSession = errors.New("no persisted session")

	// ErrCorruptRecord is returned by Storage.Load for a record that exists
	// but cannot be opened or decoded.
	ErrCorruptRecord = errors.New("corrupt session record")
)
