package store

import "errors"

var (
	ErrNotReady          = errors.New("store: not ready")
	ErrLoadStarted       = errors.New("store: load already started")
	ErrNoLists           = errors.New("store: no property lists loaded")
	ErrTileNotResolved   = errors.New("store: tile not resolved")
	ErrListNotResolved   = errors.New("store: list not resolved")
	ErrPropertyNotFound  = errors.New("store: property not found")
	ErrDuplicateProperty = errors.New("store: duplicate property")
	ErrDuplicateTile     = errors.New("store: tile already affected")
)
