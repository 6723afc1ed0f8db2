package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrUnknownSource     = errors.New("unknown data source")
	ErrSourceUnavailable = errors.New("data source not configured")
)
