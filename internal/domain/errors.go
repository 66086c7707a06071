package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServiceUnavailable indicates the catalog service is unreachable
	ErrServiceUnavailable = errors.New("catalog service is unreachable")

	// ErrAuthFailed indicates the catalog service rejected the API key
	ErrAuthFailed = errors.New("catalog API key is invalid")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAccessDenied indicates the current user's role does not permit the action
	ErrAccessDenied = errors.New("access denied")
)
