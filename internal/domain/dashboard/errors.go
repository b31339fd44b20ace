package dashboard

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrAccessDenied = errors.New("access denied")
	ErrFetchFailed  = errors.New("failed to fetch dashboard data")
)
