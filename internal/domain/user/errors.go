package user

import "errors"

// User domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrStaffAccessRequired = errors.New("admin or hr access required")
	ErrNoLinkedEmployee    = errors.New("no employee record linked to this account")
)
