package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrNotFound            = errors.New("not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("session not found or expired")
	ErrNotOwner            = errors.New("entry belongs to another user")
	ErrNotAssigned         = errors.New("project is not assigned to this user")
	ErrDuplicateName       = errors.New("a project with this name already exists")
	ErrDuplicateAssignment = errors.New("user is already assigned to this project")
	ErrSystemProject       = errors.New("system projects cannot be modified")
	ErrRoleNotHeld         = errors.New("user does not hold this role")
)

// Input errors, mapped to 400 before anything reaches storage.
var (
	ErrInvalidDate        = errors.New("date must be a real YYYY-MM-DD date")
	ErrInvalidMonth       = errors.New("month must be YYYY-MM")
	ErrInvalidMinutes     = errors.New("minutes must be between 1 and 1440")
	ErrInvalidProjectName = errors.New("project name must be 1-100 characters")
	ErrInvalidDayType     = errors.New("day type must be workday, public_holiday or weekend")
)

var sentinels = []error{
	ErrNotFound, ErrUserNotFound, ErrSessionNotFound, ErrNotOwner,
	ErrNotAssigned, ErrDuplicateName, ErrDuplicateAssignment,
	ErrSystemProject, ErrRoleNotHeld, ErrInvalidDate, ErrInvalidMonth,
	ErrInvalidMinutes, ErrInvalidProjectName, ErrInvalidDayType,
}

// IsDomain reports whether err wraps one of the package sentinels.
func IsDomain(err error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
