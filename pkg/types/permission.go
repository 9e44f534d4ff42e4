package types

import (
	"github.com/arthur-debert/electron-kit/pkg/errors"
)

// Permission is the execution level requested by a Windows executable manifest
type Permission string

const (
	PermissionAsInvoker            Permission = "asInvoker"
	PermissionHighestAvailable     Permission = "highestAvailable"
	PermissionRequireAdministrator Permission = "requireAdministrator"
)

// ParsePermission validates a permission value. The empty string is allowed
// and means the executable keeps its current execution level.
func ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if p == "" || p.Valid() {
		return p, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "invalid permission %q", s).
		WithDetail("allowed", []string{
			string(PermissionAsInvoker),
			string(PermissionHighestAvailable),
			string(PermissionRequireAdministrator),
		})
}

// Valid reports whether p names a known execution level
func (p Permission) Valid() bool {
	switch p {
	case PermissionAsInvoker, PermissionHighestAvailable, PermissionRequireAdministrator:
		return true
	}
	return false
}
