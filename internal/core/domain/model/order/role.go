package order

import (
	"fmt"

	"crumbsy/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor is on. It is used
// both as the sender type on chat messages and as the actor type in the
// cancellation predicate.
type Role string

const (
	RoleBuyer Role = "buyer"
	RoleBaker Role = "baker"
)

// RoleFromString parses the wire representation ("buyer" or "baker").
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the two defined marketplace sides.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleBaker {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}
