package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DefaultRole is assigned when a user is created with a blank role.
const DefaultRole = "Staff"

// User is a staff roster entry.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// emailPattern accepts local@domain.tld shapes: an @, a dot after it,
// no whitespace. Anything stricter is out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NewUser validates and creates a roster entry. The role defaults to
// Staff when blank.
func NewUser(name, email, role string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)

	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "invalid email address"}
	}
	if role == "" {
		role = DefaultRole
	}

	return &User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
