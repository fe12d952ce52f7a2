package domain

import (
	"strings"

	"github.com/google/uuid"
)

// AuthProvider identifies how a principal signed in.
type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

// Principal is an authenticated person allowed to use the books.
// There are no stored user rows; the ID is derived from the email address.
type Principal struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Name     string       `json:"name,omitempty"`
	Provider AuthProvider `json:"provider"`
}

// PrincipalID returns the stable identifier for an email address.
func PrincipalID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

// NewPrincipal builds a Principal with its derived ID.
func NewPrincipal(email, name string, provider AuthProvider) Principal {
	return Principal{ID: PrincipalID(email), Email: strings.ToLower(strings.TrimSpace(email)), Name: name, Provider: provider}
}
