package domain

import "time"

// Claims is the decoded, verified payload of a bearer token. Verification is
// stateless: signature plus expiry only, no server-side session lookup.
type Claims struct {
	UserID    string    `json:"sub"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether every required role is present in the claims.
func (c *Claims) HasAllRoles(required []string) bool {
	for _, r := range required {
		if !c.HasRole(r) {
			return false
		}
	}
	return true
}
