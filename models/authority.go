package models

import "strings"

// Role names seeded by the initial migration.
const (
	RoleAdmin     = "ROLE_ADMIN"
	RoleUser      = "ROLE_USER"
	RoleAnonymous = "ROLE_ANONYMOUS"
)

// Authority is a named role that can be granted to users.
type Authority struct {
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Authority model.
func (a Authority) TableName() string {
	return "jhi_authority"
}

// JoinAuthorities renders a role set the way it is carried in a token claim.
func JoinAuthorities(authorities []string) string {
	return strings.Join(authorities, ",")
}

// SplitAuthorities parses a comma-separated role claim, dropping blanks.
func SplitAuthorities(claim string) []string {
	if strings.TrimSpace(claim) == "" {
		return nil
	}

	parts := strings.Split(claim, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}
