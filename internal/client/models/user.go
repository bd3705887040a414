package models

import (
	"fmt"
	"strings"
)

// Matches reports whether q is a case-insensitive substring of the user's
// name or email. An empty query matches every user.
func (u User) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Email), q)
}

func (u User) String() string {
	return fmt.Sprintf("%-4d %-24s %s", u.ID, u.Name, u.Email)
}

// Missing returns the names of required fields left empty.
func (n NewUser) Missing() []string {
	var missing []string
	if n.Name == "" {
		missing = append(missing, "name")
	}
	if n.Email == "" {
		missing = append(missing, "email")
	}
	if n.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

func (p Product) String() string {
	return fmt.Sprintf("%s\n    %s\n    images: %d", p.Title, p.Description, len(p.Images))
}
