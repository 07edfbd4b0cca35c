package entity

// Role is the access level carried in an access token.
type Role string

const (
	// RoleGuard records scans.
	RoleGuard Role = "guard"
	// RoleAdmin reads the dashboard and manages checkpoints and assignments.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role the API knows.
func (r Role) IsValid() bool {
	return r == RoleGuard || r == RoleAdmin
}

// Roles is the set of roles granted to one principal.
type Roles []Role

// ToStrings returns the roles in token claim form.
func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}

	return out
}

// RolesFromStrings parses token claims, dropping roles the API does not know.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}
