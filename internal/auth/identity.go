package auth

// Roles carried in the token's role claim. Any authenticated role may use the
// API; the role is recorded for auditing and notification context.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// IsValidRole reports whether r is a role tokens may be issued for.
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleStaff
}
