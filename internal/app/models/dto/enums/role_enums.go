package enums

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin  RoleType = "admin"
	RoleAlumni RoleType = "alumni"
	RoleDosen  RoleType = "dosen"
)

// IsValid reports whether the role is one of the known roles.
// Role checks elsewhere treat the role set as a closed enumeration.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleDosen:
		return true
	}
	return false
}
