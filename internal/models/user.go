package models

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleCourse1Admin  UserRole = "COURSE_1_ADMIN"
	RoleCourse2Admin  UserRole = "COURSE_2_ADMIN"
	RoleCourse3Admin  UserRole = "COURSE_3_ADMIN"
	RoleCourse4Admin  UserRole = "COURSE_4_ADMIN"
	RoleMainAdminRead UserRole = "MAIN_ADMIN_READ"
	RoleMainAdminFull UserRole = "MAIN_ADMIN_FULL"
)

// DefaultRole is assigned to accounts created through signup.
const DefaultRole = RoleMainAdminFull

// Capability is a permission resolved from a role.
type Capability string

const (
	CapabilityRead           Capability = "read"
	CapabilityEdit           Capability = "edit"
	CapabilityViewAllCourses Capability = "view_all_courses"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCourse1Admin, RoleCourse2Admin, RoleCourse3Admin, RoleCourse4Admin, RoleMainAdminRead, RoleMainAdminFull:
		return true
	}
	return false
}

// Capabilities lists what the role may do. Unknown roles only read.
func (r UserRole) Capabilities() []Capability {
	caps := []Capability{CapabilityRead}
	if !r.Valid() {
		return caps
	}
	if r != RoleMainAdminRead {
		caps = append(caps, CapabilityEdit)
	}
	if r == RoleMainAdminRead || r == RoleMainAdminFull {
		caps = append(caps, CapabilityViewAllCourses)
	}
	return caps
}

// Can reports whether the role grants the capability.
func (r UserRole) Can(c Capability) bool {
	for _, granted := range r.Capabilities() {
		if granted == c {
			return true
		}
	}
	return false
}

// User represents an application user stored in the users table.
type User struct {
	ID           string   `db:"id" json:"id"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	FullName     string   `db:"full_name" json:"full_name"`
	Role         UserRole `db:"role" json:"role"`
}
