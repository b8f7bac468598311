package models

// Role represents a member's standing within the club
type Role string

// Club roles, ordered from lowest to highest standing
const (
	RoleGeneralStudent  Role = "General Student"
	RoleGeneralMember   Role = "General Member"
	RoleAssociateMember Role = "Associate Member"
	RoleExecutiveMember Role = "Executive Member"
	RoleLifetimeMember  Role = "Lifetime Member"
	RoleAdmin           Role = "Admin"
)

var roleLevels = map[Role]int{
	RoleGeneralStudent:  0,
	RoleGeneralMember:   1,
	RoleAssociateMember: 2,
	RoleExecutiveMember: 3,
	RoleLifetimeMember:  4,
	RoleAdmin:           5,
}

// Level returns the ordinal position of the role in the club hierarchy.
// Unknown roles rank below GeneralStudent.
func (r Role) Level() int {
	if level, ok := roleLevels[r]; ok {
		return level
	}
	return -1
}

// IsValid reports whether the role is one of the defined club roles
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// IsAdmin reports whether the role grants administrative access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Province represents the club wing a member belongs to
type Province string

// Club provinces
const (
	ProvinceCultural  Province = "Cultural Province"
	ProvinceTechnical Province = "Technical Province"
)

// User defines a registered club member.
// Users are never deleted; suspension revokes access instead.
type User struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"` // unique, matched case-insensitively
	Phone       string   `json:"phone"`
	Batch       string   `json:"batch"` // e.g. "HSC'25"
	Province    Province `json:"province"`
	Role        Role     `json:"role"`
	IsSuspended bool     `json:"isSuspended"`
}
