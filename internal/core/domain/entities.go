package domain

// Role represents an officer account role
type Role string

const (
	RoleAdmin     Role = "Admin"
	RolePresident Role = "President"
	RoleTreasurer Role = "Treasurer"
	RoleSecretary Role = "Secretary"
	RoleAuditor   Role = "Auditor"
)

// SelfRegistrableRoles are the roles an officer may pick at registration.
// Admin accounts only exist through seeding.
var SelfRegistrableRoles = []Role{RolePresident, RoleTreasurer, RoleSecretary, RoleAuditor}

// IsSelfRegistrable reports whether a role may be chosen at registration
// or officer creation
func IsSelfRegistrable(role Role) bool {
	for _, r := range SelfRegistrableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Member status values
const (
	StatusPending  = "Pending"
	StatusOfficial = "Official Member"
	StatusRejected = "Rejected"
)

// MemberStatuses lists all valid member statuses
var MemberStatuses = []string{StatusPending, StatusOfficial, StatusRejected}

// IsValidStatus reports whether s is a known member status
func IsValidStatus(s string) bool {
	for _, v := range MemberStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// YearLevels lists all valid member year levels
var YearLevels = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year"}

// IsValidYearLevel reports whether y is a known year level
func IsValidYearLevel(y string) bool {
	for _, v := range YearLevels {
		if v == y {
			return true
		}
	}
	return false
}
