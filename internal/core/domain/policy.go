package domain

// Action represents an administrative operation gated by role
type Action string

const (
	ActionViewMembers    Action = "members.view"
	ActionCreateMember   Action = "members.create"
	ActionEditMember     Action = "members.edit"
	ActionUpdatePayment  Action = "members.payment"
	ActionUpdateStatus   Action = "members.status"
	ActionDeleteMember   Action = "members.delete"
	ActionManageOfficers Action = "officers.manage"
)

// policy is the canonical (action -> allowed roles) table. It is the single
// source of truth for authorization; clients may mirror it for display
// hinting but enforcement happens here.
var policy = map[Action][]Role{
	ActionViewMembers:    {RoleAdmin, RolePresident, RoleTreasurer, RoleSecretary, RoleAuditor},
	ActionCreateMember:   {RoleAdmin, RoleSecretary},
	ActionEditMember:     {RoleAdmin, RoleSecretary},
	ActionUpdatePayment:  {RoleAdmin, RoleTreasurer, RoleSecretary},
	ActionUpdateStatus:   {RoleAdmin, RoleSecretary},
	ActionDeleteMember:   {RoleAdmin},
	ActionManageOfficers: {RoleAdmin},
}

// Permit reports whether a role is allowed to perform an action.
// Unknown actions are denied.
func Permit(role Role, action Action) bool {
	allowed, ok := policy[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
