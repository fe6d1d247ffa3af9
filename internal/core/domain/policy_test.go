package domain

import "testing"

func TestPermitTable(t *testing.T) {
	allRoles := []Role{RoleAdmin, RolePresident, RoleTreasurer, RoleSecretary, RoleAuditor}

	cases := []struct {
		action  Action
		allowed map[Role]bool
	}{
		{ActionViewMembers, map[Role]bool{RoleAdmin: true, RolePresident: true, RoleTreasurer: true, RoleSecretary: true, RoleAuditor: true}},
		{ActionCreateMember, map[Role]bool{RoleAdmin: true, RoleSecretary: true}},
		{ActionEditMember, map[Role]bool{RoleAdmin: true, RoleSecretary: true}},
		{ActionUpdatePayment, map[Role]bool{RoleAdmin: true, RoleTreasurer: true, RoleSecretary: true}},
		{ActionUpdateStatus, map[Role]bool{RoleAdmin: true, RoleSecretary: true}},
		{ActionDeleteMember, map[Role]bool{RoleAdmin: true}},
		{ActionManageOfficers, map[Role]bool{RoleAdmin: true}},
	}

	for _, tc := range cases {
		for _, role := range allRoles {
			got := Permit(role, tc.action)
			want := tc.allowed[role]
			if got != want {
				t.Errorf("Permit(%s, %s) = %v, want %v", role, tc.action, got, want)
			}
		}
	}
}

func TestPermitUnknownAction(t *testing.T) {
	if Permit(RoleAdmin, Action("members.archive")) {
		t.Error("unknown action should be denied even for Admin")
	}
}

func TestPermitUnknownRole(t *testing.T) {
	if Permit(Role("Janitor"), ActionViewMembers) {
		t.Error("unknown role should be denied")
	}
}
