package domain

import "testing"

func TestIsSelfRegistrable(t *testing.T) {
	for _, role := range []Role{RolePresident, RoleTreasurer, RoleSecretary, RoleAuditor} {
		if !IsSelfRegistrable(role) {
			t.Errorf("expected %s to be self-registrable", role)
		}
	}
	if IsSelfRegistrable(RoleAdmin) {
		t.Error("Admin must never be self-registrable")
	}
	if IsSelfRegistrable(Role("Member")) {
		t.Error("unknown role must not be self-registrable")
	}
}

func TestIsValidYearLevel(t *testing.T) {
	for _, y := range []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year"} {
		if !IsValidYearLevel(y) {
			t.Errorf("expected %q to be valid", y)
		}
	}
	for _, y := range []string{"", "6th Year", "1st year"} {
		if IsValidYearLevel(y) {
			t.Errorf("expected %q to be invalid", y)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusOfficial, StatusRejected} {
		if !IsValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidStatus("Approved") {
		t.Error("expected unknown status to be invalid")
	}
}

func TestValidationErrorCollectsAllFields(t *testing.T) {
	ve := &ValidationError{}
	if ve.HasErrors() {
		t.Error("empty validation error should have no fields")
	}

	ve.Add("studentId", "Student ID is required")
	ve.Add("email", "Please enter a valid email")

	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(ve.Fields))
	}
	if ve.Fields[0].Field != "studentId" || ve.Fields[1].Field != "email" {
		t.Errorf("unexpected fields: %+v", ve.Fields)
	}

	var err error = ve
	got, ok := AsValidationError(err)
	if !ok || got != ve {
		t.Error("AsValidationError should unwrap the error")
	}
}
