package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}

	if !Verify("secret123", hash) {
		t.Error("expected matching password to verify")
	}
	if Verify("wrong", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("12345") {
		t.Error("5-char password should be rejected")
	}
	if !ValidatePassword("123456") {
		t.Error("6-char password should be accepted")
	}
}
