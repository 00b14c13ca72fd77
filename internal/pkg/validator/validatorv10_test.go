package validator

import (
	"errors"
	"testing"
)

type registerForm struct {
	Username string `validate:"required,username"`
	Password string `validate:"required,max=72"`
}

func TestUsernameRuleDefaultPattern(t *testing.T) {
	v, err := NewV10Validator("")
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	valid := []string{"alice", "Alice-42", "a", "user name with spaces"}
	for _, u := range valid {
		if err := v.Validate(registerForm{Username: u, Password: "x"}); err != nil {
			t.Errorf("username %q rejected: %v", u, err)
		}
	}

	invalid := []string{"", "with\ttab", "with\nnewline", string(make([]byte, 65))}
	for _, u := range invalid {
		err := v.Validate(registerForm{Username: u, Password: "x"})
		if err == nil {
			t.Errorf("username %q accepted", u)
			continue
		}

		var fields V10ValidationError
		if !errors.As(err, &fields) {
			t.Errorf("username %q: error %T is not a V10ValidationError", u, err)
			continue
		}
		if _, ok := fields["username"]; !ok {
			t.Errorf("username %q: missing field message, got %v", u, fields)
		}
	}
}

func TestUsernameRuleCustomPattern(t *testing.T) {
	v, err := NewV10Validator(`^[a-z]{3,8}$`)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	if err := v.Validate(registerForm{Username: "alice", Password: "x"}); err != nil {
		t.Errorf("alice rejected: %v", err)
	}
	if err := v.Validate(registerForm{Username: "Alice", Password: "x"}); err == nil {
		t.Error("uppercase accepted under lowercase-only pattern")
	}
}

func TestNewV10ValidatorRejectsBadPattern(t *testing.T) {
	if _, err := NewV10Validator(`([`); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}
