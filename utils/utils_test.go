package utils

import "testing"

func TestValidateAndNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Admin", "admin", true},
		{"super-admin", "super_admin", true},
		{"SUPPORT", "support", true},
		{"merchant", "merchant", false},
	}

	for _, c := range cases {
		got, ok := ValidateAndNormalizeRole(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ValidateAndNormalizeRole(%q) = (%q, %v); want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCanManageAdmins(t *testing.T) {
	if !CanManageAdmins("super_admin") || !CanManageAdmins("Admin") {
		t.Fatalf("expected super_admin and admin to manage admins")
	}
	if CanManageAdmins("support") {
		t.Fatalf("expected support to be denied")
	}
}

func TestOptionalString(t *testing.T) {
	if p := OptionalString("  Ann "); p == nil || *p != "Ann" {
		t.Fatalf("expected pointer to 'Ann', got %v", p)
	}
	if p := OptionalString("   "); p != nil {
		t.Fatalf("expected nil pointer, got %v", *p)
	}
}

func TestOptionalBool(t *testing.T) {
	if b := OptionalBool("on"); b == nil || !*b {
		t.Fatalf("expected true for 'on'")
	}
	if b := OptionalBool("false"); b == nil || *b {
		t.Fatalf("expected false")
	}
	if b := OptionalBool(""); b != nil {
		t.Fatalf("expected nil for blank")
	}
}

func TestParsePositiveInt(t *testing.T) {
	cases := map[string]int{"3": 3, "": 20, "-1": 20, "abc": 20, " 7 ": 7}
	for in, want := range cases {
		if got := ParsePositiveInt(in, 20); got != want {
			t.Fatalf("ParsePositiveInt(%q) = %d; want %d", in, got, want)
		}
	}
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"/users?page=2":        "/users?page=2",
		"":                     "/",
		"https://evil.example": "/",
		"//evil.example":       "/",
		"/\\evil.example":      "/",
	}
	for in, want := range cases {
		if got := SafeRedirect(in, "/"); got != want {
			t.Fatalf("SafeRedirect(%q) = %q; want %q", in, got, want)
		}
	}
}
