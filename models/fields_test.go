// ABOUTME: Tests for field vocabulary types
// ABOUTME: Covers role ids, key helpers, and update value semantics
package models

import "testing"

func TestFamilyRoleID(t *testing.T) {
	tests := []struct {
		role FamilyRole
		id   string
		ok   bool
	}{
		{RoleUnassigned, "1", true},
		{RoleChild, "2", true},
		{RoleAdult, "3", true},
		{RoleHeadOfHousehold, "4", true},
		{RoleSpouse, "5", true},
		{FamilyRole("Grandparent"), "", false},
		{FamilyRole(""), "", false},
	}
	for _, tt := range tests {
		id, ok := tt.role.ID()
		if id != tt.id || ok != tt.ok {
			t.Errorf("FamilyRole(%q).ID() = %q, %v; want %q, %v", tt.role, id, ok, tt.id, tt.ok)
		}
	}
}

func TestFieldTypeHasOptions(t *testing.T) {
	withOptions := []FieldType{FieldTypeMultipleChoice, FieldTypeDropdown, FieldTypeCheckbox}
	for _, ft := range withOptions {
		if !ft.HasOptions() {
			t.Errorf("%s.HasOptions() = false, want true", ft)
		}
	}
	without := []FieldType{FieldTypeName, FieldTypeDate, FieldTypeSingleLine, FieldTypeFile}
	for _, ft := range without {
		if ft.HasOptions() {
			t.Errorf("%s.HasOptions() = true, want false", ft)
		}
	}
}

func TestFieldKeyCanonical(t *testing.T) {
	if got := Key("service", "worship service").Canonical(); got != "service" {
		t.Errorf("Canonical() = %q, want %q", got, "service")
	}
	if got := (FieldKey{}).Canonical(); got != "" {
		t.Errorf("empty Canonical() = %q, want empty", got)
	}
}

func TestKeysWrapsNames(t *testing.T) {
	keys := Keys("a", "b")
	if len(keys) != 2 || keys[0].Canonical() != "a" || keys[1].Canonical() != "b" {
		t.Errorf("Keys(a, b) = %v", keys)
	}
}

func TestFieldValueFirst(t *testing.T) {
	tests := []struct {
		name  string
		value *FieldValue
		want  string
	}{
		{"nil", nil, ""},
		{"single", Value(" Choir "), "Choir"},
		{"multi", Values(" Choir ", "Ushers"), "Choir"},
		{"empty multi", Values(), ""},
	}
	for _, tt := range tests {
		if got := tt.value.First(); got != tt.want {
			t.Errorf("%s: First() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFieldValueEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value *FieldValue
		want  bool
	}{
		{"nil", nil, true},
		{"blank single", Value("   "), true},
		{"single", Value("Choir"), false},
		{"empty multi", Values(), true},
		{"multi", Values("Choir"), false},
	}
	for _, tt := range tests {
		if got := tt.value.Empty(); got != tt.want {
			t.Errorf("%s: Empty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
