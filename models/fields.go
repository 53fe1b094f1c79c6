// ABOUTME: Profile field vocabulary shared by the schema resolver and codecs
// ABOUTME: Defines FieldType, logical FieldKey synonym lists, and update values
package models

import "strings"

// FieldType is the declared type of a Breeze profile field.
type FieldType string

const (
	// Built-in/locked types.
	FieldTypeName      FieldType = "name"
	FieldTypeBirthdate FieldType = "birthdate"
	FieldTypeGrade     FieldType = "grade"
	FieldTypePhone     FieldType = "phone"
	FieldTypeEmail     FieldType = "email"
	FieldTypeAddress   FieldType = "address"
	FieldTypeFamily    FieldType = "family"

	// Custom types.
	FieldTypeParagraph      FieldType = "paragraph"
	FieldTypeSingleLine     FieldType = "single_line"
	FieldTypeNotes          FieldType = "notes"
	FieldTypeDate           FieldType = "date"
	FieldTypeFile           FieldType = "file"
	FieldTypeMultipleChoice FieldType = "multiple_choice"
	FieldTypeDropdown       FieldType = "dropdown"
	FieldTypeCheckbox       FieldType = "checkbox"
)

// HasOptions reports whether fields of this type carry a configured option
// list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeMultipleChoice, FieldTypeDropdown, FieldTypeCheckbox:
		return true
	}
	return false
}

// FieldKey is a caller-facing name for a profile field together with any
// synonyms. The first entry is canonical and becomes the key in
// Person.Fields. Matching against schema field names is fuzzy: case and
// non-alphanumeric characters are ignored.
type FieldKey []string

// Key builds a FieldKey from a canonical name and optional synonyms.
func Key(names ...string) FieldKey { return FieldKey(names) }

// Canonical returns the key's canonical name, or "" for an empty key.
func (k FieldKey) Canonical() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// Keys wraps plain field names into single-synonym FieldKeys.
func Keys(names ...string) []FieldKey {
	keys := make([]FieldKey, 0, len(names))
	for _, name := range names {
		keys = append(keys, FieldKey{name})
	}
	return keys
}

// FieldValue is a replacement value for one custom field in an update. Use
// Value for single-valued fields and Values for checkbox selections; a nil
// *FieldValue in UpdateParams.Fields clears the field.
type FieldValue struct {
	Single string
	Multi  []string
}

// Value wraps a single-valued field update.
func Value(s string) *FieldValue { return &FieldValue{Single: s} }

// Values wraps a multi-valued (checkbox) field update.
func Values(vs ...string) *FieldValue { return &FieldValue{Multi: vs} }

// First returns the leading value: the first list entry when the value is
// multi-valued, the trimmed single value otherwise.
func (v *FieldValue) First() string {
	if v == nil {
		return ""
	}
	if len(v.Multi) > 0 {
		return strings.TrimSpace(v.Multi[0])
	}
	return strings.TrimSpace(v.Single)
}

// Empty reports whether the value clears the field.
func (v *FieldValue) Empty() bool {
	if v == nil {
		return true
	}
	if v.Multi != nil {
		return len(v.Multi) == 0
	}
	return strings.TrimSpace(v.Single) == ""
}

// NameUpdate holds replacement name parts. Nil parts are left untouched.
type NameUpdate struct {
	First  *string
	Last   *string
	Nick   *string
	Middle *string
	Maiden *string
}

// PhoneUpdate holds replacement phone numbers by slot. Nil slots are left
// untouched; a pointer to "" clears the slot.
type PhoneUpdate struct {
	Mobile *string
	Home   *string
	Work   *string
}

// AddressUpdate holds replacement address parts. The zero value clears the
// address.
type AddressUpdate struct {
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
}

// UpdateParams describes a profile update. Nil pointer fields are not
// touched; pointers to empty strings clear the corresponding remote value.
type UpdateParams struct {
	Name     NameUpdate
	Birthday *string
	Email    *string
	Phones   PhoneUpdate
	Address  *AddressUpdate

	Gender        *string
	Status        *string
	Campus        *string
	MaritalStatus *string
	Anniversary   *string
	JoinDate      *string
	School        *string
	Grade         *string
	Employer      *string

	// FamilyRole reassigns the person within their family when non-empty.
	FamilyRole FamilyRole

	// Fields maps logical custom-field names to replacement values. An
	// entry with a nil value clears that field.
	Fields map[string]*FieldValue
}

// AddParams describes a new person. First and Last are required; everything
// else is applied through the same path as an update once the person exists.
type AddParams struct {
	First string
	Last  string
	UpdateParams
}
