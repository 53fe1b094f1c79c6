// ABOUTME: Wire types mirroring raw Breeze API response shapes
// ABOUTME: Covers people records, detail maps, and profile field schema
package api

import (
	"encoding/json"
	"strings"

	"github.com/harperreed/breeze/models"
)

// Person is the minimal person record returned without the details flag.
type Person struct {
	ID string `json:"id"`
	// FirstName is the legal first name.
	FirstName string `json:"first_name"`
	// ForceFirstName is the preferred name when one is set, the legal
	// first name otherwise.
	ForceFirstName string `json:"force_first_name"`
	LastName       string `json:"last_name"`
	// Path is the relative file path of the profile image.
	Path string `json:"path"`
}

// PersonDetail is the full person record returned with details=1.
type PersonDetail struct {
	Person
	NickName   string                `json:"nick_name"`
	MiddleName string                `json:"middle_name"`
	MaidenName string                `json:"maiden_name"`
	Details    DetailMap             `json:"details"`
	Family     []models.FamilyMember `json:"family"`
}

// DetailMap is the heterogeneous detail payload of a person record, keyed by
// profile field id (plus a few convenience keys like "birthdate" and
// "grade"). Values are kept raw: depending on the field they are plain
// strings, {value,name} objects, or arrays of type-tagged entries.
type DetailMap map[string]json.RawMessage

// String returns the entry at key when it is a plain JSON string.
func (d DetailMap) String(key string) string {
	raw, ok := d[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// UnmarshalJSON tolerates Breeze responding with an empty array instead of
// an object when a person has no details.
func (d *DetailMap) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || strings.HasPrefix(trimmed, "[") {
		*d = DetailMap{}
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*d = DetailMap(m)
	return nil
}

// PhoneDetail is one entry of a phone detail array.
type PhoneDetail struct {
	FieldType   string  `json:"field_type"`
	PhoneNumber string  `json:"phone_number"`
	PhoneType   *string `json:"phone_type"`
	DoNotText   *string `json:"do_not_text"`
	IsPrivate   *string `json:"is_private"`
}

// EmailDetail is the primary email entry of an email detail array.
type EmailDetail struct {
	FieldType string `json:"field_type"`
	Address   string `json:"address"`
	IsPrimary string `json:"is_primary"`
	AllowBulk string `json:"allow_bulk"`
	IsPrivate string `json:"is_private"`
}

// AddressDetail is the primary address entry of an address detail array.
type AddressDetail struct {
	FieldType     string `json:"field_type"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Longitude     string `json:"longitude"`
	Latitude      string `json:"latitude"`
	IsPrimary     string `json:"is_primary"`
	IsPrivate     string `json:"is_private"`
}

// OptionDetail is a stored value entry for option-backed fields: checkbox
// selections inside detail arrays and single dropdown/multiple-choice
// objects. Value is the option id, Name the option label.
type OptionDetail struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// ProfileSection is one section of the tenant's profile field schema.
type ProfileSection struct {
	ID        string         `json:"id"`
	OID       string         `json:"oid"`
	SectionID string         `json:"section_id"`
	Name      string         `json:"name"`
	ColumnID  string         `json:"column_id"`
	Position  string         `json:"position"`
	ProfileID string         `json:"profile_id"`
	CreatedOn string         `json:"created_on"`
	Fields    []ProfileField `json:"fields"`
}

// ProfileField describes one configured profile field. FieldID, not ID, is
// what keys a person's detail map.
type ProfileField struct {
	ID               string           `json:"id"`
	OID              string           `json:"oid"`
	FieldID          string           `json:"field_id"`
	ProfileSectionID string           `json:"profile_section_id"`
	FieldType        models.FieldType `json:"field_type"`
	Name             string           `json:"name"`
	Position         string           `json:"position"`
	ProfileID        string           `json:"profile_id"`
	CreatedOn        string           `json:"created_on"`
	Options          []FieldOption    `json:"options"`
}

// FieldOption is one configured choice of a multiple_choice, dropdown, or
// checkbox field.
type FieldOption struct {
	ID             string `json:"id"`
	OID            string `json:"oid"`
	OptionID       string `json:"option_id"`
	ProfileFieldID string `json:"profile_field_id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	ProfileID      string `json:"profile_id"`
	CreatedOn      string `json:"created_on"`
}

// FieldUpdate is one directive of a write payload (the fields_json array).
// Response is either a string or the literal true, depending on field type.
type FieldUpdate struct {
	FieldID   string            `json:"field_id"`
	FieldType string            `json:"field_type"`
	Response  any               `json:"response"`
	Details   map[string]string `json:"details,omitempty"`
}
