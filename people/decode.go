// ABOUTME: Profile decoder flattening raw Breeze detail records
// ABOUTME: Applies per-field-type rules to build the normalized Person
package people

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/models"
)

// filesBaseURL prefixes profile image paths and stored file field values.
const filesBaseURL = "https://files.breezechms.com/"

// checkboxJoin separates repeated checkbox selections in a custom field
// value.
const checkboxJoin = " · "

// streetBreak splits a stored street address into its two lines.
var streetBreak = regexp.MustCompile(`<br\s*/?>`)

// decodePerson flattens a raw detail record into a normalized profile using
// the resolved fields of this call. Every canonical requested key is present
// in Fields even when unmatched or empty. Detail-map iteration is sorted by
// key so identical input always decodes to identical output.
func decodePerson(person *api.PersonDetail, keys []models.FieldKey, lookup []LookupField) *models.Person {
	profile := &models.Person{
		ID: person.ID,
		Name: models.Name{
			First:  strings.TrimSpace(person.ForceFirstName),
			Last:   strings.TrimSpace(person.LastName),
			Nick:   trimOrNil(person.NickName),
			Middle: trimOrNil(person.MiddleName),
			Maiden: trimOrNil(person.MaidenName),
		},
		Phones:     []models.Phone{},
		FamilyRole: models.RoleUnassigned,
		Family:     person.Family,
		Fields:     make(map[string]*string, len(keys)),
	}

	if !strings.Contains(person.Path, "generic") {
		img := filesBaseURL + person.Path
		profile.Img = &img
	}

	for _, member := range person.Family {
		if member.PersonID == person.ID {
			profile.FamilyRole = member.RoleName
			break
		}
	}

	if birthday := person.Details.String("birthdate"); birthday != "" {
		profile.Birthday = &birthday
	}
	if grade := person.Details.String("grade"); grade != "" {
		profile.Grade = &grade
	}

	for _, key := range keys {
		if canonical := key.Canonical(); canonical != "" {
			profile.Fields[canonical] = nil
		}
	}

	for _, detailID := range sortedKeys(person.Details) {
		raw := person.Details[detailID]
		if elements, ok := detailElements(raw); ok {
			for _, element := range elements {
				decodeListElement(profile, lookup, detailID, element)
			}
			continue
		}
		decodeSingleValue(profile, lookup, detailID, raw)
	}

	return profile
}

// decodeListElement handles one entry of an array-valued detail: phones,
// primary email, primary address, or a custom checkbox selection.
func decodeListElement(profile *models.Person, lookup []LookupField, detailID string, element json.RawMessage) {
	var tag struct {
		FieldType string `json:"field_type"`
	}
	_ = json.Unmarshal(element, &tag)

	switch tag.FieldType {
	case "phone":
		var phone api.PhoneDetail
		if err := json.Unmarshal(element, &phone); err != nil {
			return
		}
		number := strings.TrimSpace(phone.PhoneNumber)
		if phone.PhoneType == nil || number == "" {
			return
		}
		profile.Phones = append(profile.Phones, models.Phone{
			Type:        *phone.PhoneType,
			Number:      number,
			Private:     flagSet(phone.IsPrivate),
			DisableText: flagSet(phone.DoNotText),
		})

	case "email_primary":
		var email api.EmailDetail
		if err := json.Unmarshal(element, &email); err != nil {
			return
		}
		address := strings.TrimSpace(email.Address)
		if address == "" {
			return
		}
		profile.Email = &models.Email{
			Address: address,
			Private: email.IsPrivate == "1",
			Bulk:    email.AllowBulk == "1",
		}

	case "address_primary":
		var addr api.AddressDetail
		if err := json.Unmarshal(element, &addr); err != nil {
			return
		}
		if addr.StreetAddress == "" {
			return
		}
		lines := streetBreak.Split(addr.StreetAddress, 2)
		address := &models.Address{
			Street1: trimOrNil(lines[0]),
			City:    trimOrNil(addr.City),
			State:   trimOrNil(addr.State),
			Zip:     trimOrNil(addr.Zip),
			Lat:     trimOrNil(addr.Latitude),
			Lng:     trimOrNil(addr.Longitude),
			Private: addr.IsPrivate == "1",
		}
		if len(lines) > 1 {
			address.Street2 = trimOrNil(lines[1])
		}
		profile.Address = address

	default:
		// Checkbox selections carry no field_type; repeated selections
		// join with an interpunct.
		match := lookupByFieldID(lookup, detailID)
		if match == nil {
			return
		}
		var option api.OptionDetail
		if err := json.Unmarshal(element, &option); err != nil {
			return
		}
		value := strings.TrimSpace(option.Name)
		if value == "" {
			return
		}
		if existing := profile.Fields[match.Key]; existing != nil && *existing != "" {
			value = *existing + checkboxJoin + value
		}
		profile.Fields[match.Key] = &value
	}
}

// decodeSingleValue handles a non-array detail: a plain string or a
// {value,name} object, routed to a named attribute for predefined keys and
// to the Fields map otherwise.
func decodeSingleValue(profile *models.Person, lookup []LookupField, detailID string, raw json.RawMessage) {
	match := lookupByFieldID(lookup, detailID)

	var stored string
	isString := json.Unmarshal(raw, &stored) == nil

	// File fields surface the remote file URL built from the stored value,
	// not the display name.
	if match != nil && match.FieldType == models.FieldTypeFile && !isString {
		var option api.OptionDetail
		if err := json.Unmarshal(raw, &option); err == nil && option.Value != "" {
			value := filesBaseURL + option.Value
			profile.Fields[match.Key] = &value
			return
		}
	}

	var value string
	if isString {
		value = strings.TrimSpace(stored)
	} else {
		var option api.OptionDetail
		if err := json.Unmarshal(raw, &option); err == nil {
			value = strings.TrimSpace(option.Name)
		}
	}
	if match == nil || value == "" {
		return
	}

	if predefinedKeys[match.Key] {
		if predefinedDateKeys[match.Key] {
			value = isoDate(value)
		}
		assignPredefined(profile, match.Key, value)
		return
	}
	value = isoDate(value)
	profile.Fields[match.Key] = &value
}

func assignPredefined(profile *models.Person, key, value string) {
	v := value
	switch key {
	case "birthday":
		profile.Birthday = &v
	case "gender":
		profile.Gender = &v
	case "status":
		profile.Status = &v
	case "campus":
		profile.Campus = &v
	case "maritalStatus":
		profile.MaritalStatus = &v
	case "anniversary":
		profile.Anniversary = &v
	case "joinDate":
		profile.JoinDate = &v
	case "school":
		profile.School = &v
	case "grade":
		profile.Grade = &v
	case "employer":
		profile.Employer = &v
	}
}

// detailElements reports whether a raw detail value is an array and returns
// its elements.
func detailElements(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, false
	}
	return elements, true
}

func sortedKeys(details api.DetailMap) []string {
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func flagSet(flag *string) bool {
	return flag != nil && *flag == "1"
}

func trimOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
