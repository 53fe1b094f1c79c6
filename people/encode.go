// ABOUTME: Profile encoder building raw field update directives
// ABOUTME: Inverse of the decoder, including option-id lookup for choice fields
package people

import (
	"strings"

	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/models"
)

// dropdownBlank is the sentinel Breeze expects when clearing a dropdown.
const dropdownBlank = "BLANK"

// encodeFieldUpdates turns an update request into the ordered fields_json
// directives for one person. Directive order follows resolved field order,
// which follows schema order. Values that fail option matching are skipped
// silently and leave the remote field unchanged.
func encodeFieldUpdates(id string, params *models.UpdateParams, lookup []LookupField) []api.FieldUpdate {
	updates := []api.FieldUpdate{}

	for i := range lookup {
		field := &lookup[i]
		switch field.FieldType {
		case models.FieldTypeName:
			updates = append(updates, encodeName(id, field.FieldID, params.Name)...)
		case models.FieldTypeBirthdate:
			if params.Birthday == nil {
				continue
			}
			updates = append(updates, api.FieldUpdate{
				FieldID:   field.FieldID,
				FieldType: "birthdate",
				Response:  strings.TrimSpace(*params.Birthday),
			})
		case models.FieldTypePhone:
			updates = append(updates, encodePhones(field.FieldID, params.Phones)...)
		case models.FieldTypeEmail:
			if params.Email == nil {
				continue
			}
			updates = append(updates, api.FieldUpdate{
				FieldID:   field.FieldID,
				FieldType: "email",
				Response:  true,
				Details:   map[string]string{"address": strings.TrimSpace(*params.Email)},
			})
		case models.FieldTypeAddress:
			if params.Address == nil {
				continue
			}
			updates = append(updates, encodeAddress(field.FieldID, params.Address))
		case models.FieldTypeFamily:
			if params.FamilyRole == "" {
				continue
			}
			roleID, ok := params.FamilyRole.ID()
			if !ok {
				continue
			}
			updates = append(updates, api.FieldUpdate{
				FieldID:   field.FieldID,
				FieldType: "family_role",
				Response:  "undefined",
				Details:   map[string]string{"person_id": id, "role_id": roleID},
			})
		default:
			if predefinedKeys[field.Key] && field.Key != "birthday" {
				if update, ok := encodePredefined(field, params); ok {
					updates = append(updates, update)
				}
				continue
			}
			value, supplied := params.Fields[field.Key]
			if !supplied {
				continue
			}
			updates = append(updates, encodeCustom(field, value)...)
		}
	}

	return updates
}

// encodeName emits one directive per supplied name part.
func encodeName(id, fieldID string, name models.NameUpdate) []api.FieldUpdate {
	parts := []struct {
		part  string
		value *string
	}{
		{"first", name.First},
		{"last", name.Last},
		{"nick", name.Nick},
		{"middle", name.Middle},
		{"maiden", name.Maiden},
	}
	var updates []api.FieldUpdate
	for _, p := range parts {
		if p.value == nil {
			continue
		}
		updates = append(updates, api.FieldUpdate{
			FieldID:   fieldID,
			FieldType: "name",
			Response:  "undefined",
			Details: map[string]string{
				"value":     strings.TrimSpace(*p.value),
				"part":      p.part + "_name",
				"person_id": id,
			},
		})
	}
	return updates
}

// encodePhones emits one directive per supplied phone slot.
func encodePhones(fieldID string, phones models.PhoneUpdate) []api.FieldUpdate {
	slots := []struct {
		slot  string
		value *string
	}{
		{"mobile", phones.Mobile},
		{"home", phones.Home},
		{"work", phones.Work},
	}
	var updates []api.FieldUpdate
	for _, s := range slots {
		if s.value == nil {
			continue
		}
		updates = append(updates, api.FieldUpdate{
			FieldID:   fieldID,
			FieldType: "phone",
			Response:  true,
			Details:   map[string]string{"phone_" + s.slot: strings.TrimSpace(*s.value)},
		})
	}
	return updates
}

// encodeAddress emits the full address directive. Street lines join with a
// line break only when both are present; a zero-value update clears every
// part.
func encodeAddress(fieldID string, addr *models.AddressUpdate) api.FieldUpdate {
	line1 := strings.TrimSpace(addr.Street1)
	line2 := strings.TrimSpace(addr.Street2)
	separator := ""
	if line1 != "" && line2 != "" {
		separator = "<br>"
	}
	return api.FieldUpdate{
		FieldID:   fieldID,
		FieldType: "address",
		Response:  true,
		Details: map[string]string{
			"street_address": line1 + separator + line2,
			"city":           strings.TrimSpace(addr.City),
			"state":          strings.TrimSpace(addr.State),
			"zip":            strings.TrimSpace(addr.Zip),
		},
	}
}

// encodePredefined emits the directive for a predefined scalar key when the
// request supplies it. Choice-backed fields resolve the value to an option
// id; gender falls back to first-character matching so "M" matches "Male".
func encodePredefined(field *LookupField, params *models.UpdateParams) (api.FieldUpdate, bool) {
	supplied := predefinedParam(field.Key, params)
	if supplied == nil {
		return api.FieldUpdate{}, false
	}
	value := strings.TrimSpace(*supplied)

	if field.FieldType == models.FieldTypeMultipleChoice || field.FieldType == models.FieldTypeDropdown {
		if value == "" {
			return clearChoice(field), true
		}
		optionID := matchOption(field.Options, value)
		if optionID == "" && field.Key == "gender" {
			optionID = matchOptionInitial(field.Options, value)
		}
		if optionID == "" {
			return api.FieldUpdate{}, false
		}
		return api.FieldUpdate{FieldID: field.FieldID, FieldType: "radio", Response: optionID}, true
	}

	return api.FieldUpdate{
		FieldID:   field.FieldID,
		FieldType: string(field.FieldType),
		Response:  value,
	}, true
}

// encodeCustom emits directives for a caller-defined field. Checkboxes fan
// out to one directive per matched option; an empty value clears.
func encodeCustom(field *LookupField, value *models.FieldValue) []api.FieldUpdate {
	switch field.FieldType {
	case models.FieldTypeMultipleChoice, models.FieldTypeDropdown:
		first := value.First()
		if first == "" {
			return []api.FieldUpdate{clearChoice(field)}
		}
		optionID := matchOption(field.Options, first)
		if optionID == "" {
			return nil
		}
		return []api.FieldUpdate{{FieldID: field.FieldID, FieldType: "radio", Response: optionID}}

	case models.FieldTypeCheckbox:
		if value.Empty() {
			return []api.FieldUpdate{{FieldID: field.FieldID, FieldType: "checkbox", Response: ""}}
		}
		selections := value.Multi
		if selections == nil {
			selections = strings.Split(value.Single, checkboxJoin)
		}
		wanted := make(map[string]bool, len(selections))
		for _, selection := range selections {
			wanted[fuzzyKey(selection)] = true
		}
		var updates []api.FieldUpdate
		for _, option := range field.Options {
			if !wanted[fuzzyKey(option.Name)] {
				continue
			}
			updates = append(updates, api.FieldUpdate{
				FieldID:   field.FieldID,
				FieldType: "checkbox",
				Response:  option.OptionID,
			})
		}
		return updates

	default:
		return []api.FieldUpdate{{
			FieldID:   field.FieldID,
			FieldType: string(field.FieldType),
			Response:  value.First(),
		}}
	}
}

func clearChoice(field *LookupField) api.FieldUpdate {
	response := ""
	if field.FieldType == models.FieldTypeDropdown {
		response = dropdownBlank
	}
	return api.FieldUpdate{
		FieldID:   field.FieldID,
		FieldType: string(field.FieldType),
		Response:  response,
	}
}

// matchOption finds the option whose fuzzy label equals the fuzzy value.
func matchOption(options []api.FieldOption, value string) string {
	want := fuzzyKey(value)
	for _, option := range options {
		if fuzzyKey(option.Name) == want {
			return option.OptionID
		}
	}
	return ""
}

// matchOptionInitial matches on the first character of value and label only.
func matchOptionInitial(options []api.FieldOption, value string) string {
	want := fuzzyKey(firstChar(value))
	if want == "" {
		return ""
	}
	for _, option := range options {
		if fuzzyKey(firstChar(option.Name)) == want {
			return option.OptionID
		}
	}
	return ""
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

func predefinedParam(key string, params *models.UpdateParams) *string {
	switch key {
	case "gender":
		return params.Gender
	case "status":
		return params.Status
	case "campus":
		return params.Campus
	case "maritalStatus":
		return params.MaritalStatus
	case "anniversary":
		return params.Anniversary
	case "joinDate":
		return params.JoinDate
	case "school":
		return params.School
	case "grade":
		return params.Grade
	case "employer":
		return params.Employer
	}
	return nil
}
