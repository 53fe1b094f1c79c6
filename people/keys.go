// ABOUTME: Built-in logical field keys and the predefined scalar set
// ABOUTME: Default keys resolve before caller keys, in this declaration order
package people

import "github.com/harperreed/breeze/models"

// defaultFieldKeys are always resolved against the schema, ahead of any
// caller-supplied keys. The first synonym of each is canonical. Order
// matters: the first key to match a schema field claims it.
var defaultFieldKeys = []models.FieldKey{
	// Built-in
	{"name"},
	{"phone"},
	{"email"},
	{"address"},
	{"family"},
	// Predefined
	{"birthday", "age"},
	{"gender", "genderidentity", "sex"},
	{"status"},
	{"campus"},
	{"maritalStatus", "marriageStatus", "relationshipStatus"},
	{
		"anniversary",
		"marriedon",
		"marriagedate",
		"weddingdate",
		"dateofwedding",
		"dateofmarriage",
		"anniversarydate",
		"weddinganniversary",
		"marriageanniversary",
		"weddinganniversarydate",
		"marriageanniversarydate",
	},
	{"joinDate", "datejoined"},
	{"school", "highschool", "college", "university"},
	{"grade"},
	{"employer", "employment", "job", "work", "workplace"},
}

// predefinedKeys are the logical keys that decode onto named Person
// attributes rather than the open Fields map.
var predefinedKeys = map[string]bool{
	"birthday":      true,
	"gender":        true,
	"status":        true,
	"campus":        true,
	"maritalStatus": true,
	"anniversary":   true,
	"joinDate":      true,
	"school":        true,
	"grade":         true,
	"employer":      true,
}

// predefinedDateKeys get MM/DD/YYYY values rewritten to ISO on decode.
// Birthday is absent: Breeze already stores birthdate in ISO form.
var predefinedDateKeys = map[string]bool{
	"anniversary": true,
	"joinDate":    true,
}
