// ABOUTME: Schema resolution matching logical field keys to tenant schema fields
// ABOUTME: Single-claim, first-match-wins scan over flattened schema order
package people

import (
	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/models"
)

// LookupField pairs a schema field descriptor with the canonical name of the
// logical key that claimed it for one call.
type LookupField struct {
	api.ProfileField
	// Key is the canonical synonym of the matched logical key.
	Key string
}

// resolveFields matches the default logical keys followed by the caller's
// keys against the flattened schema. For each key the schema is scanned in
// returned order and the first field whose fuzzy name equals any synonym is
// claimed; a claimed field is never re-evaluated for later keys. Keys that
// match nothing are silently dropped — not every tenant configures every
// field.
func resolveFields(schema []api.ProfileField, keys []models.FieldKey) []LookupField {
	scan := make([]models.FieldKey, 0, len(defaultFieldKeys)+len(keys))
	scan = append(scan, defaultFieldKeys...)
	scan = append(scan, keys...)

	claimed := make(map[string]bool, len(schema))
	resolved := make([]LookupField, 0, len(scan))
	for _, key := range scan {
		if len(key) == 0 {
			continue
		}
		synonyms := make(map[string]bool, len(key))
		for _, synonym := range key {
			synonyms[fuzzyKey(synonym)] = true
		}
		for _, field := range schema {
			if claimed[field.FieldID] || !synonyms[fuzzyKey(field.Name)] {
				continue
			}
			claimed[field.FieldID] = true
			resolved = append(resolved, LookupField{ProfileField: field, Key: key.Canonical()})
			break
		}
	}
	return resolved
}

// lookupByFieldID finds the resolved field claimed for a detail-map key.
func lookupByFieldID(fields []LookupField, fieldID string) *LookupField {
	for i := range fields {
		if fields[i].FieldID == fieldID {
			return &fields[i]
		}
	}
	return nil
}
