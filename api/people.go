// ABOUTME: Raw people and profile-field endpoints of the Breeze API
// ABOUTME: Mirrors the native API; the people package layers formatting on top
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListParams filter and page the raw people listing.
type ListParams struct {
	// FilterJSON filters results by profile criteria, keyed by field id.
	FilterJSON map[string]string
	// Limit caps the number of people returned; 0 means no limit.
	Limit int
	// Offset skips results for pagination.
	Offset int
}

func (p ListParams) values() (url.Values, error) {
	params := url.Values{}
	if len(p.FilterJSON) > 0 {
		filter, err := json.Marshal(p.FilterJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter_json: %w", err)
		}
		params.Set("filter_json", string(filter))
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	return params, nil
}

// GetPerson fetches the minimal record (id, names, image path) for one
// person.
func (c *Client) GetPerson(ctx context.Context, id string) (*Person, error) {
	var person Person
	params := url.Values{"details": {"0"}}
	if err := c.get(ctx, "people/"+id, params, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// GetPersonDetail fetches the full nested record for one person.
func (c *Client) GetPersonDetail(ctx context.Context, id string) (*PersonDetail, error) {
	var person PersonDetail
	params := url.Values{"details": {"1"}}
	if err := c.get(ctx, "people/"+id, params, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// ListPeople fetches minimal records for people matching params.
func (c *Client) ListPeople(ctx context.Context, p ListParams) ([]Person, error) {
	params, err := p.values()
	if err != nil {
		return nil, err
	}
	var people []Person
	if err := c.get(ctx, "people", params, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// ListPeopleDetail fetches full nested records for people matching params.
func (c *Client) ListPeopleDetail(ctx context.Context, p ListParams) ([]PersonDetail, error) {
	params, err := p.values()
	if err != nil {
		return nil, err
	}
	params.Set("details", "1")
	var people []PersonDetail
	if err := c.get(ctx, "people", params, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// AddPerson creates a person with just a first and last name and returns the
// new record. Further fields are applied with UpdatePerson.
func (c *Client) AddPerson(ctx context.Context, first, last string, fields []FieldUpdate) (*Person, error) {
	if fields == nil {
		fields = []FieldUpdate{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields_json: %w", err)
	}
	params := url.Values{
		"first":       {first},
		"last":        {last},
		"fields_json": {string(fieldsJSON)},
	}
	var person Person
	if err := c.get(ctx, "people/add", params, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// UpdatePerson applies a list of field update directives to a person.
func (c *Client) UpdatePerson(ctx context.Context, id string, fields []FieldUpdate) (*Person, error) {
	if fields == nil {
		fields = []FieldUpdate{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields_json: %w", err)
	}
	params := url.Values{
		"person_id":   {id},
		"fields_json": {string(fieldsJSON)},
	}
	var person Person
	if err := c.get(ctx, "people/update", params, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// DeletePerson removes a person from the database.
func (c *Client) DeletePerson(ctx context.Context, id string) error {
	params := url.Values{"person_id": {id}}
	return c.get(ctx, "people/delete", params, nil)
}

// ProfileSections fetches the tenant's profile field schema grouped into its
// configured sections.
func (c *Client) ProfileSections(ctx context.Context) ([]ProfileSection, error) {
	var sections []ProfileSection
	if err := c.get(ctx, "profile", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// ProfileFields fetches the schema with sections flattened away, keeping
// field order.
func (c *Client) ProfileFields(ctx context.Context) ([]ProfileField, error) {
	sections, err := c.ProfileSections(ctx)
	if err != nil {
		return nil, err
	}
	var fields []ProfileField
	for _, section := range sections {
		fields = append(fields, section.Fields...)
	}
	return fields, nil
}
