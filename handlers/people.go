// ABOUTME: People MCP tool handlers
// ABOUTME: Implements get_person, list_people, add_person, update_person, delete_person, and list_profile_fields
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/breeze/models"
	"github.com/harperreed/breeze/people"
)

type PeopleHandlers struct {
	svc *people.Service
}

func NewPeopleHandlers(svc *people.Service) *PeopleHandlers {
	return &PeopleHandlers{svc: svc}
}

type GetPersonInput struct {
	PersonID string   `json:"person_id" jsonschema:"Breeze person id (required)"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Custom profile field names to include"`
}

type PersonOutput struct {
	Person *models.Person `json:"person"`
}

func (h *PeopleHandlers) GetPerson(ctx context.Context, request *mcp.CallToolRequest, input GetPersonInput) (*mcp.CallToolResult, PersonOutput, error) {
	if input.PersonID == "" {
		return nil, PersonOutput{}, fmt.Errorf("person_id is required")
	}

	person, err := h.svc.Get(ctx, input.PersonID, people.GetOptions{
		Fields: models.Keys(input.Fields...),
	})
	if err != nil {
		return nil, PersonOutput{}, fmt.Errorf("failed to get person: %w", err)
	}
	return nil, PersonOutput{Person: person}, nil
}

type ListPeopleInput struct {
	Limit  int      `json:"limit,omitempty" jsonschema:"Maximum number of people to return (0 = all)"`
	Offset int      `json:"offset,omitempty" jsonschema:"Number of people to skip"`
	Fields []string `json:"fields,omitempty" jsonschema:"Custom profile field names to include"`
}

type ListPeopleOutput struct {
	People []*models.Person `json:"people"`
}

func (h *PeopleHandlers) ListPeople(ctx context.Context, request *mcp.CallToolRequest, input ListPeopleInput) (*mcp.CallToolResult, ListPeopleOutput, error) {
	profiles, err := h.svc.List(ctx, people.ListOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
		Fields: models.Keys(input.Fields...),
	})
	if err != nil {
		return nil, ListPeopleOutput{}, fmt.Errorf("failed to list people: %w", err)
	}
	return nil, ListPeopleOutput{People: profiles}, nil
}

type AddPersonInput struct {
	First         string            `json:"first" jsonschema:"First name (required)"`
	Last          string            `json:"last" jsonschema:"Last name (required)"`
	Nick          string            `json:"nick,omitempty" jsonschema:"Nickname"`
	Middle        string            `json:"middle,omitempty" jsonschema:"Middle name"`
	Birthday      string            `json:"birthday,omitempty" jsonschema:"Birthday (YYYY-MM-DD or MM/DD/YYYY)"`
	Email         string            `json:"email,omitempty" jsonschema:"Primary email address"`
	MobilePhone   string            `json:"mobile_phone,omitempty" jsonschema:"Mobile phone number"`
	HomePhone     string            `json:"home_phone,omitempty" jsonschema:"Home phone number"`
	Gender        string            `json:"gender,omitempty" jsonschema:"Gender"`
	Status        string            `json:"status,omitempty" jsonschema:"Status"`
	Campus        string            `json:"campus,omitempty" jsonschema:"Campus"`
	MaritalStatus string            `json:"marital_status,omitempty" jsonschema:"Marital status"`
	School        string            `json:"school,omitempty" jsonschema:"School"`
	Grade         string            `json:"grade,omitempty" jsonschema:"Grade"`
	Employer      string            `json:"employer,omitempty" jsonschema:"Employer"`
	Fields        map[string]string `json:"fields,omitempty" jsonschema:"Custom profile field values by field name"`
}

type AddPersonOutput struct {
	PersonID string `json:"person_id"`
}

func (h *PeopleHandlers) AddPerson(ctx context.Context, request *mcp.CallToolRequest, input AddPersonInput) (*mcp.CallToolResult, AddPersonOutput, error) {
	if input.First == "" || input.Last == "" {
		return nil, AddPersonOutput{}, fmt.Errorf("first and last are required")
	}

	params := &models.AddParams{
		First:        input.First,
		Last:         input.Last,
		UpdateParams: inputUpdateParams(personFields{
			Nick:          input.Nick,
			Middle:        input.Middle,
			Birthday:      input.Birthday,
			Email:         input.Email,
			MobilePhone:   input.MobilePhone,
			HomePhone:     input.HomePhone,
			Gender:        input.Gender,
			Status:        input.Status,
			Campus:        input.Campus,
			MaritalStatus: input.MaritalStatus,
			School:        input.School,
			Grade:         input.Grade,
			Employer:      input.Employer,
			Fields:        input.Fields,
		}),
	}

	id, err := h.svc.Add(ctx, params)
	if err != nil {
		return nil, AddPersonOutput{}, fmt.Errorf("failed to add person: %w", err)
	}
	return nil, AddPersonOutput{PersonID: id}, nil
}

type UpdatePersonInput struct {
	PersonID      string            `json:"person_id" jsonschema:"Breeze person id (required)"`
	First         string            `json:"first,omitempty" jsonschema:"First name"`
	Last          string            `json:"last,omitempty" jsonschema:"Last name"`
	Nick          string            `json:"nick,omitempty" jsonschema:"Nickname"`
	Middle        string            `json:"middle,omitempty" jsonschema:"Middle name"`
	Birthday      string            `json:"birthday,omitempty" jsonschema:"Birthday (YYYY-MM-DD or MM/DD/YYYY)"`
	Email         string            `json:"email,omitempty" jsonschema:"Primary email address"`
	MobilePhone   string            `json:"mobile_phone,omitempty" jsonschema:"Mobile phone number"`
	HomePhone     string            `json:"home_phone,omitempty" jsonschema:"Home phone number"`
	Gender        string            `json:"gender,omitempty" jsonschema:"Gender"`
	Status        string            `json:"status,omitempty" jsonschema:"Status"`
	Campus        string            `json:"campus,omitempty" jsonschema:"Campus"`
	MaritalStatus string            `json:"marital_status,omitempty" jsonschema:"Marital status"`
	School        string            `json:"school,omitempty" jsonschema:"School"`
	Grade         string            `json:"grade,omitempty" jsonschema:"Grade"`
	Employer      string            `json:"employer,omitempty" jsonschema:"Employer"`
	Fields        map[string]string `json:"fields,omitempty" jsonschema:"Custom profile field values by field name"`
}

type UpdatePersonOutput struct {
	PersonID     string `json:"person_id"`
	FieldUpdates int    `json:"field_updates"`
}

func (h *PeopleHandlers) UpdatePerson(ctx context.Context, request *mcp.CallToolRequest, input UpdatePersonInput) (*mcp.CallToolResult, UpdatePersonOutput, error) {
	if input.PersonID == "" {
		return nil, UpdatePersonOutput{}, fmt.Errorf("person_id is required")
	}

	params := inputUpdateParams(personFields{
		First:         input.First,
		Last:          input.Last,
		Nick:          input.Nick,
		Middle:        input.Middle,
		Birthday:      input.Birthday,
		Email:         input.Email,
		MobilePhone:   input.MobilePhone,
		HomePhone:     input.HomePhone,
		Gender:        input.Gender,
		Status:        input.Status,
		Campus:        input.Campus,
		MaritalStatus: input.MaritalStatus,
		School:        input.School,
		Grade:         input.Grade,
		Employer:      input.Employer,
		Fields:        input.Fields,
	})

	updates, err := h.svc.Update(ctx, input.PersonID, &params)
	if err != nil {
		return nil, UpdatePersonOutput{}, fmt.Errorf("failed to update person: %w", err)
	}
	return nil, UpdatePersonOutput{PersonID: input.PersonID, FieldUpdates: len(updates)}, nil
}

type DeletePersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Breeze person id (required)"`
}

type DeletePersonOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *PeopleHandlers) DeletePerson(ctx context.Context, request *mcp.CallToolRequest, input DeletePersonInput) (*mcp.CallToolResult, DeletePersonOutput, error) {
	if input.PersonID == "" {
		return nil, DeletePersonOutput{}, fmt.Errorf("person_id is required")
	}
	if err := h.svc.Delete(ctx, input.PersonID); err != nil {
		return nil, DeletePersonOutput{}, fmt.Errorf("failed to delete person: %w", err)
	}
	return nil, DeletePersonOutput{Deleted: true}, nil
}

type ListProfileFieldsInput struct {
	Fields []string `json:"fields,omitempty" jsonschema:"Custom profile field names to resolve"`
}

type ProfileFieldOutput struct {
	Key     string   `json:"key"`
	FieldID string   `json:"field_id"`
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}

type ListProfileFieldsOutput struct {
	Fields []ProfileFieldOutput `json:"fields"`
}

func (h *PeopleHandlers) ListProfileFields(ctx context.Context, request *mcp.CallToolRequest, input ListProfileFieldsInput) (*mcp.CallToolResult, ListProfileFieldsOutput, error) {
	resolved, err := h.svc.ProfileFields(ctx, models.Keys(input.Fields...))
	if err != nil {
		return nil, ListProfileFieldsOutput{}, fmt.Errorf("failed to fetch profile fields: %w", err)
	}

	out := make([]ProfileFieldOutput, 0, len(resolved))
	for _, field := range resolved {
		entry := ProfileFieldOutput{
			Key:     field.Key,
			FieldID: field.FieldID,
			Type:    string(field.FieldType),
			Name:    field.Name,
		}
		for _, option := range field.Options {
			entry.Options = append(entry.Options, option.Name)
		}
		out = append(out, entry)
	}
	return nil, ListProfileFieldsOutput{Fields: out}, nil
}

// personFields is the shared string-form update surface of the MCP tools.
// Empty strings mean "leave untouched"; clearing values is a CLI/library
// concern.
type personFields struct {
	First, Last, Nick, Middle string
	Birthday, Email           string
	MobilePhone, HomePhone    string
	Gender, Status, Campus    string
	MaritalStatus, School     string
	Grade, Employer           string
	Fields                    map[string]string
}

func inputUpdateParams(in personFields) models.UpdateParams {
	params := models.UpdateParams{
		Name: models.NameUpdate{
			First:  optional(in.First),
			Last:   optional(in.Last),
			Nick:   optional(in.Nick),
			Middle: optional(in.Middle),
		},
		Birthday: optional(in.Birthday),
		Email:    optional(in.Email),
		Phones: models.PhoneUpdate{
			Mobile: optional(in.MobilePhone),
			Home:   optional(in.HomePhone),
		},
		Gender:        optional(in.Gender),
		Status:        optional(in.Status),
		Campus:        optional(in.Campus),
		MaritalStatus: optional(in.MaritalStatus),
		School:        optional(in.School),
		Grade:         optional(in.Grade),
		Employer:      optional(in.Employer),
	}
	if len(in.Fields) > 0 {
		params.Fields = make(map[string]*models.FieldValue, len(in.Fields))
		for key, value := range in.Fields {
			params.Fields[key] = models.Value(value)
		}
	}
	return params
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
