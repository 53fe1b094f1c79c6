// ABOUTME: Tests for the people MCP tool handlers
// ABOUTME: Calls handlers directly against a stub Breeze server
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/people"
)

const handlerSchemaJSON = `[{"id": "1", "name": "Main", "fields": [
	{"field_id": "100", "field_type": "name", "name": "Name"},
	{"field_id": "105", "field_type": "multiple_choice", "name": "Gender", "options": [
		{"option_id": "11", "name": "Male"},
		{"option_id": "12", "name": "Female"}
	]},
	{"field_id": "107", "field_type": "dropdown", "name": "Service", "options": [
		{"option_id": "31", "name": "1st Service"},
		{"option_id": "33", "name": "3rd Service"}
	]}
]}]`

const handlerPersonJSON = `{
	"id": "71", "first_name": "William", "force_first_name": "Bill",
	"last_name": "Frost", "path": "img/profiles/generic/gray.png",
	"details": {"107": {"value": "33", "name": "3rd Service"}}
}`

type handlerStub struct {
	server      *httptest.Server
	updateCalls []url.Values
	deleteCalls []url.Values
}

func newHandlers(t *testing.T) (*PeopleHandlers, *handlerStub) {
	t.Helper()
	stub := &handlerStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(handlerSchemaJSON))
	})
	mux.HandleFunc("/people/add", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "99"}`))
	})
	mux.HandleFunc("/people/update", func(w http.ResponseWriter, r *http.Request) {
		stub.updateCalls = append(stub.updateCalls, r.URL.Query())
		_, _ = w.Write([]byte(`{"id": "71"}`))
	})
	mux.HandleFunc("/people/delete", func(w http.ResponseWriter, r *http.Request) {
		stub.deleteCalls = append(stub.deleteCalls, r.URL.Query())
		_, _ = w.Write([]byte(`true`))
	})
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(handlerPersonJSON))
	})
	mux.HandleFunc("/people", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[` + handlerPersonJSON + `]`))
	})
	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)

	svc := people.NewService(api.New("test", "key", api.WithBaseURL(stub.server.URL)))
	return NewPeopleHandlers(svc), stub
}

func TestGetPersonHandler(t *testing.T) {
	h, _ := newHandlers(t)

	_, out, err := h.GetPerson(context.Background(), nil, GetPersonInput{
		PersonID: "71",
		Fields:   []string{"service"},
	})
	require.NoError(t, err)

	require.NotNil(t, out.Person)
	assert.Equal(t, "Bill", out.Person.Name.First)
	require.NotNil(t, out.Person.Fields["service"])
	assert.Equal(t, "3rd Service", *out.Person.Fields["service"])
}

func TestGetPersonHandlerRequiresID(t *testing.T) {
	h, _ := newHandlers(t)

	_, _, err := h.GetPerson(context.Background(), nil, GetPersonInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person_id is required")
}

func TestListPeopleHandler(t *testing.T) {
	h, _ := newHandlers(t)

	_, out, err := h.ListPeople(context.Background(), nil, ListPeopleInput{Limit: 10})
	require.NoError(t, err)

	require.Len(t, out.People, 1)
	assert.Equal(t, "71", out.People[0].ID)
}

func TestAddPersonHandler(t *testing.T) {
	h, stub := newHandlers(t)

	_, out, err := h.AddPerson(context.Background(), nil, AddPersonInput{
		First:  "William",
		Last:   "Frost",
		Gender: "M",
		Fields: map[string]string{"service": "3rd service"},
	})
	require.NoError(t, err)

	assert.Equal(t, "99", out.PersonID)
	require.Len(t, stub.updateCalls, 1)
	fieldsJSON := stub.updateCalls[0].Get("fields_json")
	assert.Contains(t, fieldsJSON, `"11"`) // gender matched by initial
	assert.Contains(t, fieldsJSON, `"33"`) // dropdown option id
}

func TestAddPersonHandlerRequiresNames(t *testing.T) {
	h, _ := newHandlers(t)

	_, _, err := h.AddPerson(context.Background(), nil, AddPersonInput{First: "William"})
	require.Error(t, err)
}

func TestUpdatePersonHandler(t *testing.T) {
	h, stub := newHandlers(t)

	_, out, err := h.UpdatePerson(context.Background(), nil, UpdatePersonInput{
		PersonID: "71",
		Gender:   "Female",
	})
	require.NoError(t, err)

	assert.Equal(t, "71", out.PersonID)
	assert.Equal(t, 1, out.FieldUpdates)
	require.Len(t, stub.updateCalls, 1)
	assert.Equal(t, "71", stub.updateCalls[0].Get("person_id"))
}

func TestDeletePersonHandler(t *testing.T) {
	h, stub := newHandlers(t)

	_, out, err := h.DeletePerson(context.Background(), nil, DeletePersonInput{PersonID: "71"})
	require.NoError(t, err)

	assert.True(t, out.Deleted)
	require.Len(t, stub.deleteCalls, 1)
	assert.Equal(t, "71", stub.deleteCalls[0].Get("person_id"))
}

func TestListProfileFieldsHandler(t *testing.T) {
	h, _ := newHandlers(t)

	_, out, err := h.ListProfileFields(context.Background(), nil, ListProfileFieldsInput{
		Fields: []string{"service"},
	})
	require.NoError(t, err)

	byKey := map[string]ProfileFieldOutput{}
	for _, field := range out.Fields {
		byKey[field.Key] = field
	}
	assert.Equal(t, "105", byKey["gender"].FieldID)
	assert.Equal(t, "dropdown", byKey["service"].Type)
	assert.Equal(t, []string{"1st Service", "3rd Service"}, byKey["service"].Options)
}
