// ABOUTME: Tests for the raw people and profile-field endpoints
// ABOUTME: Verifies request paths, query encoding, and response decoding
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endpointStub records the last request and serves one canned body.
type endpointStub struct {
	server *httptest.Server
	path   string
	query  url.Values
	body   string
}

func newEndpointStub(t *testing.T, body string) *endpointStub {
	t.Helper()
	stub := &endpointStub{body: body}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.path = r.URL.Path
		stub.query = r.URL.Query()
		_, _ = w.Write([]byte(stub.body))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *endpointStub) client() *Client {
	return New("test", "key", WithBaseURL(s.server.URL))
}

func TestGetPerson(t *testing.T) {
	stub := newEndpointStub(t, `{"id": "71", "first_name": "William", "force_first_name": "Bill", "last_name": "Frost", "path": "img/a.jpg"}`)

	person, err := stub.client().GetPerson(context.Background(), "71")
	require.NoError(t, err)

	assert.Equal(t, "/people/71", stub.path)
	assert.Equal(t, "0", stub.query.Get("details"))
	assert.Equal(t, "Bill", person.ForceFirstName)
}

func TestGetPersonDetail(t *testing.T) {
	stub := newEndpointStub(t, `{"id": "71", "details": {"birthdate": "1980-06-14"}, "family": []}`)

	person, err := stub.client().GetPersonDetail(context.Background(), "71")
	require.NoError(t, err)

	assert.Equal(t, "1", stub.query.Get("details"))
	assert.Equal(t, "1980-06-14", person.Details.String("birthdate"))
}

func TestGetPersonDetailEmptyArrayDetails(t *testing.T) {
	stub := newEndpointStub(t, `{"id": "71", "details": []}`)

	person, err := stub.client().GetPersonDetail(context.Background(), "71")
	require.NoError(t, err)
	assert.Empty(t, person.Details)
}

func TestListPeopleParams(t *testing.T) {
	stub := newEndpointStub(t, `[{"id": "1"}, {"id": "2"}]`)

	people, err := stub.client().ListPeople(context.Background(), ListParams{
		FilterJSON: map[string]string{"645": "Married"},
		Limit:      25,
		Offset:     50,
	})
	require.NoError(t, err)

	assert.Equal(t, "/people", stub.path)
	assert.Equal(t, "25", stub.query.Get("limit"))
	assert.Equal(t, "50", stub.query.Get("offset"))

	var filter map[string]string
	require.NoError(t, json.Unmarshal([]byte(stub.query.Get("filter_json")), &filter))
	assert.Equal(t, "Married", filter["645"])

	require.Len(t, people, 2)
}

func TestListPeopleDetailForcesDetailsFlag(t *testing.T) {
	stub := newEndpointStub(t, `[]`)

	_, err := stub.client().ListPeopleDetail(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, "1", stub.query.Get("details"))
}

func TestAddPerson(t *testing.T) {
	stub := newEndpointStub(t, `{"id": "99", "first_name": "William", "last_name": "Frost"}`)

	person, err := stub.client().AddPerson(context.Background(), "William", "Frost", nil)
	require.NoError(t, err)

	assert.Equal(t, "/people/add", stub.path)
	assert.Equal(t, "William", stub.query.Get("first"))
	assert.Equal(t, "Frost", stub.query.Get("last"))
	// Nil fields still send an explicit empty list.
	assert.Equal(t, "[]", stub.query.Get("fields_json"))
	assert.Equal(t, "99", person.ID)
}

func TestUpdatePersonEncodesDirectives(t *testing.T) {
	stub := newEndpointStub(t, `{"id": "71"}`)

	fields := []FieldUpdate{
		{FieldID: "105", FieldType: "radio", Response: "opt-1"},
		{FieldID: "102", FieldType: "email", Response: true, Details: map[string]string{"address": "a@b.c"}},
	}
	_, err := stub.client().UpdatePerson(context.Background(), "71", fields)
	require.NoError(t, err)

	assert.Equal(t, "/people/update", stub.path)
	assert.Equal(t, "71", stub.query.Get("person_id"))

	var sent []FieldUpdate
	require.NoError(t, json.Unmarshal([]byte(stub.query.Get("fields_json")), &sent))
	require.Len(t, sent, 2)
	assert.Equal(t, "opt-1", sent[0].Response)
	assert.Equal(t, true, sent[1].Response)
	assert.Equal(t, "a@b.c", sent[1].Details["address"])
}

func TestDeletePerson(t *testing.T) {
	stub := newEndpointStub(t, `true`)

	require.NoError(t, stub.client().DeletePerson(context.Background(), "71"))
	assert.Equal(t, "/people/delete", stub.path)
	assert.Equal(t, "71", stub.query.Get("person_id"))
}

func TestProfileFieldsFlattensSections(t *testing.T) {
	stub := newEndpointStub(t, `[
		{"id": "1", "name": "Main", "fields": [
			{"field_id": "100", "field_type": "name", "name": "Name"},
			{"field_id": "105", "field_type": "multiple_choice", "name": "Sex", "options": [
				{"option_id": "11", "name": "Male"},
				{"option_id": "12", "name": "Female"}
			]}
		]},
		{"id": "2", "name": "Extra", "fields": [
			{"field_id": "107", "field_type": "dropdown", "name": "Service"}
		]}
	]`)

	fields, err := stub.client().ProfileFields(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/profile", stub.path)
	require.Len(t, fields, 3)
	assert.Equal(t, "100", fields[0].FieldID)
	assert.Equal(t, "105", fields[1].FieldID)
	require.Len(t, fields[1].Options, 2)
	assert.Equal(t, "11", fields[1].Options[0].OptionID)
	assert.Equal(t, "107", fields[2].FieldID)
}
