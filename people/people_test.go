// ABOUTME: End-to-end tests for the formatted people operations
// ABOUTME: Runs the service against a stub HTTP server speaking the Breeze wire format
package people

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/models"
)

// breezeStub serves canned Breeze responses and records write requests.
type breezeStub struct {
	t      *testing.T
	server *httptest.Server

	schema  []api.ProfileField
	records map[string]string
	listing string

	addCalls    []url.Values
	updateCalls []url.Values
	deleteCalls []url.Values
}

func newBreezeStub(t *testing.T) *breezeStub {
	t.Helper()
	stub := &breezeStub{
		t:       t,
		schema:  testSchema(),
		records: map[string]string{},
		listing: "[]",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		sections := []api.ProfileSection{{ID: "1", Name: "Main", Fields: stub.schema}}
		stub.writeJSON(w, sections)
	})
	mux.HandleFunc("/people/add", func(w http.ResponseWriter, r *http.Request) {
		stub.addCalls = append(stub.addCalls, r.URL.Query())
		stub.writeBody(w, `{"id": "99", "first_name": "`+r.URL.Query().Get("first")+`", "force_first_name": "`+r.URL.Query().Get("first")+`", "last_name": "`+r.URL.Query().Get("last")+`", "path": "img/profiles/generic/gray.png"}`)
	})
	mux.HandleFunc("/people/update", func(w http.ResponseWriter, r *http.Request) {
		stub.updateCalls = append(stub.updateCalls, r.URL.Query())
		stub.writeBody(w, `{"id": "`+r.URL.Query().Get("person_id")+`"}`)
	})
	mux.HandleFunc("/people/delete", func(w http.ResponseWriter, r *http.Request) {
		stub.deleteCalls = append(stub.deleteCalls, r.URL.Query())
		stub.writeBody(w, `true`)
	})
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/people/"):]
		record, ok := stub.records[id]
		if !ok {
			stub.writeBody(w, `{"success": false, "errors": ["person not found"]}`)
			return
		}
		stub.writeBody(w, record)
	})
	mux.HandleFunc("/people", func(w http.ResponseWriter, r *http.Request) {
		stub.writeBody(w, stub.listing)
	})

	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *breezeStub) writeJSON(w http.ResponseWriter, v any) {
	s.t.Helper()
	require.NoError(s.t, json.NewEncoder(w).Encode(v))
}

func (s *breezeStub) writeBody(w http.ResponseWriter, body string) {
	s.t.Helper()
	_, err := w.Write([]byte(body))
	require.NoError(s.t, err)
}

func (s *breezeStub) service() *Service {
	return NewService(api.New("test", "key", api.WithBaseURL(s.server.URL)))
}

func (s *breezeStub) fieldsJSON(call url.Values) []api.FieldUpdate {
	s.t.Helper()
	var updates []api.FieldUpdate
	require.NoError(s.t, json.Unmarshal([]byte(call.Get("fields_json")), &updates))
	return updates
}

func TestServiceGet(t *testing.T) {
	stub := newBreezeStub(t)
	stub.records["71"] = personDetailJSON
	stub.schema = decodeTestSchema()

	profile, err := stub.service().Get(context.Background(), "71", GetOptions{
		Fields: []models.FieldKey{models.Key("service"), models.Key("ministries")},
	})
	require.NoError(t, err)

	assert.Equal(t, "71", profile.ID)
	assert.Equal(t, "Bill", profile.Name.First)
	require.NotNil(t, profile.Gender)
	assert.Equal(t, "Male", *profile.Gender)
	require.NotNil(t, profile.Fields["service"])
	assert.Equal(t, "3rd Service", *profile.Fields["service"])
	require.NotNil(t, profile.Fields["ministries"])
	assert.Equal(t, "Choir · Nursery", *profile.Fields["ministries"])
}

func TestServiceGetNotFound(t *testing.T) {
	stub := newBreezeStub(t)

	_, err := stub.service().Get(context.Background(), "404", GetOptions{})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "person not found", apiErr.Message)
}

func TestServiceList(t *testing.T) {
	stub := newBreezeStub(t)
	stub.listing = `[
		{"id": "1", "first_name": "Ann", "force_first_name": "Ann", "last_name": "Lee", "path": "img/profiles/generic/gray.png", "details": {"person_id": "1"}},
		{"id": "2", "first_name": "Bob", "force_first_name": "Bob", "last_name": "Ray", "path": "img/profiles/generic/gray.png", "details": {"108": "Room 7"}}
	]`

	profiles, err := stub.service().List(context.Background(), ListOptions{
		Fields: []models.FieldKey{models.Key("roomNumber", "room number")},
	})
	require.NoError(t, err)

	require.Len(t, profiles, 2)
	assert.Equal(t, "Ann", profiles[0].Name.First)
	assert.Nil(t, profiles[0].Fields["roomNumber"])
	require.NotNil(t, profiles[1].Fields["roomNumber"])
	assert.Equal(t, "Room 7", *profiles[1].Fields["roomNumber"])
}

func TestServiceUpdate(t *testing.T) {
	stub := newBreezeStub(t)

	updates, err := stub.service().Update(context.Background(), "71", &models.UpdateParams{
		Gender: strptr("Female"),
		Fields: map[string]*models.FieldValue{"service": models.Value("2nd Service")},
	})
	require.NoError(t, err)

	require.Len(t, stub.updateCalls, 1)
	call := stub.updateCalls[0]
	assert.Equal(t, "71", call.Get("person_id"))

	sent := stub.fieldsJSON(call)
	require.Len(t, sent, 2)
	assert.Equal(t, "105", sent[0].FieldID)
	assert.Equal(t, "radio", sent[0].FieldType)
	assert.Equal(t, "105-opt-b", sent[0].Response)
	assert.Equal(t, "107", sent[1].FieldID)
	assert.Equal(t, "107-opt-b", sent[1].Response)

	// The emitted directives come back for inspection.
	require.Len(t, updates, 2)
	assert.Equal(t, "105", updates[0].FieldID)
}

func TestServiceAdd(t *testing.T) {
	stub := newBreezeStub(t)

	id, err := stub.service().Add(context.Background(), &models.AddParams{
		First: " William ",
		Last:  "Frost",
		UpdateParams: models.UpdateParams{
			Fields: map[string]*models.FieldValue{"service": models.Value("3rd service")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "99", id)

	require.Len(t, stub.addCalls, 1)
	assert.Equal(t, "William", stub.addCalls[0].Get("first"))
	assert.Equal(t, "Frost", stub.addCalls[0].Get("last"))
	assert.Equal(t, "[]", stub.addCalls[0].Get("fields_json"))

	// Everything beyond the bare names goes through the update path.
	require.Len(t, stub.updateCalls, 1)
	sent := stub.fieldsJSON(stub.updateCalls[0])
	require.Len(t, sent, 3)
	assert.Equal(t, "name", sent[0].FieldType)
	assert.Equal(t, "William", sent[0].Details["value"])
	assert.Equal(t, "first_name", sent[0].Details["part"])
	assert.Equal(t, "Frost", sent[1].Details["value"])
	assert.Equal(t, "last_name", sent[1].Details["part"])
	assert.Equal(t, "radio", sent[2].FieldType)
	assert.Equal(t, "107-opt-c", sent[2].Response)

	// Reading the person back surfaces the stored option label.
	stub.records["99"] = `{
		"id": "99", "first_name": "William", "force_first_name": "William",
		"last_name": "Frost", "path": "img/profiles/generic/gray.png",
		"details": {"107": {"value": "107-opt-c", "name": "3rd Service"}}
	}`
	profile, err := stub.service().Get(context.Background(), "99", GetOptions{
		Fields: []models.FieldKey{models.Key("service")},
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Fields["service"])
	assert.Equal(t, "3rd Service", *profile.Fields["service"])
}

func TestServiceAddRequiresNames(t *testing.T) {
	stub := newBreezeStub(t)

	_, err := stub.service().Add(context.Background(), &models.AddParams{First: "  ", Last: "Frost"})
	require.Error(t, err)
	assert.Empty(t, stub.addCalls)
}

func TestServiceDelete(t *testing.T) {
	stub := newBreezeStub(t)

	require.NoError(t, stub.service().Delete(context.Background(), "71"))
	require.Len(t, stub.deleteCalls, 1)
	assert.Equal(t, "71", stub.deleteCalls[0].Get("person_id"))
}

func TestServiceProfileFields(t *testing.T) {
	stub := newBreezeStub(t)

	lookup, err := stub.service().ProfileFields(context.Background(), []models.FieldKey{models.Key("service")})
	require.NoError(t, err)

	match := func(key string) *LookupField {
		for i := range lookup {
			if lookup[i].Key == key {
				return &lookup[i]
			}
		}
		return nil
	}
	require.NotNil(t, match("gender"))
	assert.Equal(t, "105", match("gender").FieldID)
	require.NotNil(t, match("service"))
	assert.Equal(t, "107", match("service").FieldID)
	assert.Nil(t, match("campus"))
}
