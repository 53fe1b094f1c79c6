// ABOUTME: Formatted people operations layered over the raw Breeze API
// ABOUTME: Orchestrates schema resolution with the profile decoder and encoder
package people

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/models"
)

// Service provides the formatted people operations. Each call fetches its
// own schema snapshot; nothing is cached or shared between calls.
type Service struct {
	api *api.Client
}

// NewService wraps a raw API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// GetOptions select extra custom fields to resolve and merge into a profile.
type GetOptions struct {
	Fields []models.FieldKey
}

// ListOptions filter a listing and select extra custom fields.
type ListOptions struct {
	FilterJSON map[string]string
	Limit      int
	Offset     int
	Fields     []models.FieldKey
}

// ProfileFields fetches the tenant schema and resolves the built-in keys
// plus any requested custom keys against it.
func (s *Service) ProfileFields(ctx context.Context, keys []models.FieldKey) ([]LookupField, error) {
	schema, err := s.api.ProfileFields(ctx)
	if err != nil {
		return nil, err
	}
	return resolveFields(schema, keys), nil
}

// Get fetches one person with profile fields formatted and merged in. The
// schema and the record are fetched concurrently and joined before decoding.
func (s *Service) Get(ctx context.Context, id string, opts GetOptions) (*models.Person, error) {
	var (
		lookup []LookupField
		detail *api.PersonDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lookup, err = s.ProfileFields(gctx, opts.Fields)
		return err
	})
	g.Go(func() error {
		var err error
		detail, err = s.api.GetPersonDetail(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decodePerson(detail, opts.Fields, lookup), nil
}

// List fetches people with profile fields formatted and merged in.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*models.Person, error) {
	var (
		lookup  []LookupField
		details []api.PersonDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lookup, err = s.ProfileFields(gctx, opts.Fields)
		return err
	})
	g.Go(func() error {
		var err error
		details, err = s.api.ListPeopleDetail(gctx, api.ListParams{
			FilterJSON: opts.FilterJSON,
			Limit:      opts.Limit,
			Offset:     opts.Offset,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	profiles := make([]*models.Person, 0, len(details))
	for i := range details {
		profiles = append(profiles, decodePerson(&details[i], opts.Fields, lookup))
	}
	return profiles, nil
}

// Update matches the request against a fresh schema snapshot, encodes it
// into field update directives, and applies them. The emitted directives are
// returned for inspection.
func (s *Service) Update(ctx context.Context, id string, params *models.UpdateParams) ([]api.FieldUpdate, error) {
	lookup, err := s.ProfileFields(ctx, customKeys(params.Fields))
	if err != nil {
		return nil, err
	}
	updates := encodeFieldUpdates(id, params, lookup)
	if _, err := s.api.UpdatePerson(ctx, id, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// Add creates the person with first and last name only to obtain an id,
// then routes everything else through the update path. Returns the new id.
func (s *Service) Add(ctx context.Context, params *models.AddParams) (string, error) {
	first := strings.TrimSpace(params.First)
	last := strings.TrimSpace(params.Last)
	if first == "" || last == "" {
		return "", fmt.Errorf("first and last name are required")
	}

	added, err := s.api.AddPerson(ctx, first, last, nil)
	if err != nil {
		return "", err
	}

	update := params.UpdateParams
	if update.Name.First == nil {
		update.Name.First = &first
	}
	if update.Name.Last == nil {
		update.Name.Last = &last
	}
	if _, err := s.Update(ctx, added.ID, &update); err != nil {
		return "", err
	}
	return added.ID, nil
}

// Delete removes a person. This is an alias for the raw delete endpoint.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.DeletePerson(ctx, id)
}

// customKeys turns the update request's custom-field names into logical
// keys, sorted for a stable resolution order.
func customKeys(fields map[string]*models.FieldValue) []models.FieldKey {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return models.Keys(names...)
}
