// ABOUTME: Account facade for summary and activity log retrieval
// ABOUTME: Thin pass-through over the raw API client
package account

import (
	"context"

	"github.com/harperreed/breeze/api"
)

// Service provides account-level operations for one tenant.
type Service struct {
	api *api.Client
}

// NewService wraps a raw API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Summary retrieves the organization overview.
func (s *Service) Summary(ctx context.Context) (*api.AccountSummary, error) {
	return s.api.AccountSummary(ctx)
}

// Logs retrieves logged account actions matching params.
func (s *Service) Logs(ctx context.Context, params api.LogsParams) ([]api.AccountLog, error) {
	return s.api.AccountLogs(ctx, params)
}
