// ABOUTME: Account summary and activity log endpoints
// ABOUTME: Pass-through JSON with no field mapping logic
package api

import (
	"context"
	"net/url"
	"strconv"
)

// AccountSummary is the overview of the tenant organization.
type AccountSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Status    string `json:"status"`
	CreatedOn string `json:"created_on"`
	Details   struct {
		Timezone string `json:"timezone"`
		Country  struct {
			ID             string `json:"id"`
			Name           string `json:"name"`
			Abbreviation   string `json:"abbreviation"`
			Abbreviation2  string `json:"abbreviation_2"`
			Currency       string `json:"currency"`
			CurrencySymbol string `json:"currency_symbol"`
			DateFormat     string `json:"date_format"`
			SMSPrefix      string `json:"sms_prefix"`
		} `json:"country"`
	} `json:"details"`
}

// AccountLog is one logged action on the account. Details is populated only
// when requested, and its shape is not standardized.
type AccountLog struct {
	ID         string `json:"id"`
	OID        string `json:"oid"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	ObjectJSON string `json:"object_json"`
	CreatedOn  string `json:"created_on"`
	Details    string `json:"details,omitempty"`
}

// LogsParams select which logged actions to return.
type LogsParams struct {
	// Action is required: the logged action type, e.g. "person_updated".
	Action string
	// Start and End bound the date range; empty means unbounded.
	Start string
	End   string
	// UserID restricts results to one user's actions.
	UserID string
	// Details requests the free-form details column.
	Details bool
	// Limit caps results (Breeze default 500, max 3000).
	Limit int
}

// AccountSummary retrieves the organization overview.
func (c *Client) AccountSummary(ctx context.Context) (*AccountSummary, error) {
	var summary AccountSummary
	if err := c.get(ctx, "account/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// AccountLogs retrieves logged actions matching params.
func (c *Client) AccountLogs(ctx context.Context, p LogsParams) ([]AccountLog, error) {
	params := url.Values{"action": {p.Action}}
	if p.Start != "" {
		params.Set("start", p.Start)
	}
	if p.End != "" {
		params.Set("end", p.End)
	}
	if p.UserID != "" {
		params.Set("user_id", p.UserID)
	}
	if p.Details {
		params.Set("details", "1")
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	var logs []AccountLog
	if err := c.get(ctx, "account/list_log", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
