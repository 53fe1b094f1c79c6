// ABOUTME: Account CLI commands
// ABOUTME: Summary and activity log retrieval
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/breeze/account"
	"github.com/harperreed/breeze/api"
)

// AccountSummaryCommand prints the organization overview.
func AccountSummaryCommand(svc *account.Service, args []string) error {
	fs := flag.NewFlagSet("account-summary", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Print summary as JSON")
	_ = fs.Parse(args)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch account summary: %w", err)
	}

	if *asJSON {
		return printJSON(summary)
	}

	fmt.Printf("%s (%s.breezechms.com)\n", summary.Name, summary.Subdomain)
	fmt.Printf("  Status:   %s\n", summary.Status)
	fmt.Printf("  Created:  %s\n", summary.CreatedOn)
	fmt.Printf("  Timezone: %s\n", summary.Details.Timezone)
	fmt.Printf("  Country:  %s\n", summary.Details.Country.Name)
	return nil
}

// AccountLogsCommand prints logged account actions.
func AccountLogsCommand(svc *account.Service, args []string) error {
	fs := flag.NewFlagSet("account-logs", flag.ExitOnError)
	action := fs.String("action", "", "Logged action type, e.g. person_updated (required)")
	start := fs.String("start", "", "Start of date range (YYYY-MM-DD)")
	end := fs.String("end", "", "End of date range (YYYY-MM-DD)")
	userID := fs.String("user", "", "Only actions by this user id")
	details := fs.Bool("details", false, "Include the details column")
	limit := fs.Int("limit", 0, "Maximum log entries (Breeze default 500, max 3000)")
	asJSON := fs.Bool("json", false, "Print logs as JSON")
	_ = fs.Parse(args)

	if *action == "" {
		return fmt.Errorf("--action is required")
	}

	logs, err := svc.Logs(context.Background(), api.LogsParams{
		Action:  *action,
		Start:   *start,
		End:     *end,
		UserID:  *userID,
		Details: *details,
		Limit:   *limit,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch account logs: %w", err)
	}

	if *asJSON {
		return printJSON(logs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tACTION\tCREATED")
	for _, entry := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ID, entry.UserID, entry.Action, entry.CreatedOn)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d log entries\n", len(logs))
	return nil
}
