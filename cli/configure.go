// ABOUTME: Configure subcommand storing Breeze credentials
// ABOUTME: Writes subdomain and API key to the XDG config file
package cli

import (
	"flag"
	"fmt"
)

// ConfigureCommand stores the tenant subdomain and API key.
func ConfigureCommand(args []string) error {
	fs := flag.NewFlagSet("configure", flag.ExitOnError)
	subdomain := fs.String("subdomain", "", "Breeze subdomain (YOURSUBDOMAIN.breezechms.com) (required)")
	apiKey := fs.String("api-key", "", "Breeze API key from the Extensions page (required)")
	_ = fs.Parse(args)

	if *subdomain == "" {
		return fmt.Errorf("--subdomain is required")
	}
	if *apiKey == "" {
		return fmt.Errorf("--api-key is required")
	}

	cfg := &Config{Subdomain: *subdomain, APIKey: *apiKey}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Credentials saved: %s\n", ConfigPath())
	return nil
}
