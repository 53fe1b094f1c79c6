// ABOUTME: Entry point for the breeze CLI and MCP server
// ABOUTME: Routes subcommands and wires credentials into the API client
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harperreed/breeze/account"
	"github.com/harperreed/breeze/api"
	"github.com/harperreed/breeze/cli"
	"github.com/harperreed/breeze/logging"
	"github.com/harperreed/breeze/people"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("breeze version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	// Configure works without credentials
	if command == "configure" {
		if err := cli.ConfigureCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	logger, err := logging.NewLogger(*logLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.IsConfigured() {
		fmt.Println("Error: no credentials configured")
		fmt.Println("Run 'breeze configure --subdomain YOURSUBDOMAIN --api-key YOURKEY'")
		fmt.Println("or set BREEZE_SUBDOMAIN and BREEZE_API_KEY.")
		os.Exit(1)
	}

	client := api.New(cfg.Subdomain, cfg.APIKey, api.WithLogger(logger))
	peopleSvc := people.NewService(client)
	accountSvc := account.NewService(client)

	switch command {
	case "mcp":
		if err := cli.MCPCommand(peopleSvc, logger); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "get-person":
		if err := cli.GetPersonCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "list-people":
		if err := cli.ListPeopleCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "add-person":
		if err := cli.AddPersonCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "update-person":
		if err := cli.UpdatePersonCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "delete-person":
		if err := cli.DeletePersonCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "profile-fields":
		if err := cli.ProfileFieldsCommand(peopleSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "account-summary":
		if err := cli.AccountSummaryCommand(accountSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "account-logs":
		if err := cli.AccountLogsCommand(accountSvc, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("breeze - Breeze ChMS client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  breeze [flags] <command> [command flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  configure        Store Breeze credentials")
	fmt.Println("  get-person       Get one formatted profile")
	fmt.Println("  list-people      List formatted profiles")
	fmt.Println("  add-person       Add a person")
	fmt.Println("  update-person    Update a person")
	fmt.Println("  delete-person    Delete a person")
	fmt.Println("  profile-fields   Show the resolved field schema")
	fmt.Println("  account-summary  Show the account overview")
	fmt.Println("  account-logs     Show account activity logs")
	fmt.Println("  mcp              Start the MCP server on stdio")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -version         Show version and exit")
	fmt.Println("  -log-level       Log level (debug, info, warn, error)")
}
