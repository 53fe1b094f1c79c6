// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the Breeze people operations as MCP tools on stdio
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/harperreed/breeze/handlers"
	"github.com/harperreed/breeze/people"
)

const mcpVersion = "0.1.0"

// MCPCommand starts the MCP server on stdio.
func MCPCommand(svc *people.Service, log *zap.Logger) error {
	log.Info("starting breeze MCP server")

	peopleHandlers := handlers.NewPeopleHandlers(svc)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "breeze",
		Version: mcpVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_person",
		Description: "Get one person's formatted profile from Breeze",
	}, peopleHandlers.GetPerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_people",
		Description: "List formatted people profiles from Breeze",
	}, peopleHandlers.ListPeople)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_person",
		Description: "Add a person to Breeze with profile fields matched and formatted",
	}, peopleHandlers.AddPerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_person",
		Description: "Update a person in Breeze with profile fields matched and formatted",
	}, peopleHandlers.UpdatePerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_person",
		Description: "Delete a person from Breeze",
	}, peopleHandlers.DeletePerson)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_profile_fields",
		Description: "List the tenant's resolved profile field schema",
	}, peopleHandlers.ListProfileFields)

	// Run server on stdio transport
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
