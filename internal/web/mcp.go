package web

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ppiankov/jorfcheck/internal/pipeline"
)

// ToolVerifyNaturalisation is the MCP tool name
const ToolVerifyNaturalisation = "verify_naturalisation"

// RegisterMCPTools registers the verification tool on srv
func (s *Server) RegisterMCPTools(srv *server.MCPServer) {
	tool := mcp.NewTool(ToolVerifyNaturalisation,
		mcp.WithDescription("Check whether a person appears in a French naturalisation decree published in the Journal Officiel for a given year."),
		mcp.WithString("surname", mcp.Required(), mcp.Description("Family name, e.g. Dupont")),
		mcp.WithString("given_name", mcp.Required(), mcp.Description("Given name, e.g. Jean")),
		mcp.WithNumber("year", mcp.Required(), mcp.Description(fmt.Sprintf("Publication year, one of %v", s.gazette.Years))),
	)

	srv.AddTool(tool, s.handleMCPVerify)
}

func (s *Server) handleMCPVerify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := decodeMCPRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	req, err = req.Clean(s.gazette)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(s.verify(ctx, req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func decodeMCPRequest(request mcp.CallToolRequest) (pipeline.Request, error) {
	args := request.GetArguments()
	surname, _ := args["surname"].(string)
	givenName, _ := args["given_name"].(string)

	var year int
	switch v := args["year"].(type) {
	case float64:
		year = int(v)
	case int:
		year = v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("year: %w", err)
		}
		year = n
	default:
		return pipeline.Request{}, fmt.Errorf("year is required")
	}

	return pipeline.Request{Surname: surname, GivenName: givenName, Year: year}, nil
}
