package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haystacksec/kustodian/internal/logs"
	"github.com/haystacksec/kustodian/internal/registry"
	"github.com/haystacksec/kustodian/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Launch Kustodian's MCP server",
	Long:  `Launch Kustodian's MCP server`,
	Run: func(cmd *cobra.Command, args []string) {
		mcpServer()
	},
}

func mcpServer() {
	// stdout carries the MCP protocol, so route logs to a file
	slog.SetDefault(logs.FileLogger())

	s := server.NewMCPServer(
		"Kustodian Server",
		version.FullVersion(),
		server.WithLogging(),
	)

	for _, name := range registry.Names() {
		entry, _ := registry.GetRegistryEntry(name)
		s.AddTool(toolAdapter(entry.Tool), toolHandler)
	}

	// Start the stdio server
	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}

func toolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tool, ok := registry.GetTool(request.Params.Name)
	if !ok {
		return nil, fmt.Errorf("tool not found")
	}

	args := make(map[string]string, len(tool.Params))
	arguments := request.GetArguments()
	for _, param := range tool.Params {
		value := arguments[param.Name]
		if value == nil {
			continue
		}
		args[param.Name] = fmt.Sprintf("%v", value)
	}

	out, err := tool.Run(args)
	if err != nil {
		slog.Error("Tool run failed", "tool", tool.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

func toolAdapter(tool registry.Tool) mcp.Tool {
	toolOpts := []mcp.ToolOption{
		mcp.WithDescription(tool.Description),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			Title: tool.Name,
		}),
	}

	for _, param := range tool.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(param.Description)}
		if param.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if param.Default != "" {
			propOpts = append(propOpts, mcp.DefaultString(param.Default))
		}
		toolOpts = append(toolOpts, mcp.WithString(param.Name, propOpts...))
	}

	return mcp.NewTool(tool.Name, toolOpts...)
}
