package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tracklist/internal/application/commands"
	"tracklist/internal/ports"
)

// RegisterWriteTools adds the manager-mode file tools to the MCP server.
// index may be nil, in which case sync_index is not offered.
func RegisterWriteTools(s *server.MCPServer, manager ports.DesignManager, index ports.DesignIndex) {
	s.AddTool(renameTool(), renameHandler(manager))
	s.AddTool(deleteTool(), deleteHandler(manager))
	if index != nil {
		s.AddTool(syncIndexTool(), syncIndexHandler(index))
	}
}

// --- rename_design ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename_design",
		mcp.WithDescription("Rename a design file. The extension is kept."),
		mcp.WithString("path",
			mcp.Description("Path of the design file"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New design name, without extension"),
			mcp.Required(),
		),
	)
}

func renameHandler(manager ports.DesignManager) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameDesignCommand(manager,
			req.GetString("path", ""),
			req.GetString("new_name", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Ref.Path)), nil
	}
}

// --- delete_design ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_design",
		mcp.WithDescription("Permanently delete a design file."),
		mcp.WithString("path",
			mcp.Description("Path of the design file"),
			mcp.Required(),
		),
	)
}

func deleteHandler(manager ports.DesignManager) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteDesignCommand(manager, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sync_index ---

func syncIndexTool() mcp.Tool {
	return mcp.NewTool("sync_index",
		mcp.WithDescription("Bring the design index up to date with the design directories."),
		mcp.WithBoolean("full",
			mcp.Description("Rebuild the index from scratch"),
		),
	)
}

func syncIndexHandler(index ports.DesignIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSyncIndexCommand(index, req.GetBool("full", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		s := result.Stats
		kind := "incremental"
		if result.Full {
			kind = "full"
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"%s sync: %d scanned, %d added, %d updated, %d deleted in %s",
			kind, s.FilesScanned, s.EntriesAdded, s.EntriesUpdated, s.EntriesDeleted, s.Duration,
		)), nil
	}
}
