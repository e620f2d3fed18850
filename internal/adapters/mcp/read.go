package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"tracklist/internal/application/commands"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// ReadDeps is what the read-only tools need
type ReadDeps struct {
	Repo   ports.DesignRepository
	Rides  domain.RideTypeTable
	Format domain.MeasurementFormat
	Log    logrus.FieldLogger
}

// RegisterReadTools adds all read-only design tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps ReadDeps) {
	s.AddTool(listDesignsTool(), listDesignsHandler(deps))
	s.AddTool(showDesignTool(), showDesignHandler(deps))
	s.AddTool(sortKeysTool(), sortKeysHandler(deps))
	s.AddTool(rideTypesTool(), rideTypesHandler(deps))
}

// --- list_designs ---

func listDesignsTool() mcp.Tool {
	return mcp.NewTool("list_designs",
		mcp.WithDescription("List the track designs of a ride type, filtered by name and ordered by a statistic."),
		mcp.WithNumber("ride_type",
			mcp.Description("Ride type index (0-255). Use ride_types to look them up."),
			mcp.Required(),
		),
		mcp.WithString("vehicle",
			mcp.Description("Vehicle entry name, for ride types that list vehicles separately"),
		),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring the design name must contain"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort key slug (e.g. excitement, max-speed). Use sort_keys to see what a ride type offers."),
		),
		mcp.WithBoolean("ascending",
			mcp.Description("Put the largest values first instead of the smallest"),
		),
		mcp.WithBoolean("costs",
			mcp.Description("Include each design's cost and the total"),
		),
	)
}

func listDesignsHandler(deps ReadDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rideType, err := rideTypeArg(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewListDesignsCommand(deps.Repo, deps.Rides, deps.Log, domain.RideSelection{
			Type:    rideType,
			Vehicle: req.GetString("vehicle", ""),
		})
		cmd.Filter = req.GetString("filter", "")
		cmd.SortKey = req.GetString("sort", "")
		cmd.Ascending = req.GetBool("ascending", false)
		cmd.IncludeCost = req.GetBool("costs", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatList(result, cmd.IncludeCost), nil
	}
}

func formatList(result *commands.ListResult, costs bool) *mcp.CallToolResult {
	if len(result.Designs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No designs for %s.", result.RideName))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, sorted by %s\n", result.RideName, result.SortKey.Label())
	for _, d := range result.Designs {
		if costs {
			fmt.Fprintf(&sb, "%s  %s  %d\n", d.Name, d.Path, d.Cost)
			continue
		}
		fmt.Fprintf(&sb, "%s  %s\n", d.Name, d.Path)
	}
	if costs {
		fmt.Fprintf(&sb, "Total cost: %d\n", result.TotalCost)
	}
	return mcp.NewToolResultText(sb.String())
}

// --- show_design ---

func showDesignTool() mcp.Tool {
	return mcp.NewTool("show_design",
		mcp.WithDescription("Show the statistics of one track design."),
		mcp.WithString("path",
			mcp.Description("Path of the design file"),
			mcp.Required(),
		),
	)
}

func showDesignHandler(deps ReadDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewShowDesignCommand(deps.Repo, deps.Rides, deps.Format, req.GetString("path", ""))
		details, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s (%s)\n", details.Ref.Name, details.RideName)
		for _, line := range details.Stats {
			fmt.Fprintf(&sb, "%s: %s\n", line.Label, line.Value)
		}
		for _, w := range details.Warnings {
			fmt.Fprintf(&sb, "Warning: %s\n", w)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- sort_keys ---

func sortKeysTool() mcp.Tool {
	return mcp.NewTool("sort_keys",
		mcp.WithDescription("List the sort keys offered for a ride type."),
		mcp.WithNumber("ride_type",
			mcp.Description("Ride type index (0-255)"),
			mcp.Required(),
		),
	)
}

func sortKeysHandler(deps ReadDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rideType, err := rideTypeArg(req)
		if err != nil {
			return toolError(err)
		}

		keys, err := commands.NewSortKeysCommand(deps.Rides, rideType).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatItems(keys, func(k domain.SortKey) string {
			return fmt.Sprintf("%s  %s", k, k.Label())
		}), nil
	}
}

// --- ride_types ---

func rideTypesTool() mcp.Tool {
	return mcp.NewTool("ride_types",
		mcp.WithDescription("List the known ride types with their sort category."),
	)
}

func rideTypesHandler(deps ReadDeps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return formatItems(deps.Rides.Types(), func(rt domain.RideType) string {
			info := deps.Rides.Lookup(rt)
			return fmt.Sprintf("%d  %s  %s", rt, info.Name, info.Category)
		}), nil
	}
}

// --- helpers ---

func rideTypeArg(req mcp.CallToolRequest) (domain.RideType, error) {
	v, err := req.RequireInt("ride_type")
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("ride_type must be between 0 and 255, got %d", v)
	}
	return domain.RideType(v), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatItems[T any](items []T, format func(T) string) *mcp.CallToolResult {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results.")
	}

	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(format(it))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String())
}
