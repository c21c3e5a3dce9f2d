package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/timeutil"
)

var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "integer", "description": "Positive unique identifier."},
		"start":    map[string]any{"type": "string", "description": "Start date, YYYY-MM-DD."},
		"end":      map[string]any{"type": "string", "description": "End date, YYYY-MM-DD, not before start."},
		"name":     map[string]any{"type": "string"},
		"category": map[string]any{"type": "string", "enum": categoryNames()},
	},
	"required": []string{"id", "start", "end"},
}

func categoryNames() []string {
	all := category.All()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	return names
}

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAssignLanesTool(srv, svc)
	registerComputeViewWindowTool(srv, svc)
	registerFilterVisibleTool(srv, svc)
	registerResolveRepositionTool(srv, svc)
	registerGetLayoutTool(srv, svc)
	registerMoveItemTool(srv, svc)
	registerEditItemTool(srv, svc)
	registerSetZoomTool(srv, svc)
	registerSetCategoriesTool(srv, svc)
}

func withItems() mcp.ToolOption {
	return mcp.WithArray("items",
		mcp.Required(),
		mcp.Description("Timeline items to operate on."),
		mcp.Items(itemSchema),
	)
}

func registerAssignLanesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"assign_lanes",
		mcp.WithDescription("Pack items into the fewest lanes so no two items sharing a lane overlap. Items touching on the same day overlap."),
		withItems(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Items []item.Item `json:"items"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AssignLanes(args.Items)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerComputeViewWindowTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"compute_view_window",
		mcp.WithDescription("Compute the visible date window for items: their extent padded by one month each side, narrowed by zoom."),
		withItems(),
		mcp.WithNumber("zoom",
			mcp.Description(fmt.Sprintf("Zoom factor, clamped to [%g, %g]. Defaults to %g.", layout.MinZoom, layout.MaxZoom, layout.DefaultZoom)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Items []item.Item `json:"items"`
			Zoom  *float64    `json:"zoom"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		zoom := layout.DefaultZoom
		if args.Zoom != nil {
			zoom = *args.Zoom
		}

		dto, err := svc.ComputeViewWindow(args.Items, zoom)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerFilterVisibleTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"filter_visible",
		mcp.WithDescription("Keep items that intersect the window and belong to an active category."),
		withItems(),
		mcp.WithString("window_start",
			mcp.Required(),
			mcp.Description("Window start date, YYYY-MM-DD."),
		),
		mcp.WithString("window_end",
			mcp.Required(),
			mcp.Description("Window end date, YYYY-MM-DD."),
		),
		mcp.WithArray("categories",
			mcp.Description("Active categories. Empty keeps every category."),
			mcp.Items(map[string]any{"type": "string", "enum": categoryNames()}),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Items       []item.Item `json:"items"`
			WindowStart string      `json:"window_start"`
			WindowEnd   string      `json:"window_end"`
			Categories  []string    `json:"categories"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		items, err := svc.FilterVisible(args.Items, args.WindowStart, args.WindowEnd, args.Categories)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count": len(items),
			"items": items,
		})
	})
}

func registerResolveRepositionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"resolve_reposition",
		mcp.WithDescription("Convert a horizontal drag in pixels into new dates for an item, keeping its duration."),
		mcp.WithObject("item",
			mcp.Required(),
			mcp.Description("Item being dragged."),
			mcp.Properties(itemSchema["properties"].(map[string]any)),
		),
		mcp.WithNumber("pixel_delta_x",
			mcp.Required(),
			mcp.Description("Horizontal drag distance in pixels, including scroll."),
		),
		mcp.WithString("window_start",
			mcp.Required(),
			mcp.Description("Window start date, YYYY-MM-DD."),
		),
		mcp.WithNumber("total_days",
			mcp.Required(),
			mcp.Description("Days covered by the window."),
		),
		mcp.WithNumber("track_width",
			mcp.Required(),
			mcp.Description("Rendered track width in pixels."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Item        item.Item `json:"item"`
			PixelDeltaX float64   `json:"pixel_delta_x"`
			WindowStart string    `json:"window_start"`
			TotalDays   float64   `json:"total_days"`
			TrackWidth  float64   `json:"track_width"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.ResolveReposition(args.Item, args.PixelDeltaX, args.WindowStart, args.TotalDays, args.TrackWidth)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetLayoutTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_layout",
		mcp.WithDescription("Compute the layout of the server's items for the current zoom and category filter."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Layout()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_item",
		mcp.WithDescription("Drag one of the server's items horizontally and commit the new dates."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
		mcp.WithNumber("delta_x",
			mcp.Description("Drag distance in pixels."),
		),
		mcp.WithString("span",
			mcp.Description("Shift expressed in days or weeks, such as 3d, -1w or 1w2d. Added to delta_x."),
		),
		mcp.WithNumber("track_width",
			mcp.Description("Rendered track width in pixels. Defaults to the configured width."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts := app.MoveOptions{
			ID:     id,
			DeltaX: request.GetFloat("delta_x", 0),
			Width:  request.GetFloat("track_width", svc.TrackWidth),
		}
		if raw := strings.TrimSpace(request.GetString("span", "")); raw != "" {
			span, _, err := timeutil.ParseSpan(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			opts.Span = span
		}

		dto, err := svc.MoveItem(opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEditItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_item",
		mcp.WithDescription("Change the name, dates or category of one of the server's items."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
		mcp.WithString("name"),
		mcp.WithString("start", mcp.Description("New start date, YYYY-MM-DD.")),
		mcp.WithString("end", mcp.Description("New end date, YYYY-MM-DD.")),
		mcp.WithString("category", mcp.Enum(categoryNames()...)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID       int     `json:"id"`
			Name     *string `json:"name"`
			Start    *string `json:"start"`
			End      *string `json:"end"`
			Category *string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		opts, err := editOptions(args.Name, args.Start, args.End, args.Category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EditItem(args.ID, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func editOptions(name, start, end, cat *string) (app.EditOptions, error) {
	opts := app.EditOptions{Name: name}
	if start != nil {
		d, err := item.ParseDate(*start)
		if err != nil {
			return opts, fmt.Errorf("start: %w", err)
		}
		opts.Start = &d
	}
	if end != nil {
		d, err := item.ParseDate(*end)
		if err != nil {
			return opts, fmt.Errorf("end: %w", err)
		}
		opts.End = &d
	}
	if cat != nil {
		c, err := category.Parse(*cat)
		if err != nil {
			return opts, err
		}
		opts.Category = &c
	}
	return opts, nil
}

func registerSetZoomTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_zoom",
		mcp.WithDescription("Set the server's zoom factor, or step it in or out."),
		mcp.WithNumber("zoom",
			mcp.Description(fmt.Sprintf("Zoom factor, clamped to [%g, %g].", layout.MinZoom, layout.MaxZoom)),
		),
		mcp.WithString("action",
			mcp.Description("Step instead of setting a factor."),
			mcp.Enum("in", "out", "reset"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		current := layout.DefaultZoom
		if svc.App != nil && svc.App.View != nil {
			current = svc.App.View.Zoom()
		}
		next := request.GetFloat("zoom", current)
		switch request.GetString("action", "") {
		case "in":
			next = layout.ZoomIn(current)
		case "out":
			next = layout.ZoomOut(current)
		case "reset":
			next = layout.DefaultZoom
		}

		dto, err := svc.SetZoom(next)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_categories",
		mcp.WithDescription("Set the server's active category filter. An empty list shows every category."),
		mcp.WithArray("categories",
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string", "enum": categoryNames()}),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Categories []string `json:"categories"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SetCategories(args.Categories)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"categories": dto})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
