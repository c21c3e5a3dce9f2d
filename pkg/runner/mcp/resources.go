package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerItemsResource(srv, svc)
	registerItemTemplate(srv, svc)
	registerLayoutResource(srv, svc)
	registerCategoriesResource(srv, svc)
}

func registerItemsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"timeline://items",
		"Items",
		mcp.WithResourceDescription("Every timeline item held by the server."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		items, err := svc.Items()
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"items": items,
			"count": len(items),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerItemTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"timeline://items/{id}",
		"Item Details",
		mcp.WithTemplateDescription("A single timeline item."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw := templateArgument(request.Params.Arguments, "id")
		if raw == "" {
			return nil, fmt.Errorf("item id is required")
		}
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}

		dto, err := svc.Item(id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"item": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerLayoutResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"timeline://layout",
		"Layout",
		mcp.WithResourceDescription("Window, lanes and placements for the current zoom and category filter."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Layout()
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"timeline://categories",
		"Categories",
		mcp.WithResourceDescription("Category palette and which categories are currently shown."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload := map[string]any{
			"categories": svc.Categories(),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArgument reads a URI template variable, which arrives either as a
// string or as a single-element list.
func templateArgument(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
