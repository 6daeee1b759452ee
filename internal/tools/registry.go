// Package tools implements the hotel tool set exposed over MCP: hotel
// search, room availability, and property FAQ lookup.
package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolSearchHotels      ToolName = "search_hotels"
	ToolCheckAvailability ToolName = "check_room_availability"
	ToolQueryHotelInfo    ToolName = "query_hotel_info"
)

// Result is what a tool hands back to the transport layer: a short text
// summary for the conversation plus the full structured payload for the
// widget. Tools never return Go errors; failures are encoded inside the
// structured payload so hosts always receive a well-formed envelope.
type Result struct {
	Text       string
	Structured any
}

// Tool is a named, schema-described operation invocable by an MCP host.
type Tool interface {
	Name() ToolName
	Description() string
	InputSchema() *jsonschema.Schema
	Execute(ctx context.Context, args map[string]any) Result
}

// Registry holds a set of named tools and exposes them for execution.
type Registry struct {
	tools map[ToolName]Tool
	order []ToolName
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name ToolName) Tool {
	return r.tools[name]
}

// AllTools returns every registered tool in registration order.
func (r *Registry) AllTools() []Tool {
	list := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}
