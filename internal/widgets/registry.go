// Package widgets holds the embedded UI templates that hotel tools
// render into, plus the metadata that advertises them to MCP hosts.
package widgets

import (
	"embed"
	"fmt"
)

//go:embed templates/*.html
var templateFS embed.FS

// MIMEType is the content type MCP hosts expect for renderable widget
// templates.
const MIMEType = "text/html+skybridge"

// Widget describes one renderable template and the tool it belongs to.
type Widget struct {
	ToolID      string
	Title       string
	TemplateURI string
	Invoking    string
	Invoked     string
	Description string
	Domain      string

	html string
}

// HTML returns the embedded template markup.
func (w *Widget) HTML() string {
	return w.html
}

// ToolMeta is the metadata block attached to the widget's tool
// definition.
func (w *Widget) ToolMeta() map[string]any {
	return map[string]any{
		"openai/outputTemplate":          w.TemplateURI,
		"openai/toolInvocation/invoking": w.Invoking,
		"openai/toolInvocation/invoked":  w.Invoked,
		"openai/widgetAccessible":        true,
		"openai/resultCanProduceWidget":  true,
	}
}

// ResourceMeta is the metadata block attached to the widget's template
// resource.
func (w *Widget) ResourceMeta() map[string]any {
	return map[string]any{
		"openai/widgetDescription":   w.Description,
		"openai/widgetPrefersBorder": true,
		"openai/widgetDomain":        w.Domain,
	}
}

// ResultMeta is the metadata block attached to every tool result that
// renders into this widget.
func (w *Widget) ResultMeta() map[string]any {
	return map[string]any{
		"openai/outputTemplate": w.TemplateURI,
	}
}

// Registry indexes widgets by owning tool and by template URI.
type Registry struct {
	widgets []*Widget
	byTool  map[string]*Widget
	byURI   map[string]*Widget
}

// NewRegistry loads the built-in widget set from the embedded templates.
func NewRegistry() (*Registry, error) {
	defs := []*Widget{
		{
			ToolID:      "search_hotels",
			Title:       "Hotel Search Results",
			TemplateURI: "ui://widget/hotel-search.html",
			Invoking:    "Searching hotels...",
			Invoked:     "Hotels found",
			Description: "Displays a ranked carousel of matching hotels with photos, ratings and locations.",
			Domain:      "https://hotelzify.com",
		},
		{
			ToolID:      "check_room_availability",
			Title:       "Room Availability",
			TemplateURI: "ui://widget/room-availability.html",
			Invoking:    "Checking availability...",
			Invoked:     "Availability checked",
			Description: "Displays available room types with rate plans, discounts and stay pricing.",
			Domain:      "https://hotelzify.com",
		},
	}

	r := &Registry{
		widgets: defs,
		byTool:  make(map[string]*Widget, len(defs)),
		byURI:   make(map[string]*Widget, len(defs)),
	}
	for _, w := range defs {
		name := templateFileName(w.TemplateURI)
		raw, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("load widget template %s: %w", name, err)
		}
		w.html = string(raw)
		r.byTool[w.ToolID] = w
		r.byURI[w.TemplateURI] = w
	}
	return r, nil
}

// All returns every registered widget in registration order.
func (r *Registry) All() []*Widget {
	return r.widgets
}

// ByTool returns the widget owned by the given tool.
func (r *Registry) ByTool(toolID string) (*Widget, bool) {
	w, ok := r.byTool[toolID]
	return w, ok
}

// ByURI returns the widget serving the given template URI.
func (r *Registry) ByURI(uri string) (*Widget, bool) {
	w, ok := r.byURI[uri]
	return w, ok
}

// ByFileName returns the widget whose template URI ends with the given
// file name. The HTTP gateway serves templates by bare name.
func (r *Registry) ByFileName(name string) (*Widget, bool) {
	for _, w := range r.widgets {
		if templateFileName(w.TemplateURI) == name {
			return w, true
		}
	}
	return nil, false
}

func templateFileName(uri string) string {
	for i := len(uri) - 1; i >= 0; i-- {
		if uri[i] == '/' {
			return uri[i+1:]
		}
	}
	return uri
}
