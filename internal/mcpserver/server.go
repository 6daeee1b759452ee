// Package mcpserver exposes the tool registry and widget templates over
// the Model Context Protocol, on both stdio and streamable HTTP
// transports.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/tools"
	"github.com/hotelzify/concierge/internal/widgets"
)

const (
	serverName    = "hotelzify-concierge"
	serverVersion = "1.0.0"
)

// Server wires tools and widget resources into an MCP server.
type Server struct {
	mcp     *mcp.Server
	tools   *tools.Registry
	widgets *widgets.Registry
	log     *zap.Logger
}

// New builds the MCP server: every registered tool becomes an MCP tool
// (carrying its widget metadata when one exists) and every widget
// template becomes a readable ui:// resource.
func New(registry *tools.Registry, widgetReg *widgets.Registry, log *zap.Logger) *Server {
	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
		tools:   registry,
		widgets: widgetReg,
		log:     log.Named("mcp"),
	}

	for _, tool := range registry.AllTools() {
		s.registerTool(tool)
	}
	for _, w := range widgetReg.All() {
		s.registerWidget(w)
	}
	return s
}

func (s *Server) registerTool(tool tools.Tool) {
	def := &mcp.Tool{
		Name:        string(tool.Name()),
		Description: tool.Description(),
		InputSchema: tool.InputSchema(),
	}

	widget, hasWidget := s.widgets.ByTool(string(tool.Name()))
	if hasWidget {
		def.Meta = mcp.Meta(widget.ToolMeta())
	}

	mcp.AddTool(s.mcp, def, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		s.log.Info("tool call", zap.String("tool", string(tool.Name())))

		result := tool.Execute(ctx, args)

		out := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
		}
		if hasWidget {
			out.Meta = mcp.Meta(widget.ResultMeta())
		}
		return out, result.Structured, nil
	})
}

func (s *Server) registerWidget(w *widgets.Widget) {
	s.mcp.AddResource(&mcp.Resource{
		URI:         w.TemplateURI,
		Name:        w.ToolID,
		Title:       w.Title,
		Description: w.Description,
		MIMEType:    widgets.MIMEType,
		Meta:        mcp.Meta(w.ResourceMeta()),
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      w.TemplateURI,
				MIMEType: widgets.MIMEType,
				Text:     w.HTML(),
				Meta:     mcp.Meta(w.ResourceMeta()),
			}},
		}, nil
	})
}

// RunStdio serves MCP over stdin/stdout until the context is cancelled.
// Logging must already be routed to stderr.
func (s *Server) RunStdio(ctx context.Context) error {
	s.log.Info("serving MCP on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable-HTTP MCP endpoint for mounting into
// the gateway router.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}
