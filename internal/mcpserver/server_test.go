package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/tools"
	"github.com/hotelzify/concierge/internal/widgets"
)

// connect runs the server over in-memory transports and returns a live
// client session. The FAQ tool is the only one registered: it needs no
// upstream, which keeps the protocol test hermetic.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()

	faqTool, err := tools.NewQueryHotelInfoTool(zap.NewNop())
	require.NoError(t, err)
	registry := tools.NewRegistryBuilder().WithTool(faqTool).Build()

	widgetReg, err := widgets.NewRegistry()
	require.NoError(t, err)

	srv := New(registry, widgetReg, zap.NewNop())

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err = srv.mcp.Connect(context.Background(), serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func TestListTools(t *testing.T) {
	session := connect(t)

	listed, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, listed.Tools, 1)
	assert.Equal(t, "query_hotel_info", listed.Tools[0].Name)
	assert.NotEmpty(t, listed.Tools[0].Description)
}

func TestCallTool_TextAndStructured(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "query_hotel_info",
		Arguments: map[string]any{"query": "what time is check-in"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "2:00 PM")

	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, structured["matched"])
	assert.Equal(t, "check-in", structured["topic"])
	assert.Equal(t, "loaded", structured["status"])
}

func TestListAndReadWidgetResources(t *testing.T) {
	session := connect(t)

	listed, err := session.ListResources(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, listed.Resources, 2)

	uris := []string{listed.Resources[0].URI, listed.Resources[1].URI}
	assert.Contains(t, uris, "ui://widget/hotel-search.html")
	assert.Contains(t, uris, "ui://widget/room-availability.html")

	read, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "ui://widget/hotel-search.html",
	})
	require.NoError(t, err)

	require.Len(t, read.Contents, 1)
	assert.Equal(t, widgets.MIMEType, read.Contents[0].MIMEType)
	assert.Contains(t, read.Contents[0].Text, "<!DOCTYPE html>")
}

func TestReadResource_Unknown(t *testing.T) {
	session := connect(t)

	_, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "ui://widget/missing.html",
	})
	assert.Error(t, err)
}
