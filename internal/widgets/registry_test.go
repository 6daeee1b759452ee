package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_LoadsTemplates(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	require.Len(t, r.All(), 2)
	for _, w := range r.All() {
		assert.NotEmpty(t, w.HTML(), "template %s must embed markup", w.TemplateURI)
		assert.True(t, strings.HasPrefix(w.TemplateURI, "ui://widget/"))
	}
}

func TestRegistry_Lookups(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	search, ok := r.ByTool("search_hotels")
	require.True(t, ok)
	assert.Equal(t, "ui://widget/hotel-search.html", search.TemplateURI)

	avail, ok := r.ByURI("ui://widget/room-availability.html")
	require.True(t, ok)
	assert.Equal(t, "check_room_availability", avail.ToolID)

	byName, ok := r.ByFileName("hotel-search.html")
	require.True(t, ok)
	assert.Same(t, search, byName)

	_, ok = r.ByTool("book_room")
	assert.False(t, ok)
	_, ok = r.ByFileName("nope.html")
	assert.False(t, ok)
}

func TestWidget_Meta(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	w, ok := r.ByTool("search_hotels")
	require.True(t, ok)

	toolMeta := w.ToolMeta()
	assert.Equal(t, w.TemplateURI, toolMeta["openai/outputTemplate"])
	assert.Equal(t, "Searching hotels...", toolMeta["openai/toolInvocation/invoking"])
	assert.Equal(t, "Hotels found", toolMeta["openai/toolInvocation/invoked"])
	assert.Equal(t, true, toolMeta["openai/widgetAccessible"])
	assert.Equal(t, true, toolMeta["openai/resultCanProduceWidget"])

	resMeta := w.ResourceMeta()
	assert.Equal(t, "https://hotelzify.com", resMeta["openai/widgetDomain"])
	assert.Equal(t, true, resMeta["openai/widgetPrefersBorder"])
	assert.NotEmpty(t, resMeta["openai/widgetDescription"])

	assert.Equal(t, map[string]any{"openai/outputTemplate": w.TemplateURI}, w.ResultMeta())
}
