// Package gateway is the HTTP front of the concierge: the MCP endpoint,
// the booking API and the widget template assets, behind one gin router.
package gateway

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/config"
	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/widgets"
)

const requestIDHeader = "X-Request-ID"

// Gateway owns the router and the handlers mounted on it.
type Gateway struct {
	router  *gin.Engine
	client  *hotelzify.Client
	widgets *widgets.Registry
	log     *zap.Logger
}

// New assembles the router. mcpHandler is the streamable-HTTP MCP
// endpoint, mounted at /mcp.
func New(cfg config.ServerConfig, client *hotelzify.Client, widgetReg *widgets.Registry, mcpHandler http.Handler, log *zap.Logger) *Gateway {
	gin.SetMode(gin.ReleaseMode)

	g := &Gateway{
		client:  client,
		widgets: widgetReg,
		log:     log.Named("gateway"),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(g.requestID())
	router.Use(g.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Mcp-Session-Id"},
		ExposeHeaders: []string{"Mcp-Session-Id"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", g.health)
	router.POST("/api/book", g.createBooking)
	router.GET("/widgets/:name", g.serveWidget)
	router.Any("/mcp", gin.WrapH(mcpHandler))

	g.router = router
	return g
}

// Handler returns the assembled router for the HTTP server.
func (g *Gateway) Handler() http.Handler {
	return g.router
}

func (g *Gateway) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serveWidget serves widget templates by file name for plain-HTTP
// consumers; MCP hosts read the same markup via ui:// resources.
func (g *Gateway) serveWidget(c *gin.Context) {
	w, ok := g.widgets.ByFileName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown widget"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(w.HTML()))
}

func (g *Gateway) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (g *Gateway) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		g.log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
