// Package container wires core concierge services using go.uber.org/dig.
package container

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/config"
	"github.com/hotelzify/concierge/internal/gateway"
	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/logging"
	"github.com/hotelzify/concierge/internal/mcpserver"
	"github.com/hotelzify/concierge/internal/tools"
	"github.com/hotelzify/concierge/internal/widgets"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	log       *zap.Logger
	client    *hotelzify.Client
	toolReg   *tools.Registry
	widgetReg *widgets.Registry
	mcpSrv    *mcpserver.Server
	gw        *gateway.Gateway
}

func (c *Container) Logger() *zap.Logger          { return c.log }
func (c *Container) Client() *hotelzify.Client    { return c.client }
func (c *Container) Tools() *tools.Registry       { return c.toolReg }
func (c *Container) Widgets() *widgets.Registry   { return c.widgetReg }
func (c *Container) MCPServer() *mcpserver.Server { return c.mcpSrv }
func (c *Container) Gateway() *gateway.Gateway    { return c.gw }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newLogger); err != nil {
		return nil, err
	}
	if err := d.Provide(newUpstreamClient); err != nil {
		return nil, err
	}
	if err := d.Provide(widgets.NewRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newToolRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newMCPServer); err != nil {
		return nil, err
	}
	if err := d.Provide(newGateway); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		log *zap.Logger,
		client *hotelzify.Client,
		toolReg *tools.Registry,
		widgetReg *widgets.Registry,
		mcpSrv *mcpserver.Server,
		gw *gateway.Gateway,
	) {
		result = &Container{
			log:       log,
			client:    client,
			toolReg:   toolReg,
			widgetReg: widgetReg,
			mcpSrv:    mcpSrv,
			gw:        gw,
		}
	})
	return result, err
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging)
}

func newUpstreamClient(cfg *config.Config, log *zap.Logger) *hotelzify.Client {
	return hotelzify.NewClient(hotelzify.Options{
		HotelAPIBase:  cfg.Upstream.HotelAPIBase,
		SearchAPIBase: cfg.Upstream.SearchAPIBase,
		ChainID:       cfg.Upstream.ChainID,
		ChainName:     cfg.Upstream.ChainName,
		APIToken:      cfg.Upstream.APIToken,
		Timeout:       cfg.Upstream.Timeout(),
	}, log)
}

func newToolRegistry(client *hotelzify.Client, log *zap.Logger) (*tools.Registry, error) {
	faqTool, err := tools.NewQueryHotelInfoTool(log)
	if err != nil {
		return nil, err
	}

	return tools.NewRegistryBuilder().
		WithTool(tools.NewSearchHotelsTool(client, log)).
		WithTool(tools.NewCheckAvailabilityTool(client, log)).
		WithTool(faqTool).
		Build(), nil
}

func newMCPServer(toolReg *tools.Registry, widgetReg *widgets.Registry, log *zap.Logger) *mcpserver.Server {
	return mcpserver.New(toolReg, widgetReg, log)
}

func newGateway(cfg *config.Config, client *hotelzify.Client, widgetReg *widgets.Registry, mcpSrv *mcpserver.Server, log *zap.Logger) *gateway.Gateway {
	return gateway.New(cfg.Server, client, widgetReg, mcpSrv.HTTPHandler(), log)
}
