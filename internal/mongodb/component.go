package mongodb

import (
	"context"
	"fmt"

	"github.com/deepblocks/auth-service/internal/component"
	"github.com/deepblocks/auth-service/internal/logger"
)

const componentName = "mongodb"

// Ensure *Component satisfies component.Component at compile time.
var _ component.Component = (*Component)(nil)

// Component wraps Client to implement component.Component for lifecycle
// management: connect on Start, disconnect on Stop.
type Component struct {
	client *Client
}

// NewComponent creates a MongoDB component for use with the component
// registry. The wrapped client is available immediately via Client so
// repositories can be wired before startup.
func NewComponent(cfg Config, log *logger.Logger) *Component {
	return &Component{client: NewClient(cfg, log)}
}

// Client returns the underlying *Client. It is unconnected until Start.
func (c *Component) Client() *Client {
	return c.client
}

// Name returns the component name.
func (c *Component) Name() string { return componentName }

// Start connects to MongoDB. An unreachable store fails startup.
func (c *Component) Start(ctx context.Context) error {
	if err := c.client.Connect(ctx); err != nil {
		return fmt.Errorf("mongodb start: %w", err)
	}
	return nil
}

// Stop disconnects from MongoDB.
func (c *Component) Stop(ctx context.Context) error {
	return c.client.Close(ctx)
}

// Health reports whether the deployment answers a ping.
func (c *Component) Health(ctx context.Context) component.Health {
	if err := c.client.Ping(ctx); err != nil {
		return component.Health{
			Name:    componentName,
			Status:  component.StatusUnhealthy,
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}
	return component.Health{Name: componentName, Status: component.StatusHealthy}
}
