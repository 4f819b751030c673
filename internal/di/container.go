// Package di wires the date-context engine from the configuration.
package di

import (
	"github.com/datejp/dateinfo/api"
	"github.com/datejp/dateinfo/cache"
	"github.com/datejp/dateinfo/configs"
	"github.com/datejp/dateinfo/frontend"
	"github.com/datejp/dateinfo/resolver"
)

type Container struct {
	config *configs.Config

	holidayCache *cache.HolidayCache
	apiClient    api.Client
	resolver     *resolver.HolidayResolver
}

func New(config *configs.Config) *Container {
	return &Container{config: config}
}

// GetHolidayCache gets the TTL cache backed by the configured file store.
func (c *Container) GetHolidayCache() *cache.HolidayCache {
	if c.holidayCache != nil {
		return c.holidayCache
	}
	c.holidayCache = cache.New(&cache.FileStore{Path: c.config.CachePath}, c.config.CacheTTL)
	return c.holidayCache
}

// GetAPIClient gets the holiday authority client.
func (c *Container) GetAPIClient() api.Client {
	if c.apiClient != nil {
		return c.apiClient
	}
	c.apiClient = api.NewDefaultClient(c.config.HolidayAPIURL, c.config.APITimeout)
	return c.apiClient
}

// GetResolver gets the holiday resolver combining the cache and the client.
func (c *Container) GetResolver() *resolver.HolidayResolver {
	if c.resolver != nil {
		return c.resolver
	}
	c.resolver = resolver.New(c.GetAPIClient(), c.GetHolidayCache())
	return c.resolver
}

// GetDateService builds a date service delivering holiday outcomes to the
// listener. Services are not memoized: each consumer owns its coordinator.
func (c *Container) GetDateService(listener frontend.Listener) *frontend.DateService {
	return frontend.NewDateService(c.GetResolver(), c.config.Timezone, listener)
}
