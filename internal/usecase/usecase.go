// Package usecase wires the portal use cases from configuration.
package usecase

import (
	"github.com/studentportal/portal/config"
	"github.com/studentportal/portal/internal/cache"
	"github.com/studentportal/portal/internal/upstream"
	"github.com/studentportal/portal/internal/usecase/portal"
	"github.com/studentportal/portal/pkg/logger"
)

// Usecases -.
type Usecases struct {
	Portal portal.Feature
}

// NewUseCases -.
func NewUseCases(cfg *config.Config, log logger.Interface) *Usecases {
	client := NewUpstreamClient(cfg, log)
	store := cache.NewFromConfig(cfg)

	return &Usecases{
		Portal: portal.New(client, store, log, cfg.Portal.CurrentYear),
	}
}

// NewUpstreamClient builds the upstream client with the small-payload
// policy as default and the listing policy for notes and groups.
func NewUpstreamClient(cfg *config.Config, log logger.Interface) *upstream.Client {
	small := upstream.Policy{
		Timeout:    cfg.Upstream.Timeout,
		MaxRetries: cfg.Upstream.MaxRetries,
		WaitMin:    cfg.Upstream.RetryWaitMin,
		WaitMax:    cfg.Upstream.RetryWaitMax,
	}

	listing := small
	listing.Timeout = cfg.Upstream.ListingTimeout

	return upstream.New(cfg.Upstream.BaseURL, small, log,
		upstream.WithEndpointPolicy(upstream.EndpointNotes, listing),
		upstream.WithEndpointPolicy(upstream.EndpointGroups, listing),
	)
}
