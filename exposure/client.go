// Package exposure is the public client for the exposure backend: session
// establishment (entitlement play requests), EPG, the analytics event sink,
// and Fairplay processor construction.
package exposure

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	sdk "github.com/amberstream/lib-exposure-go"
	"github.com/amberstream/lib-exposure-go/fairplay"
	"github.com/amberstream/lib-exposure-go/internal/api"
	"github.com/amberstream/lib-exposure-go/internal/cache"
	"github.com/amberstream/lib-exposure-go/internal/config"
	"github.com/amberstream/lib-exposure-go/internal/dispatch"
	"github.com/amberstream/lib-exposure-go/model"
)

// Client is the top-level exposure SDK client
type Client struct {
	config     *config.ClientConfig
	apiClient  *api.Client
	epgCache   *cache.Manager
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
}

// New creates a client for one customer/business unit. A nil logger
// disables logging.
func New(cfg sdk.Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientCfg := config.NewDefaultConfig()
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.Customer = cfg.Customer
	clientCfg.BusinessUnit = cfg.BusinessUnit
	clientCfg.SessionToken = cfg.SessionToken

	if err := clientCfg.Validate(); err != nil {
		logger.Sugar().Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	epgCache, err := cache.New(logger)
	if err != nil {
		logger.Sugar().Errorf("Failed to initialize cache: %s", err.Error())
		return nil, err
	}

	apiClient := api.New(&clientCfg, nil, logger)

	dispatcher := dispatch.New(apiClient, uuid.NewString(), clientCfg.FlushInterval, logger)

	return &Client{
		config:     &clientCfg,
		apiClient:  apiClient,
		epgCache:   epgCache,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// NewFromEnv creates a client from the process environment.
func NewFromEnv(logger *zap.Logger) (*Client, error) {
	return New(sdk.LoadFromEnv(), logger)
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if c != nil && c.apiClient != nil {
		c.apiClient.SetHTTPClient(client)
	}
}

// Entitle requests playback of an asset and returns the decoded
// entitlement. Missing optional fields never fail the call; only transport
// errors, structured server errors or a malformed (non-object) response do.
func (c *Client) Entitle(ctx context.Context, assetID string) (*model.Entitlement, error) {
	ent, err := c.apiClient.Play(ctx, assetID)
	if err != nil {
		return nil, err
	}

	c.logEntitlementStatus(ent, assetID)

	return ent, nil
}

// logEntitlementStatus surfaces licensing outcomes that need operator
// attention.
func (c *Client) logEntitlementStatus(ent *model.Entitlement, assetID string) {
	l := c.logger.Sugar()

	if reason := ent.LicenseExpirationReason; reason != nil && *reason != model.ExpirationReasonSuccess {
		if reason.Known() {
			l.Warnf("Asset %s licensed with expiration reason %s", assetID, *reason)
		} else {
			l.Warnf("Asset %s licensed with unrecognized expiration reason %q", assetID, string(*reason))
		}
	}

	if ent.MediaLocator == nil {
		l.Warnf("Entitlement for asset %s carries no media locator", assetID)
	}
}

// EPG returns one page of program listings, served from cache when a fresh
// copy exists.
func (c *Client) EPG(ctx context.Context, channelID string, from, to time.Time) (*model.ChannelEPG, error) {
	key := cache.Key(channelID, from, to)

	if page, found := c.epgCache.Get(key); found {
		return page, nil
	}

	page, err := c.apiClient.EPG(ctx, channelID, from, to)
	if err != nil {
		return nil, err
	}

	c.epgCache.Store(key, page)

	return page, nil
}

// Track buffers an analytics payload for the next dispatch. Payloads are
// opaque JSON documents.
func (c *Client) Track(payload json.RawMessage) {
	c.dispatcher.Enqueue(payload)
}

// StartAnalytics begins background analytics dispatch
func (c *Client) StartAnalytics(ctx context.Context) {
	c.dispatcher.Start(ctx)
}

// ShutdownAnalytics stops background dispatch and flushes buffered events
func (c *Client) ShutdownAnalytics(ctx context.Context) {
	c.dispatcher.Shutdown(ctx)
}

// FairplayProcessor creates a license handshake processor for a decoded
// entitlement. One processor serves one playback attempt.
func (c *Client) FairplayProcessor(ent *model.Entitlement) *fairplay.Processor {
	return fairplay.NewProcessor(ent, c.apiClient, c.logger)
}
