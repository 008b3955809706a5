package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	cn "github.com/amberstream/lib-exposure-go/constant"
	libErr "github.com/amberstream/lib-exposure-go/error"
	"github.com/amberstream/lib-exposure-go/internal/config"
	"github.com/amberstream/lib-exposure-go/internal/envelope"
	"github.com/amberstream/lib-exposure-go/model"
)

// Client handles communication with the exposure API and the Fairplay
// license endpoints.
type Client struct {
	httpClient *http.Client
	config     *config.ClientConfig
	logger     *zap.SugaredLogger
}

// New creates a new API client
func New(cfg *config.ClientConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	if httpClient == nil {
		transport := http.DefaultTransport
		if cfg.EnableTracing {
			transport = otelhttp.NewTransport(transport)
		}

		httpClient = &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: transport,
		}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger.Sugar(),
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// Play requests an entitlement for the given asset and decodes the response.
func (c *Client) Play(ctx context.Context, assetID string) (*model.Entitlement, error) {
	endpoint := fmt.Sprintf("%s/entitlement/%s/play", c.config.APIBaseURL(), url.PathEscape(assetID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", cn.ContentTypeJSON)

	if c.config.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.SessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Entitlement request failed - asset: %s, error: %s", assetID, err.Error())
		return nil, &libErr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &libErr.NetworkError{Err: err}
	}

	ent, err := model.DecodeEntitlement(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode entitlement: %w", err)
	}

	return ent, nil
}

// EPG fetches one page of program listings for a channel.
func (c *Client) EPG(ctx context.Context, channelID string, from, to time.Time) (*model.ChannelEPG, error) {
	endpoint := fmt.Sprintf("%s/epg/%s?from=%s&to=%s",
		c.config.APIBaseURL(),
		url.PathEscape(channelID),
		strconv.FormatInt(from.UnixMilli(), 10),
		strconv.FormatInt(to.UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", cn.ContentTypeJSON)

	if c.config.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.SessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("EPG request failed - channel: %s, error: %s", channelID, err.Error())
		return nil, &libErr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var page model.ChannelEPG
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode EPG response: %w", err)
	}

	return &page, nil
}

// SendEvents posts an analytics batch to the event sink.
func (c *Client) SendEvents(ctx context.Context, batch *model.EventBatch) error {
	endpoint := c.config.APIBaseURL() + "/eventsink/send"

	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal event batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", cn.ContentTypeJSON)

	if c.config.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.SessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &libErr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	return nil
}

// FetchCertificate retrieves the Fairplay application certificate. The body
// is parsed as the shared XML envelope whatever the status code; servers
// report failures through the error envelope rather than bare statuses.
func (c *Client) FetchCertificate(ctx context.Context, certificateURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, certificateURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Certificate request failed - error: %s", err.Error())
		return nil, &libErr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &libErr.NetworkError{Err: err}
	}

	return envelope.Parse(body)
}

// FetchContentKeyContext exchanges a server playback context for a content
// key context. The SPC travels base64-encoded with the session play token
// in the request headers.
func (c *Client) FetchContentKeyContext(ctx context.Context, licenseURL string, spc []byte, playToken string) ([]byte, error) {
	encoded := base64.StdEncoding.EncodeToString(spc)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, licenseURL, bytes.NewBufferString(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-type", cn.ContentTypeOctetStream)

	if playToken != "" {
		req.Header.Set(cn.PlayTokenHeader, playToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("License acquisition request failed - error: %s", err.Error())
		return nil, &libErr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &libErr.NetworkError{Err: err}
	}

	return envelope.Parse(body)
}

// handleErrorResponse processes error responses from the exposure API
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errorResp model.ErrorResponse

	bodyBytes, _ := io.ReadAll(resp.Body)

	_ = json.Unmarshal(bodyBytes, &errorResp)

	if errorResp.Message != "" {
		c.logger.Debugf("Exposure API error - status: %d, message: %s", resp.StatusCode, errorResp.Message)
		return &libErr.ServerError{Code: resp.StatusCode, Message: errorResp.Message}
	}

	c.logger.Debugf("Unexpected exposure API error - status: %d", resp.StatusCode)

	return &libErr.ApiError{StatusCode: resp.StatusCode, Msg: fmt.Sprintf("unexpected status: %d", resp.StatusCode)}
}
