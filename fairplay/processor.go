// Package fairplay implements the license-acquisition handshake: certificate
// fetch, server-playback-context generation through the platform DRM
// primitive, and the content-key-context exchange.
package fairplay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"

	cn "github.com/amberstream/lib-exposure-go/constant"
	libErr "github.com/amberstream/lib-exposure-go/error"
	"github.com/amberstream/lib-exposure-go/model"
)

// State tracks handshake progress. Completed and Errored are terminal.
type State int32

const (
	StateIdle State = iota
	StateCertificateRequested
	StateCertificateReceived
	StateKeyRequestBuilt
	StateKeyContextRequested
	StateCompleted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCertificateRequested:
		return "certificate_requested"
	case StateCertificateReceived:
		return "certificate_received"
	case StateKeyRequestBuilt:
		return "key_request_built"
	case StateKeyContextRequested:
		return "key_context_requested"
	case StateCompleted:
		return "completed"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// LicenseClient defines the two HTTP exchanges the handshake needs
type LicenseClient interface {
	FetchCertificate(ctx context.Context, certificateURL string) ([]byte, error)
	FetchContentKeyContext(ctx context.Context, licenseURL string, spc []byte, playToken string) ([]byte, error)
}

// errCanceled marks a request torn down by the platform mid-flight. The
// result of the step that was running is discarded without any callback.
var errCanceled = errors.New("key request canceled by platform")

// Processor runs the handshake for one playback attempt. Claimed requests
// execute end-to-end on a single worker goroutine, so steps from two key
// requests never interleave; independent sessions use independent
// processors.
type Processor struct {
	scheme                string
	client                LicenseClient
	certificateURL        string
	licenseAcquisitionURL string
	playToken             string
	logger                *zap.SugaredLogger

	mu    sync.Mutex
	state State

	startWorker sync.Once
	queue       chan claimed

	closeMu sync.Mutex
	closed  bool
}

type claimed struct {
	ctx context.Context
	req KeyRequest
}

// NewProcessor creates a processor for one decoded entitlement. The
// certificate and license URLs are read from the entitlement's Fairplay
// configuration when present; their absence surfaces as a terminal error on
// the step that needs them, not here.
func NewProcessor(ent *model.Entitlement, client LicenseClient, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Processor{
		scheme: cn.FairplayScheme,
		client: client,
		state:  StateIdle,
		logger: logger.Sugar(),
		queue:  make(chan claimed, 4),
	}

	if ent != nil {
		if ent.Fairplay != nil {
			p.certificateURL = ent.Fairplay.CertificateURL
			p.licenseAcquisitionURL = ent.Fairplay.LicenseAcquisitionURL
		}

		if ent.PlayToken != nil {
			p.playToken = *ent.PlayToken
		}
	}

	return p
}

// CanProcess reports whether the processor claims a resource request.
// Only URLs carrying the custom DRM scheme are claimed.
func (p *Processor) CanProcess(u *url.URL) bool {
	return u != nil && u.Scheme == p.scheme
}

// Process claims a key request and schedules the handshake. The claim
// succeeds purely on the scheme predicate; a claimed request may still end
// in Errored. Returns false for requests the processor does not service.
func (p *Processor) Process(ctx context.Context, req KeyRequest) bool {
	if req == nil || !p.CanProcess(req.URL()) {
		return false
	}

	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	if p.closed {
		return false
	}

	p.startWorker.Do(func() {
		go p.run()
	})

	p.queue <- claimed{ctx: ctx, req: req}

	return true
}

// Close stops the worker once queued requests drain. The processor claims
// nothing afterwards.
func (p *Processor) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	p.startWorker.Do(func() {}) // worker may never have started
	close(p.queue)
}

// State returns the current handshake state
func (p *Processor) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *Processor) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// run is the dedicated serial execution context: one claimed request at a
// time, end-to-end.
func (p *Processor) run() {
	for job := range p.queue {
		p.handle(job.ctx, job.req)
	}
}

// handle drives one request through the handshake and reports its single
// terminal outcome. No step is ever retried: a failed license exchange
// cannot be meaningfully retried without new server state.
func (p *Processor) handle(ctx context.Context, req KeyRequest) {
	err := p.exchange(ctx, req)
	if err == nil {
		return
	}

	if errors.Is(err, errCanceled) {
		p.logger.Debugf("Key request canceled, discarding result in state %s", p.State())
		return
	}

	p.setState(StateErrored)
	p.logger.Warnf("License handshake failed: %v", err)

	if !req.Canceled() {
		req.Fail(err)
	}
}

func (p *Processor) exchange(ctx context.Context, req KeyRequest) error {
	certificate, err := p.fetchCertificate(ctx, req)
	if err != nil {
		return err
	}

	spc, err := p.buildKeyRequest(req, certificate)
	if err != nil {
		return err
	}

	ckc, err := p.fetchContentKeyContext(ctx, req, spc)
	if err != nil {
		return err
	}

	return p.complete(req, ckc)
}

// fetchCertificate retrieves the application certificate from the
// entitlement's certificate URL.
func (p *Processor) fetchCertificate(ctx context.Context, req KeyRequest) ([]byte, error) {
	if p.certificateURL == "" {
		return nil, libErr.ErrMissingCertificateURL
	}

	p.setState(StateCertificateRequested)

	certificate, err := p.client.FetchCertificate(ctx, p.certificateURL)
	if err != nil {
		return nil, err
	}

	if req.Canceled() {
		return nil, errCanceled
	}

	p.setState(StateCertificateReceived)

	return certificate, nil
}

// buildKeyRequest derives the content identifier from the requested URL's
// host and asks the platform for the SPC. Platform errors are surfaced
// verbatim; this step is not retried.
func (p *Processor) buildKeyRequest(req KeyRequest, certificate []byte) ([]byte, error) {
	host := req.URL().Host
	if host == "" {
		return nil, libErr.ErrInvalidContentIdentifier
	}

	spc, err := req.BuildServerPlaybackContext(certificate, []byte(host))
	if err != nil {
		return nil, &libErr.DRMError{Err: err}
	}

	p.setState(StateKeyRequestBuilt)

	return spc, nil
}

// fetchContentKeyContext exchanges the SPC for the encrypted key context.
func (p *Processor) fetchContentKeyContext(ctx context.Context, req KeyRequest, spc []byte) ([]byte, error) {
	if p.licenseAcquisitionURL == "" {
		return nil, libErr.ErrMissingLicenseURL
	}

	p.setState(StateKeyContextRequested)

	ckc, err := p.client.FetchContentKeyContext(ctx, p.licenseAcquisitionURL, spc, p.playToken)
	if err != nil {
		return nil, err
	}

	if req.Canceled() {
		return nil, errCanceled
	}

	return ckc, nil
}

// complete hands the key context to the platform and finalizes loading.
func (p *Processor) complete(req KeyRequest, ckc []byte) error {
	if err := req.Respond(ckc); err != nil {
		return fmt.Errorf("%w: %v", libErr.ErrMissingDataRequest, err)
	}

	p.setState(StateCompleted)
	p.logger.Debugf("License handshake completed (%d byte key context)", len(ckc))

	return nil
}
