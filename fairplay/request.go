package fairplay

import "net/url"

// KeyRequest is the capability interface over the platform DRM primitive
// that asked for a content key. The processor drives it through the
// handshake and reports exactly one terminal outcome via Respond or Fail.
//
// Implementations bridge to the real DRM subsystem; tests substitute a mock.
type KeyRequest interface {
	// URL returns the resource URL that triggered the key request. The
	// scheme decides whether the processor claims the request and the host
	// component supplies the content identifier.
	URL() *url.URL

	// BuildServerPlaybackContext asks the platform DRM engine to produce an
	// opaque SPC blob from the application certificate and content
	// identifier. Errors are platform-defined and passed through opaquely.
	BuildServerPlaybackContext(certificate, contentIdentifier []byte) ([]byte, error)

	// Respond hands the content key context back to the platform and
	// finalizes loading. Returns an error when the platform no longer has a
	// pending data request.
	Respond(ckc []byte) error

	// Fail finishes loading with a terminal error. Called at most once, and
	// never after Respond.
	Fail(err error)

	// Canceled reports whether the platform tore the request down. A
	// canceled request receives no further callbacks; in-flight HTTP work
	// still completes and its result is discarded.
	Canceled() bool
}
