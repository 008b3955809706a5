package exposure_test

import (
	"net/url"
)

// fakeKeyRequest is a minimal platform DRM stand-in: it echoes the
// certificate into the SPC and reports outcomes over channels.
type fakeKeyRequest struct {
	u         *url.URL
	responded chan []byte
	failed    chan error
}

func newFakeKeyRequest(raw string) *fakeKeyRequest {
	u, _ := url.Parse(raw)

	return &fakeKeyRequest{
		u:         u,
		responded: make(chan []byte, 1),
		failed:    make(chan error, 1),
	}
}

func (f *fakeKeyRequest) URL() *url.URL { return f.u }

func (f *fakeKeyRequest) BuildServerPlaybackContext(certificate, contentIdentifier []byte) ([]byte, error) {
	spc := append([]byte("spc:"), certificate...)
	spc = append(spc, ':')
	spc = append(spc, contentIdentifier...)

	return spc, nil
}

func (f *fakeKeyRequest) Respond(ckc []byte) error {
	f.responded <- ckc
	return nil
}

func (f *fakeKeyRequest) Fail(err error) {
	f.failed <- err
}

func (f *fakeKeyRequest) Canceled() bool { return false }
