// Package envelope parses the XML response envelope shared by the Fairplay
// certificate and license-acquisition endpoints. Parsing is a pure function
// over the body, independent of the HTTP layer.
package envelope

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"

	libErr "github.com/amberstream/lib-exposure-go/error"
)

// Success shape:
//
//	<fps><checksum>..</checksum><version>..</version><hostname>..</hostname><cert|ckc>BASE64</cert|ckc></fps>
//
// Failure shape:
//
//	<error><checksum>..</checksum><version>..</version><hostname>..</hostname><code>INT</code><message>STRING</message></error>
type fpsEnvelope struct {
	XMLName  xml.Name `xml:"fps"`
	Checksum string   `xml:"checksum"`
	Version  string   `xml:"version"`
	Hostname string   `xml:"hostname"`
	Cert     string   `xml:"cert"`
	CKC      string   `xml:"ckc"`
}

type errorEnvelope struct {
	XMLName  xml.Name `xml:"error"`
	Checksum string   `xml:"checksum"`
	Version  string   `xml:"version"`
	Hostname string   `xml:"hostname"`
	Code     *int     `xml:"code"`
	Message  string   `xml:"message"`
}

// Parse decodes an envelope body into its binary payload.
//
// A success envelope yields the base64-decoded cert or ckc payload. An error
// envelope yields a *ServerError carrying the reported code and message. A
// body matching neither shape yields ErrParseFailure.
func Parse(data []byte) ([]byte, error) {
	var fps fpsEnvelope
	if err := xml.Unmarshal(data, &fps); err == nil {
		encoded := fps.Cert
		if encoded == "" {
			encoded = fps.CKC
		}

		if encoded == "" {
			return nil, fmt.Errorf("envelope has neither cert nor ckc payload: %w", libErr.ErrParseFailure)
		}

		payload, err := decodeBase64Permissive(encoded)
		if err != nil {
			return nil, fmt.Errorf("envelope payload is not base64: %w", libErr.ErrParseFailure)
		}

		return payload, nil
	}

	var srvErr errorEnvelope
	if err := xml.Unmarshal(data, &srvErr); err == nil && srvErr.Code != nil {
		return nil, &libErr.ServerError{Code: *srvErr.Code, Message: srvErr.Message}
	}

	return nil, fmt.Errorf("body matches no known envelope shape: %w", libErr.ErrParseFailure)
}

// decodeBase64Permissive decodes a base64 stream, ignoring any characters
// outside the base64 alphabet. Some license servers wrap or pad the payload
// with whitespace and stray markup.
func decodeBase64Permissive(encoded string) ([]byte, error) {
	var b strings.Builder

	b.Grow(len(encoded))

	for _, r := range encoded {
		switch {
		case r >= 'A' && r <= 'Z',
			r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '+', r == '/':
			b.WriteRune(r)
		}
	}

	return base64.RawStdEncoding.DecodeString(b.String())
}
