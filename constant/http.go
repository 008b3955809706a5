package constant

// HeaderConstants defines HTTP header names used in requests
const (
	// PlayTokenHeader defines the header name carrying the session play token
	// on license-acquisition requests
	PlayTokenHeader = "X-Play-Token"
	// ContentTypeOctetStream is the content type for SPC uploads
	ContentTypeOctetStream = "application/octet-stream"
	// ContentTypeJSON is the content type for exposure API requests
	ContentTypeJSON = "application/json"
)

// TimeConstants defines timeout and interval values
const (
	// DefaultHTTPTimeoutSeconds is the default HTTP client timeout in seconds
	DefaultHTTPTimeoutSeconds = 10
	// DefaultFlushIntervalSeconds is the default analytics flush interval in seconds
	DefaultFlushIntervalSeconds = 60
)
