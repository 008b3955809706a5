package constant

// DRM-related constants
const (
	// FairplayScheme is the custom URL scheme carried by Fairplay key requests.
	// A resource-loading request is only claimed when its URL matches this scheme.
	FairplayScheme = "skd"
)

// ExpiryReason codes reported by the exposure backend on the entitlement
const (
	ReasonSuccess                       = "SUCCESS"
	ReasonNotEntitled                   = "NOT_ENTITLED"
	ReasonGeoBlocked                    = "GEO_BLOCKED"
	ReasonDownloadBlocked               = "DOWNLOAD_BLOCKED"
	ReasonDeviceBlocked                 = "DEVICE_BLOCKED"
	ReasonLicenseExpired                = "LICENSE_EXPIRED"
	ReasonConcurrentStreamsLimitReached = "CONCURRENT_STREAMS_LIMIT_REACHED"
)
