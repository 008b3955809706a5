package constant

// Environment variable names
const (
	// EnvExposureBaseURL is the exposure API base URL environment variable
	EnvExposureBaseURL = "EXPOSURE_BASE_URL"

	// EnvCustomer is the customer unit environment variable
	EnvCustomer = "EXPOSURE_CUSTOMER"

	// EnvBusinessUnit is the business unit environment variable
	EnvBusinessUnit = "EXPOSURE_BUSINESS_UNIT"

	// EnvSessionToken is the session token environment variable
	EnvSessionToken = "EXPOSURE_SESSION_TOKEN"
)
