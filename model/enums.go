package model

import (
	cn "github.com/amberstream/lib-exposure-go/constant"
)

// EntitlementType describes the commercial model an entitlement was issued
// under. Values the backend adds after this SDK shipped survive decoding:
// an unrecognized string is preserved as-is rather than rejected, so two
// unknown values compare equal iff their raw strings are equal.
type EntitlementType string

const (
	EntitlementTypeTVOD EntitlementType = "TVOD"
	EntitlementTypeSVOD EntitlementType = "SVOD"
	EntitlementTypeFVOD EntitlementType = "FVOD"
)

// EntitlementTypeFromString maps a nullable string onto an EntitlementType.
// A nil input yields nil, never a default variant. This is a total function:
// it cannot fail.
func EntitlementTypeFromString(s *string) *EntitlementType {
	if s == nil {
		return nil
	}

	t := EntitlementType(*s)

	return &t
}

// Known reports whether the value is one of the fixed variants.
func (t EntitlementType) Known() bool {
	switch t {
	case EntitlementTypeTVOD, EntitlementTypeSVOD, EntitlementTypeFVOD:
		return true
	default:
		return false
	}
}

// ExpirationReason is the backend's reason code for the license expiration
// outcome. Follows the same raw-preserving discipline as EntitlementType.
type ExpirationReason string

const (
	ExpirationReasonSuccess                       = ExpirationReason(cn.ReasonSuccess)
	ExpirationReasonNotEntitled                   = ExpirationReason(cn.ReasonNotEntitled)
	ExpirationReasonGeoBlocked                    = ExpirationReason(cn.ReasonGeoBlocked)
	ExpirationReasonDownloadBlocked               = ExpirationReason(cn.ReasonDownloadBlocked)
	ExpirationReasonDeviceBlocked                 = ExpirationReason(cn.ReasonDeviceBlocked)
	ExpirationReasonLicenseExpired                = ExpirationReason(cn.ReasonLicenseExpired)
	ExpirationReasonConcurrentStreamsLimitReached = ExpirationReason(cn.ReasonConcurrentStreamsLimitReached)
)

// ExpirationReasonFromString maps a nullable string onto an ExpirationReason.
// A nil input yields nil, never a default variant.
func ExpirationReasonFromString(s *string) *ExpirationReason {
	if s == nil {
		return nil
	}

	r := ExpirationReason(*s)

	return &r
}

// Known reports whether the value is one of the documented reason codes.
func (r ExpirationReason) Known() bool {
	switch r {
	case ExpirationReasonSuccess,
		ExpirationReasonNotEntitled,
		ExpirationReasonGeoBlocked,
		ExpirationReasonDownloadBlocked,
		ExpirationReasonDeviceBlocked,
		ExpirationReasonLicenseExpired,
		ExpirationReasonConcurrentStreamsLimitReached:
		return true
	default:
		return false
	}
}
