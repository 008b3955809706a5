package model

import (
	"fmt"

	"github.com/tidwall/gjson"

	libErr "github.com/amberstream/lib-exposure-go/error"
)

// Entitlement is the server-issued permission record describing what a user
// may play and under which DRM and playback constraints. Every field is
// optional: the backend omits fields depending on the licensing outcome, and
// absence decodes to nil rather than an error.
type Entitlement struct {
	PlayToken               *string
	MediaLocator            *string
	LicenseExpiration       *string
	LicenseExpirationReason *ExpirationReason
	LicenseActivation       *string
	PlayTokenExpiration     *string
	EntitlementType         *EntitlementType
	Live                    *bool
	PlaySessionID           *string
	FFEnabled               *bool
	TimeshiftEnabled        *bool
	RWEnabled               *bool
	MinBitrate              *int64
	MaxBitrate              *int64
	MaxResHeight            *int64
	AirplayBlocked          *bool
	MDNRequestRouterURL     *string
	EDRM                    *EDRMConfiguration
	Fairplay                *FairplayConfiguration
}

// DecodeEntitlement decodes an entitlement from a raw JSON document.
//
// Decoding is total over JSON objects: any well-formed object, including the
// empty object and objects with unexpectedly typed members, decodes without
// error; a missing or mismatched field simply stays nil. Only a top-level
// value that is not an object fails.
func DecodeEntitlement(data []byte) (*Entitlement, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("entitlement: invalid JSON: %w", libErr.ErrParseFailure)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("entitlement: top-level value is not an object: %w", libErr.ErrParseFailure)
	}

	return &Entitlement{
		PlayToken:               optString(root.Get("playToken")),
		MediaLocator:            optString(root.Get("mediaLocator")),
		LicenseExpiration:       optString(root.Get("licenseExpiration")),
		LicenseExpirationReason: ExpirationReasonFromString(optString(root.Get("licenseExpirationReason"))),
		LicenseActivation:       optString(root.Get("licenseActivation")),
		PlayTokenExpiration:     optString(root.Get("playTokenExpiration")),
		EntitlementType:         EntitlementTypeFromString(optString(root.Get("entitlementType"))),
		Live:                    optBool(root.Get("live")),
		PlaySessionID:           optString(root.Get("playSessionId")),
		FFEnabled:               optBool(root.Get("ffEnabled")),
		TimeshiftEnabled:        optBool(root.Get("timeshiftEnabled")),
		RWEnabled:               optBool(root.Get("rwEnabled")),
		MinBitrate:              optInt(root.Get("minBitrate")),
		MaxBitrate:              optInt(root.Get("maxBitrate")),
		MaxResHeight:            optInt(root.Get("maxResHeight")),
		AirplayBlocked:          optBool(root.Get("airplayBlocked")),
		MDNRequestRouterURL:     optString(root.Get("mdnRequestRouterUrl")),
		EDRM:                    edrmConfigurationFrom(root.Get("edrmConfig")),
		Fairplay:                fairplayConfigurationFrom(root.Get("fairplayConfig")),
	}, nil
}

// optString returns the value only when the member exists and is a string.
func optString(res gjson.Result) *string {
	if res.Type != gjson.String {
		return nil
	}

	s := res.String()

	return &s
}

// optBool returns the value only when the member exists and is a boolean.
func optBool(res gjson.Result) *bool {
	if res.Type != gjson.True && res.Type != gjson.False {
		return nil
	}

	b := res.Bool()

	return &b
}

// optInt returns the value only when the member exists and is a number.
func optInt(res gjson.Result) *int64 {
	if res.Type != gjson.Number {
		return nil
	}

	n := res.Int()

	return &n
}
