package model

import "github.com/tidwall/gjson"

// FairplayConfiguration holds the Fairplay license endpoints issued with an
// entitlement. CertificateURL and LicenseAcquisitionURL are mandatory; a
// fairplayConfig object missing either decodes to an absent configuration.
type FairplayConfiguration struct {
	SecondaryMediaLocator *string
	CertificateURL        string
	LicenseAcquisitionURL string
}

// fairplayConfigurationFrom decodes a fairplayConfig sub-object. Returns nil
// when the value is not an object or its mandatory keys are missing; the
// parent entitlement decodes unaffected either way.
func fairplayConfigurationFrom(res gjson.Result) *FairplayConfiguration {
	if !res.IsObject() {
		return nil
	}

	certURL := optString(res.Get("certificateUrl"))
	licenseURL := optString(res.Get("licenseAcquisitionUrl"))

	if certURL == nil || licenseURL == nil {
		return nil
	}

	return &FairplayConfiguration{
		SecondaryMediaLocator: optString(res.Get("secondaryMediaLocator")),
		CertificateURL:        *certURL,
		LicenseAcquisitionURL: *licenseURL,
	}
}

// EDRMConfiguration holds the EDRM license parameters issued with an
// entitlement. OwnerID, UserToken and RequestURL are mandatory.
type EDRMConfiguration struct {
	OwnerID     string
	UserToken   string
	RequestURL  string
	AdParameter *string
}

// edrmConfigurationFrom decodes an edrmConfig sub-object under the same
// partial-validity rule as fairplayConfigurationFrom.
func edrmConfigurationFrom(res gjson.Result) *EDRMConfiguration {
	if !res.IsObject() {
		return nil
	}

	ownerID := optString(res.Get("ownerId"))
	userToken := optString(res.Get("userToken"))
	requestURL := optString(res.Get("requestUrl"))

	if ownerID == nil || userToken == nil || requestURL == nil {
		return nil
	}

	return &EDRMConfiguration{
		OwnerID:     *ownerID,
		UserToken:   *userToken,
		RequestURL:  *requestURL,
		AdParameter: optString(res.Get("adParameter")),
	}
}
