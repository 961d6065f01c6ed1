package clients

import (
	"context"
	"time"

	"loandraft/internal/verification"
)

// PhoneClient calls the phone-line verification service for both mobile and
// landline (work phone) numbers.
type PhoneClient struct {
	baseURL string
	http    doer
}

// NewPhoneClient builds a phone verification client. The timeout is a
// transport-level ceiling; the orchestrator applies its own per-call context
// deadline on top.
func NewPhoneClient(baseURL string, timeout time.Duration) *PhoneClient {
	return &PhoneClient{baseURL: baseURL, http: newHTTPClient(timeout)}
}

// phoneResponse is the service's wire shape.
type phoneResponse struct {
	Success bool `json:"success"`
	Line    struct {
		Type         string `json:"type"`
		Status       string `json:"status"`
		StatusReason string `json:"status_reason"`
	} `json:"line"`
	Country struct {
		Code        string `json:"code"`
		CallingCode string `json:"calling_code"`
	} `json:"country"`
	National struct {
		Raw       string `json:"raw"`
		Formatted string `json:"formatted"`
	} `json:"national"`
	International struct {
		Raw       string `json:"raw"`
		Formatted string `json:"formatted"`
	} `json:"international"`
	NotVerified struct {
		Code   string `json:"code"`
		Reason string `json:"reason"`
	} `json:"not_verified"`
}

// VerifyMobile verifies a mobile number. (nil, nil) means the service had no
// result for the number.
func (c *PhoneClient) VerifyMobile(ctx context.Context, number string) (*verification.PhoneResult, error) {
	return c.verify(ctx, "mobile", number)
}

// VerifyLandline verifies a landline (work phone) number.
func (c *PhoneClient) VerifyLandline(ctx context.Context, number string) (*verification.PhoneResult, error) {
	return c.verify(ctx, "landline", number)
}

func (c *PhoneClient) verify(ctx context.Context, line, number string) (*verification.PhoneResult, error) {
	var resp phoneResponse
	found, _, err := getJSON(ctx, c.http, joinURL(c.baseURL, "verify", line, number), &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &verification.PhoneResult{
		Success:                resp.Success,
		LineType:               resp.Line.Type,
		LineStatus:             resp.Line.Status,
		LineStatusReason:       resp.Line.StatusReason,
		CountryCode:            resp.Country.Code,
		CallingCode:            resp.Country.CallingCode,
		RawNational:            resp.National.Raw,
		FormattedNational:      resp.National.Formatted,
		RawInternational:       resp.International.Raw,
		FormattedInternational: resp.International.Formatted,
		NotVerifiedCode:        resp.NotVerified.Code,
		NotVerifiedReason:      resp.NotVerified.Reason,
	}, nil
}
