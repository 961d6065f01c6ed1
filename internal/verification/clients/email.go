package clients

import (
	"context"
	"time"

	"loandraft/internal/verification"
)

// EmailClient calls the email-address verification service.
type EmailClient struct {
	baseURL string
	http    doer
}

func NewEmailClient(baseURL string, timeout time.Duration) *EmailClient {
	return &EmailClient{baseURL: baseURL, http: newHTTPClient(timeout)}
}

type emailResponse struct {
	Success      bool   `json:"success"`
	EmailAddress string `json:"email_address"`
	Account      string `json:"account"`
	Domain       string `json:"domain"`
	Provider     string `json:"provider_domain"`
	Disposable   bool   `json:"is_disposable"`
	Role         bool   `json:"is_role"`
	Public       bool   `json:"is_public"`
	CatchAll     bool   `json:"is_catch_all"`
	NotVerified  struct {
		Code   string `json:"code"`
		Reason string `json:"reason"`
	} `json:"not_verified"`
}

// Verify verifies an email address. (nil, nil) means the service had no
// result for the address.
func (c *EmailClient) Verify(ctx context.Context, address string) (*verification.EmailResult, error) {
	var resp emailResponse
	found, _, err := getJSON(ctx, c.http, joinURL(c.baseURL, "verify", address), &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &verification.EmailResult{
		Success:           resp.Success,
		EmailAddress:      resp.EmailAddress,
		Account:           resp.Account,
		Domain:            resp.Domain,
		ProviderDomain:    resp.Provider,
		IsDisposable:      resp.Disposable,
		IsRole:            resp.Role,
		IsPublic:          resp.Public,
		IsCatchAll:        resp.CatchAll,
		NotVerifiedCode:   resp.NotVerified.Code,
		NotVerifiedReason: resp.NotVerified.Reason,
	}, nil
}
