package clients

import (
	"context"
	"time"

	"loandraft/internal/verification"
)

// AddressClient calls the address-metadata lookup service by pxid (the
// external address identifier captured by the address autocomplete upstream).
type AddressClient struct {
	baseURL string
	http    doer
}

func NewAddressClient(baseURL string, timeout time.Duration) *AddressClient {
	return &AddressClient{baseURL: baseURL, http: newHTTPClient(timeout)}
}

type addressResponse struct {
	Pxid        string `json:"pxid"`
	FullAddress string `json:"full_address"`
	Number      string `json:"number"`
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
}

// Lookup fetches the metadata record for a pxid. (nil, nil) means the
// identifier resolved to nothing; that is a valid non-error outcome.
func (c *AddressClient) Lookup(ctx context.Context, pxid string) (*verification.AddressResult, error) {
	var resp addressResponse
	found, raw, err := getJSON(ctx, c.http, joinURL(c.baseURL, "address", pxid), &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &verification.AddressResult{
		Pxid:        resp.Pxid,
		FullAddress: resp.FullAddress,
		Number:      resp.Number,
		Street:      resp.Street,
		Suburb:      resp.Suburb,
		City:        resp.City,
		Postcode:    resp.Postcode,
		RawPayload:  raw,
	}, nil
}
