package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/pkg/platform/sentinel"
)

func TestPhoneClientVerifyMobile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify/mobile/0211234567", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"line": {"type": "mobile", "status": "connected", "status_reason": ""},
			"country": {"code": "NZ", "calling_code": "64"},
			"national": {"raw": "0211234567", "formatted": "021 123 4567"},
			"international": {"raw": "+64211234567", "formatted": "+64 21 123 4567"}
		}`))
	}))
	defer srv.Close()

	client := NewPhoneClient(srv.URL, time.Second)
	res, err := client.VerifyMobile(context.Background(), "0211234567")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, "mobile", res.LineType)
	assert.Equal(t, "021 123 4567", res.FormattedNational)
	assert.Equal(t, "64", res.CallingCode)
}

func TestPhoneClientNoResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewPhoneClient(srv.URL, time.Second)
	res, err := client.VerifyMobile(context.Background(), "0211234567")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestPhoneClientServerErrorIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewPhoneClient(srv.URL, time.Second)
	_, err := client.VerifyMobile(context.Background(), "0211234567")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestPhoneClientClientErrorIsNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewPhoneClient(srv.URL, time.Second)
	_, err := client.VerifyMobile(context.Background(), "0211234567")
	require.Error(t, err)
	assert.NotErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestEmailClientVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"email_address": "jan@example.co.nz",
			"account": "jan",
			"domain": "example.co.nz",
			"provider_domain": "example.co.nz",
			"is_disposable": false,
			"is_role": false,
			"is_public": false,
			"is_catch_all": true
		}`))
	}))
	defer srv.Close()

	client := NewEmailClient(srv.URL, time.Second)
	res, err := client.Verify(context.Background(), "jan@example.co.nz")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "jan", res.Account)
	assert.True(t, res.IsCatchAll)
	assert.False(t, res.IsDisposable)
}

func TestAddressClientLookupKeepsRawPayload(t *testing.T) {
	body := `{"pxid":"3-1qMeWeX2z5FFv95fNhcpee","full_address":"12 Example Street, Ponsonby, Auckland 1011","number":"12","street":"Example Street","suburb":"Ponsonby","city":"Auckland","postcode":"1011"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/3-1qMeWeX2z5FFv95fNhcpee", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewAddressClient(srv.URL, time.Second)
	res, err := client.Lookup(context.Background(), "3-1qMeWeX2z5FFv95fNhcpee")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Auckland", res.City)
	assert.JSONEq(t, body, string(res.RawPayload))
}

func TestContextDeadlineSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewAddressClient(srv.URL, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.Lookup(ctx, "3-1qMeWeX2z5FFv95fNhcpee")
	assert.Error(t, err)
}
