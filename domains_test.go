package mailersend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailersend "github.com/andyle182810/mailersend-go"
)

func TestDomainsList_EmitsPaginationParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/domains", req.URL.Path)
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Equal(t, "50", req.URL.Query().Get("limit"))
		assert.Equal(t, "true", req.URL.Query().Get("verified"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	verified := true
	_, err := client.Domains.List(context.Background(), &mailersend.DomainListOptions{
		ListOptions: mailersend.ListOptions{Page: 2, Limit: 50},
		Verified:    &verified,
	})

	require.NoError(t, err)
}

func TestDomainsList_RejectsOutOfRangeLimit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	_, err := client.Domains.List(context.Background(), &mailersend.DomainListOptions{
		ListOptions: mailersend.ListOptions{Limit: 5},
	})

	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestDomainsCreate_RequiresLowercaseName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	_, err := client.Domains.Create(context.Background(), &mailersend.DomainCreateRequest{
		Name: "Example.COM",
	})

	require.ErrorIs(t, err, mailersend.ErrValidation)
	require.Contains(t, err.Error(), "lowercase")
}

func TestDomainsCreate_RejectsInvalidDomainName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	_, err := client.Domains.Create(context.Background(), &mailersend.DomainCreateRequest{
		Name: "not a domain",
	})

	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestDomainsCreate_PostsBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "example.com", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": "dom-1", "name": "example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Domains.Create(context.Background(), &mailersend.DomainCreateRequest{
		Name: "example.com",
	})

	require.NoError(t, err)
	require.True(t, resp.Success())
}

func TestDomains_PathOperationsRequireID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")
	ctx := context.Background()

	_, err := client.Domains.Get(ctx, "")
	require.ErrorIs(t, err, mailersend.ErrValidation)

	_, err = client.Domains.Delete(ctx, "")
	require.ErrorIs(t, err, mailersend.ErrValidation)

	_, err = client.Domains.DNSRecords(ctx, "")
	require.ErrorIs(t, err, mailersend.ErrValidation)

	_, err = client.Domains.UpdateSettings(ctx, "", &mailersend.DomainSettingsRequest{})
	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestDomainsUpdateSettings_PutsSwitches(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/domains/dom-1/settings", req.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, true, body["send_paused"])
		assert.NotContains(t, body, "track_clicks")

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	paused := true
	_, err := client.Domains.UpdateSettings(context.Background(), "dom-1", &mailersend.DomainSettingsRequest{
		SendPaused: &paused,
	})

	require.NoError(t, err)
}
