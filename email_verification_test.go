package mailersend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailersend "github.com/andyle182810/mailersend-go"
)

func TestEmailVerificationVerifyEmail_PostsAddress(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/email-verification/verify", req.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "someone@example.com", body["email"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "valid"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.EmailVerification.VerifyEmail(context.Background(), "someone@example.com")

	require.NoError(t, err)

	status, err := resp.Get("status")
	require.NoError(t, err)
	require.Equal(t, "valid", status)
}

func TestEmailVerificationVerifyEmail_AcceptsMalformedAddress(t *testing.T) {
	t.Parallel()

	// Syntax errors are a verification result, not a local failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "syntax_error"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.EmailVerification.VerifyEmail(context.Background(), "not-an-email")
	require.NoError(t, err)

	_, err = client.EmailVerification.VerifyEmail(context.Background(), " ")
	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestEmailVerificationAsyncFlow_UsesVerifyAsyncPaths(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodPost:
			assert.Equal(t, "/email-verification/verify-async", req.URL.Path)
		default:
			assert.Equal(t, "/email-verification/verify-async/ver-1", req.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "ver-1", "status": "pending"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.EmailVerification.VerifyEmailAsync(context.Background(), "someone@example.com")
	require.NoError(t, err)

	_, err = client.EmailVerification.AsyncStatus(context.Background(), "ver-1")
	require.NoError(t, err)

	_, err = client.EmailVerification.AsyncStatus(context.Background(), "")
	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestEmailVerificationCreate_ValidationRules(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	tests := []struct {
		name string
		req  *mailersend.EmailVerificationCreateRequest
	}{
		{"nil request", nil},
		{"missing name", &mailersend.EmailVerificationCreateRequest{
			Emails: []string{"a@example.com"},
		}},
		{"empty emails", &mailersend.EmailVerificationCreateRequest{
			Name: "list",
		}},
		{"blank email entry", &mailersend.EmailVerificationCreateRequest{
			Name:   "list",
			Emails: []string{""},
		}},
		{"email too long", &mailersend.EmailVerificationCreateRequest{
			Name:   "list",
			Emails: []string{strings.Repeat("a", 192)},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.EmailVerification.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, mailersend.ErrValidation)
		})
	}
}

func TestEmailVerificationResults_FiltersAndPaths(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/email-verification/ver-1/results", req.URL.Path)
		assert.Equal(t, "valid", req.URL.Query().Get("results[0]"))
		assert.Equal(t, "typo", req.URL.Query().Get("results[1]"))
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.EmailVerification.Results(context.Background(), "ver-1", &mailersend.EmailVerificationResultsOptions{
		ListOptions: mailersend.ListOptions{Page: 2},
		Results:     []string{"valid", "typo"},
	})
	require.NoError(t, err)

	_, err = client.EmailVerification.Results(context.Background(), "ver-1", &mailersend.EmailVerificationResultsOptions{
		Results: []string{"plausible"},
	})
	require.ErrorIs(t, err, mailersend.ErrValidation)
}

func TestEmailVerificationVerify_UsesVerifyPath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/email-verification/ver-1/verify", req.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": {"status": "verifying"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.EmailVerification.Verify(context.Background(), "ver-1")
	require.NoError(t, err)
}
