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

func TestSMSSend_PostsPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/sms", req.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "+15551234567", body["from"])

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.SMS.Send(context.Background(), &mailersend.SMSSendRequest{
		From: "+15551234567",
		To:   []string{"+15557654321"},
		Text: "Hello",
	})

	require.NoError(t, err)
}

func TestSMSSend_RequiresE164Numbers(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	tests := []struct {
		name string
		req  *mailersend.SMSSendRequest
	}{
		{"from without plus", &mailersend.SMSSendRequest{
			From: "15551234567",
			To:   []string{"+15557654321"},
			Text: "Hello",
		}},
		{"recipient without plus", &mailersend.SMSSendRequest{
			From: "+15551234567",
			To:   []string{"5557654321"},
			Text: "Hello",
		}},
		{"empty text", &mailersend.SMSSendRequest{
			From: "+15551234567",
			To:   []string{"+15557654321"},
		}},
		{"no recipients", &mailersend.SMSSendRequest{
			From: "+15551234567",
			Text: "Hello",
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.SMS.Send(context.Background(), tt.req)

			require.ErrorIs(t, err, mailersend.ErrValidation)
		})
	}
}

func TestSMSSend_PersonalizationMustMatchRecipients(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	_, err := client.SMS.Send(context.Background(), &mailersend.SMSSendRequest{
		From: "+15551234567",
		To:   []string{"+15557654321"},
		Text: "Hello {{name}}",
		Personalization: []mailersend.SMSPersonalization{
			{PhoneNumber: "+15550000000", Data: map[string]any{"name": "Stranger"}},
		},
	})

	require.ErrorIs(t, err, mailersend.ErrValidation)
	require.Contains(t, err.Error(), "+15550000000")
}

func TestSMSUpdateNumber_PutsPausedFlag(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/sms-numbers/num-1", req.URL.Path)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.True(t, body["paused"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.SMS.UpdateNumber(context.Background(), "num-1", true)

	require.NoError(t, err)
}

func TestSMSListNumbers_EmitsPausedFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/sms-numbers", req.URL.Path)
		assert.Equal(t, "false", req.URL.Query().Get("paused"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	paused := false
	_, err := client.SMS.ListNumbers(context.Background(), &mailersend.SMSNumberListOptions{
		Paused: &paused,
	})

	require.NoError(t, err)
}

func TestSMSGetMessage_RequiresID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com")

	_, err := client.SMS.GetMessage(context.Background(), "")

	require.ErrorIs(t, err, mailersend.ErrValidation)
}
