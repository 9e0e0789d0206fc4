package mailersend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactValue_MasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"api_key":  "secret123",
		"apiToken": "tok_456",
		"password": "hunter2",
		"name":     "safe",
		"nested": map[string]any{
			"client_secret": "s3cr3t",
			"count":         float64(2),
		},
	}

	out, ok := redactValue(in).(map[string]any)
	require.True(t, ok)

	require.Equal(t, redactedPlaceholder, out["api_key"])
	require.Equal(t, redactedPlaceholder, out["apiToken"])
	require.Equal(t, redactedPlaceholder, out["password"])
	require.Equal(t, "safe", out["name"])

	nested, ok := out["nested"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, redactedPlaceholder, nested["client_secret"])
	require.Equal(t, float64(2), nested["count"])
}

func TestRedactValue_LeavesOriginalUntouched(t *testing.T) {
	t.Parallel()

	in := map[string]any{"api_key": "secret123"}

	_ = redactValue(in)

	require.Equal(t, "secret123", in["api_key"])
}

func TestRedactString_MasksBearerTokens(t *testing.T) {
	t.Parallel()

	got := redactString("Authorization: Bearer abc.def-ghi_jkl sent")

	require.Equal(t, "Authorization: Bearer "+redactedPlaceholder+" sent", got)
	require.Equal(t, "no tokens here", redactString("no tokens here"))
}

func TestRedactQuery_MasksSensitiveParams(t *testing.T) {
	t.Parallel()

	out := redactQuery(map[string]string{
		"token": "tok_123",
		"page":  "2",
	})

	require.Equal(t, redactedPlaceholder, out["token"])
	require.Equal(t, "2", out["page"])

	require.Nil(t, redactQuery(nil))
}

func TestRedactBody_HandlesStructs(t *testing.T) {
	t.Parallel()

	body := struct {
		APIKey string `json:"api_key"`
		Name   string `json:"name"`
	}{APIKey: "secret123", Name: "safe"}

	out, ok := redactBody(body).(map[string]any)
	require.True(t, ok)
	require.Equal(t, redactedPlaceholder, out["api_key"])
	require.Equal(t, "safe", out["name"])

	require.Nil(t, redactBody(nil))
}

func TestIsSensitiveField(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"api_key", "ApiKey", "access_token", "AUTHORIZATION", "client_secret", "user_password"} {
		require.True(t, isSensitiveField(name), name)
	}

	for _, name := range []string{"name", "email", "domain_id"} {
		require.False(t, isSensitiveField(name), name)
	}
}
