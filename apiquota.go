package mailersend

import (
	"context"
	"net/http"
)

// QuotaService reads the account's API quota.
type QuotaService struct {
	client *Client
}

// APIQuota is the typed payload of Get, usable with
// APIResponse.Unmarshal.
type APIQuota struct {
	Quota     int    `json:"quota"`
	Remaining int    `json:"remaining"`
	Reset     string `json:"reset"`
}

func (s *QuotaService) Get(ctx context.Context) (*APIResponse, error) {
	return s.client.Request(ctx, http.MethodGet, "/api-quota", nil, nil)
}
