package mailersend

import (
	"context"
	"net/http"
)

// TokensService manages API tokens.
type TokensService struct {
	client *Client
}

// TokenScopes is the set of scopes a token may carry.
var TokenScopes = []string{
	"email_full",
	"domains_read",
	"domains_full",
	"activity_read",
	"activity_full",
	"analytics_read",
	"analytics_full",
	"tokens_full",
	"webhooks_full",
	"templates_full",
	"suppressions_read",
	"suppressions_full",
	"sms_full",
	"sms_read",
	"email_verification_read",
	"email_verification_full",
	"inbounds_full",
	"recipients_read",
	"recipients_full",
	"sender_identity_read",
	"sender_identity_full",
	"users_read",
	"users_full",
	"smtp_users_read",
	"smtp_users_full",
}

var tokenScopeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(TokenScopes))
	for _, scope := range TokenScopes {
		set[scope] = struct{}{}
	}

	return set
}()

type TokenCreateRequest struct {
	Name     string   `json:"name" validate:"required,max=50"`
	DomainID string   `json:"domain_id" validate:"required"`
	Scopes   []string `json:"scopes" validate:"required,min=1"`
}

func (r *TokenCreateRequest) validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}

	for _, scope := range r.Scopes {
		if _, ok := tokenScopeSet[scope]; !ok {
			return errValidationf("invalid scope %q", scope)
		}
	}

	return nil
}

// Create issues a new token. The plaintext token appears only in this
// response.
func (s *TokensService) Create(ctx context.Context, req *TokenCreateRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("token create request is required")
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPost, "/token", nil, req)
}

// Update pauses or unpauses a token; status must be "pause" or "unpause".
func (s *TokensService) Update(ctx context.Context, tokenID, status string) (*APIResponse, error) {
	if err := requireID("token_id", tokenID); err != nil {
		return nil, err
	}

	if status != "pause" && status != "unpause" {
		return nil, errValidationf("status must be one of [pause unpause], got %q", status)
	}

	body := map[string]string{"status": status}

	return s.client.Request(ctx, http.MethodPut, "/token/"+tokenID+"/settings", nil, body)
}

func (s *TokensService) UpdateName(ctx context.Context, tokenID, name string) (*APIResponse, error) {
	if err := requireID("token_id", tokenID); err != nil {
		return nil, err
	}

	if name == "" || len(name) > 50 {
		return nil, errValidationf("name is required and must be at most 50 characters")
	}

	body := map[string]string{"name": name}

	return s.client.Request(ctx, http.MethodPut, "/token/"+tokenID, nil, body)
}

func (s *TokensService) Delete(ctx context.Context, tokenID string) (*APIResponse, error) {
	if err := requireID("token_id", tokenID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/token/"+tokenID, nil, nil)
}
