package mailersend

import (
	"context"
	"net/http"
)

// WebhooksService manages activity webhooks.
type WebhooksService struct {
	client *Client
}

// WebhookEvents is the set of events a webhook may subscribe to.
var WebhookEvents = []string{
	"activity.sent",
	"activity.delivered",
	"activity.soft_bounced",
	"activity.hard_bounced",
	"activity.opened",
	"activity.opened_unique",
	"activity.clicked",
	"activity.clicked_unique",
	"activity.unsubscribed",
	"activity.spam_complaint",
	"activity.survey_opened",
	"activity.survey_submitted",
}

var webhookEventSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(WebhookEvents))
	for _, event := range WebhookEvents {
		set[event] = struct{}{}
	}

	return set
}()

type WebhookCreateRequest struct {
	URL      string   `json:"url" validate:"required,url,max=191"`
	Name     string   `json:"name" validate:"required,max=191"`
	Events   []string `json:"events" validate:"required,min=1"`
	DomainID string   `json:"domain_id" validate:"required"`
	Enabled  *bool    `json:"enabled,omitempty"`
}

// WebhookUpdateRequest updates a webhook; nil/empty fields are left
// unchanged.
type WebhookUpdateRequest struct {
	URL     string   `json:"url,omitempty" validate:"omitempty,url,max=191"`
	Name    string   `json:"name,omitempty" validate:"omitempty,max=191"`
	Events  []string `json:"events,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

func validateWebhookEvents(events []string) error {
	for _, event := range events {
		if _, ok := webhookEventSet[event]; !ok {
			return errValidationf("invalid webhook event %q", event)
		}
	}

	return nil
}

func (s *WebhooksService) List(ctx context.Context, domainID string, opts *ListOptions) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	params := map[string]string{"domain_id": domainID}

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(params)
	}

	return s.client.Request(ctx, http.MethodGet, "/webhooks", params, nil)
}

func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*APIResponse, error) {
	if err := requireID("webhook_id", webhookID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/webhooks/"+webhookID, nil, nil)
}

func (s *WebhooksService) Create(ctx context.Context, req *WebhookCreateRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("webhook create request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := validateWebhookEvents(req.Events); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPost, "/webhooks", nil, req)
}

func (s *WebhooksService) Update(ctx context.Context, webhookID string, req *WebhookUpdateRequest) (*APIResponse, error) {
	if err := requireID("webhook_id", webhookID); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errValidationf("webhook update request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := validateWebhookEvents(req.Events); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPut, "/webhooks/"+webhookID, nil, req)
}

func (s *WebhooksService) Delete(ctx context.Context, webhookID string) (*APIResponse, error) {
	if err := requireID("webhook_id", webhookID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/webhooks/"+webhookID, nil, nil)
}
