package mailersend

import (
	"context"
	"net/http"
)

// TemplatesService reads and removes stored templates.
type TemplatesService struct {
	client *Client
}

type TemplateListOptions struct {
	ListOptions
	DomainID string `json:"domain_id,omitempty"`
}

func (s *TemplatesService) List(ctx context.Context, opts *TemplateListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.ListOptions.toQuery(nil)
		if opts.DomainID != "" {
			params["domain_id"] = opts.DomainID
		}
	}

	return s.client.Request(ctx, http.MethodGet, "/templates", params, nil)
}

func (s *TemplatesService) Get(ctx context.Context, templateID string) (*APIResponse, error) {
	if err := requireID("template_id", templateID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/templates/"+templateID, nil, nil)
}

func (s *TemplatesService) Delete(ctx context.Context, templateID string) (*APIResponse, error) {
	if err := requireID("template_id", templateID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/templates/"+templateID, nil, nil)
}
