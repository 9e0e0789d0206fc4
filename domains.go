package mailersend

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// DomainsService manages sending domains.
type DomainsService struct {
	client *Client
}

// Domain is the typed shape of a sending domain, for use with
// APIResponse.Unmarshal.
type Domain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsVerified  bool   `json:"is_verified"`
	IsDNSActive bool   `json:"is_dns_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DomainListOptions struct {
	ListOptions
	Verified *bool `json:"verified,omitempty"`
}

func (o *DomainListOptions) toQuery() map[string]string {
	params := o.ListOptions.toQuery(nil)
	if o.Verified != nil {
		params["verified"] = strconv.FormatBool(*o.Verified)
	}

	return params
}

type DomainCreateRequest struct {
	Name                    string `json:"name" validate:"required,fqdn"`
	ReturnPathSubdomain     string `json:"return_path_subdomain,omitempty" validate:"omitempty,alphanum"`
	CustomTrackingSubdomain string `json:"custom_tracking_subdomain,omitempty" validate:"omitempty,alphanum"`
	InboundRoutingSubdomain string `json:"inbound_routing_subdomain,omitempty" validate:"omitempty,alphanum"`
}

// DomainSettingsRequest carries the mutable per-domain switches; nil
// fields are left unchanged.
type DomainSettingsRequest struct {
	SendPaused                 *bool `json:"send_paused,omitempty"`
	TrackClicks                *bool `json:"track_clicks,omitempty"`
	TrackOpens                 *bool `json:"track_opens,omitempty"`
	TrackUnsubscribe           *bool `json:"track_unsubscribe,omitempty"`
	TrackContent               *bool `json:"track_content,omitempty"`
	CustomTrackingEnabled      *bool `json:"custom_tracking_enabled,omitempty"`
	PrecedenceBulk             *bool `json:"precedence_bulk,omitempty"`
	IgnoreDuplicatedRecipients *bool `json:"ignore_duplicated_recipients,omitempty"`
}

func (s *DomainsService) List(ctx context.Context, opts *DomainListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery()
	}

	return s.client.Request(ctx, http.MethodGet, "/domains", params, nil)
}

func (s *DomainsService) Get(ctx context.Context, domainID string) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/domains/"+domainID, nil, nil)
}

// Create registers a new sending domain. Domain names must be lowercase.
func (s *DomainsService) Create(ctx context.Context, req *DomainCreateRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("domain create request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.Name != strings.ToLower(req.Name) {
		return nil, errValidationf("name must be lowercase")
	}

	return s.client.Request(ctx, http.MethodPost, "/domains", nil, req)
}

func (s *DomainsService) Delete(ctx context.Context, domainID string) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/domains/"+domainID, nil, nil)
}

func (s *DomainsService) UpdateSettings(ctx context.Context, domainID string, req *DomainSettingsRequest) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errValidationf("domain settings request is required")
	}

	return s.client.Request(ctx, http.MethodPut, "/domains/"+domainID+"/settings", nil, req)
}

// Recipients lists the recipients a domain has sent to.
func (s *DomainsService) Recipients(ctx context.Context, domainID string, opts *ListOptions) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/domains/"+domainID+"/recipients", params, nil)
}

func (s *DomainsService) DNSRecords(ctx context.Context, domainID string) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/domains/"+domainID+"/dns-records", nil, nil)
}

func (s *DomainsService) VerificationStatus(ctx context.Context, domainID string) (*APIResponse, error) {
	if err := requireID("domain_id", domainID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/domains/"+domainID+"/verify", nil, nil)
}
