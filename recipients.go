package mailersend

import (
	"context"
	"net/http"
)

// RecipientsService reads recipients and manages suppression lists.
type RecipientsService struct {
	client *Client
}

// SuppressionList identifies one of the per-domain suppression lists.
type SuppressionList string

const (
	SuppressionBlocklist      SuppressionList = "blocklist"
	SuppressionHardBounces    SuppressionList = "hard-bounces"
	SuppressionSpamComplaints SuppressionList = "spam-complaints"
	SuppressionUnsubscribes   SuppressionList = "unsubscribes"
	SuppressionOnHold         SuppressionList = "on-hold-list"
)

var suppressionListSet = map[SuppressionList]struct{}{
	SuppressionBlocklist:      {},
	SuppressionHardBounces:    {},
	SuppressionSpamComplaints: {},
	SuppressionUnsubscribes:   {},
	SuppressionOnHold:         {},
}

// SuppressionAddRequest adds recipients or patterns to a suppression
// list. Recipients fills every list; Patterns applies to the blocklist
// only.
type SuppressionAddRequest struct {
	DomainID   string   `json:"domain_id" validate:"required"`
	Recipients []string `json:"recipients,omitempty" validate:"omitempty,dive,email"`
	Patterns   []string `json:"patterns,omitempty"`
}

// SuppressionDeleteRequest removes entries by ID, or everything when All
// is set.
type SuppressionDeleteRequest struct {
	DomainID string   `json:"domain_id,omitempty"`
	IDs      []string `json:"ids,omitempty"`
	All      bool     `json:"all,omitempty"`
}

type RecipientListOptions struct {
	ListOptions
	DomainID string `json:"domain_id,omitempty"`
}

func (o *RecipientListOptions) toQuery() map[string]string {
	params := o.ListOptions.toQuery(nil)
	if o.DomainID != "" {
		params["domain_id"] = o.DomainID
	}

	return params
}

func requireSuppressionList(list SuppressionList) error {
	if _, ok := suppressionListSet[list]; !ok {
		return errValidationf("invalid suppression list %q", list)
	}

	return nil
}

func (s *RecipientsService) List(ctx context.Context, opts *RecipientListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery()
	}

	return s.client.Request(ctx, http.MethodGet, "/recipients", params, nil)
}

func (s *RecipientsService) Get(ctx context.Context, recipientID string) (*APIResponse, error) {
	if err := requireID("recipient_id", recipientID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/recipients/"+recipientID, nil, nil)
}

func (s *RecipientsService) Delete(ctx context.Context, recipientID string) (*APIResponse, error) {
	if err := requireID("recipient_id", recipientID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/recipients/"+recipientID, nil, nil)
}

func (s *RecipientsService) ListSuppressions(ctx context.Context, list SuppressionList, opts *RecipientListOptions) (*APIResponse, error) {
	if err := requireSuppressionList(list); err != nil {
		return nil, err
	}

	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery()
	}

	return s.client.Request(ctx, http.MethodGet, "/suppressions/"+string(list), params, nil)
}

func (s *RecipientsService) AddToSuppression(ctx context.Context, list SuppressionList, req *SuppressionAddRequest) (*APIResponse, error) {
	if err := requireSuppressionList(list); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errValidationf("suppression add request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if len(req.Recipients) == 0 && len(req.Patterns) == 0 {
		return nil, errValidationf("recipients or patterns are required")
	}

	if len(req.Patterns) > 0 && list != SuppressionBlocklist {
		return nil, errValidationf("patterns apply only to the blocklist")
	}

	return s.client.Request(ctx, http.MethodPost, "/suppressions/"+string(list), nil, req)
}

func (s *RecipientsService) DeleteFromSuppression(ctx context.Context, list SuppressionList, req *SuppressionDeleteRequest) (*APIResponse, error) {
	if err := requireSuppressionList(list); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errValidationf("suppression delete request is required")
	}

	if len(req.IDs) == 0 && !req.All {
		return nil, errValidationf("ids or all is required")
	}

	return s.client.Request(ctx, http.MethodDelete, "/suppressions/"+string(list), nil, req)
}
