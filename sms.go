package mailersend

import (
	"context"
	"net/http"
	"strconv"
)

// SMSService sends SMS messages and manages sending numbers.
type SMSService struct {
	client *Client
}

type SMSPersonalization struct {
	PhoneNumber string         `json:"phone_number" validate:"required,e164"`
	Data        map[string]any `json:"data" validate:"required"`
}

type SMSSendRequest struct {
	From            string               `json:"from" validate:"required,e164"`
	To              []string             `json:"to" validate:"required,min=1,max=50,dive,e164"`
	Text            string               `json:"text" validate:"required,max=2048"`
	Personalization []SMSPersonalization `json:"personalization,omitempty" validate:"omitempty,dive"`
}

// validate enforces field constraints plus the rule that every
// personalization number appears in the recipient list.
func (r *SMSSendRequest) validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}

	if len(r.Personalization) == 0 {
		return nil
	}

	recipients := make(map[string]struct{}, len(r.To))
	for _, number := range r.To {
		recipients[number] = struct{}{}
	}

	for _, p := range r.Personalization {
		if _, ok := recipients[p.PhoneNumber]; !ok {
			return errValidationf("personalization phone number %s not in recipient list", p.PhoneNumber)
		}
	}

	return nil
}

func (s *SMSService) Send(ctx context.Context, req *SMSSendRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("sms send request is required")
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	s.client.logger.Debug().Int("recipients", len(req.To)).Msg("sending sms")

	return s.client.Request(ctx, http.MethodPost, "/sms", nil, req)
}

type SMSNumberListOptions struct {
	ListOptions
	Paused *bool `json:"paused,omitempty"`
}

func (s *SMSService) ListNumbers(ctx context.Context, opts *SMSNumberListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.ListOptions.toQuery(nil)
		if opts.Paused != nil {
			params["paused"] = strconv.FormatBool(*opts.Paused)
		}
	}

	return s.client.Request(ctx, http.MethodGet, "/sms-numbers", params, nil)
}

func (s *SMSService) GetNumber(ctx context.Context, numberID string) (*APIResponse, error) {
	if err := requireID("sms_number_id", numberID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/sms-numbers/"+numberID, nil, nil)
}

// UpdateNumber pauses or resumes a sending number.
func (s *SMSService) UpdateNumber(ctx context.Context, numberID string, paused bool) (*APIResponse, error) {
	if err := requireID("sms_number_id", numberID); err != nil {
		return nil, err
	}

	body := map[string]bool{"paused": paused}

	return s.client.Request(ctx, http.MethodPut, "/sms-numbers/"+numberID, nil, body)
}

func (s *SMSService) DeleteNumber(ctx context.Context, numberID string) (*APIResponse, error) {
	if err := requireID("sms_number_id", numberID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/sms-numbers/"+numberID, nil, nil)
}

func (s *SMSService) ListMessages(ctx context.Context, opts *ListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/sms-messages", params, nil)
}

func (s *SMSService) GetMessage(ctx context.Context, messageID string) (*APIResponse, error) {
	if err := requireID("sms_message_id", messageID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/sms-messages/"+messageID, nil, nil)
}
