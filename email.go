package mailersend

import (
	"context"
	"net/http"
)

// EmailsService sends transactional email through the /email endpoints.
type EmailsService struct {
	client *Client
}

type EmailContact struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

type EmailAttachment struct {
	// Content is the base64-encoded file body.
	Content     string `json:"content" validate:"required"`
	Filename    string `json:"filename" validate:"required"`
	Disposition string `json:"disposition,omitempty" validate:"omitempty,oneof=attachment inline"`
	ID          string `json:"id,omitempty"`
}

type EmailPersonalization struct {
	Email string         `json:"email" validate:"required,email"`
	Data  map[string]any `json:"data" validate:"required"`
}

type EmailTrackingSettings struct {
	TrackClicks  *bool `json:"track_clicks,omitempty"`
	TrackOpens   *bool `json:"track_opens,omitempty"`
	TrackContent *bool `json:"track_content,omitempty"`
}

type EmailHeader struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// EmailRequest is the full payload for Send. Build one directly or with
// NewEmailBuilder.
type EmailRequest struct {
	From            *EmailContact          `json:"from,omitempty"`
	To              []EmailContact         `json:"to" validate:"required,min=1,max=50,dive"`
	Cc              []EmailContact         `json:"cc,omitempty" validate:"omitempty,max=10,dive"`
	Bcc             []EmailContact         `json:"bcc,omitempty" validate:"omitempty,max=10,dive"`
	ReplyTo         *EmailContact          `json:"reply_to,omitempty"`
	Subject         string                 `json:"subject,omitempty" validate:"omitempty,max=998"`
	Text            string                 `json:"text,omitempty"`
	HTML            string                 `json:"html,omitempty"`
	TemplateID      string                 `json:"template_id,omitempty"`
	Tags            []string               `json:"tags,omitempty" validate:"omitempty,max=5"`
	Attachments     []EmailAttachment      `json:"attachments,omitempty" validate:"omitempty,dive"`
	Personalization []EmailPersonalization `json:"personalization,omitempty" validate:"omitempty,dive"`
	PrecedenceBulk  *bool                  `json:"precedence_bulk,omitempty"`
	SendAt          int64                  `json:"send_at,omitempty"`
	InReplyTo       string                 `json:"in_reply_to,omitempty"`
	References      []string               `json:"references,omitempty"`
	Settings        *EmailTrackingSettings `json:"settings,omitempty"`
	Headers         []EmailHeader          `json:"headers,omitempty" validate:"omitempty,dive"`
}

// validate enforces field constraints plus the conditional rules: a
// template carries defaults for content, subject and sender, so those
// become required only when no template_id is set.
func (r *EmailRequest) validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}

	if r.From != nil {
		if err := validateRequest(r.From); err != nil {
			return err
		}
	}

	if r.ReplyTo != nil {
		if err := validateRequest(r.ReplyTo); err != nil {
			return err
		}
	}

	hasTemplate := r.TemplateID != ""
	hasContent := r.Text != "" || r.HTML != ""

	if !hasTemplate && !hasContent {
		return errValidationf("either template_id or text/html content is required")
	}

	if !hasTemplate && r.Subject == "" {
		return errValidationf("subject is required when not using a template")
	}

	if !hasTemplate && r.From == nil {
		return errValidationf("from email is required when not using a template")
	}

	return nil
}

// Send submits one email. The returned envelope carries the queued
// message ID in the x-message-id header.
func (s *EmailsService) Send(ctx context.Context, req *EmailRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("email request is required")
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	s.client.logger.Debug().Int("recipients", len(req.To)).Msg("sending email")

	return s.client.Request(ctx, http.MethodPost, "/email", nil, req)
}

// SendBulk submits up to 500 emails in one call and returns the bulk
// email ID to poll with BulkStatus.
func (s *EmailsService) SendBulk(ctx context.Context, reqs []*EmailRequest) (*APIResponse, error) {
	if len(reqs) == 0 {
		return nil, errValidationf("at least one email request is required")
	}

	if len(reqs) > 500 {
		return nil, errValidationf("bulk send accepts at most 500 emails, got %d", len(reqs))
	}

	for i, req := range reqs {
		if req == nil {
			return nil, errValidationf("email request at index %d is nil", i)
		}

		if err := req.validate(); err != nil {
			return nil, err
		}
	}

	s.client.logger.Debug().Int("emails", len(reqs)).Msg("sending bulk email")

	return s.client.Request(ctx, http.MethodPost, "/bulk-email", nil, reqs)
}

// BulkStatus reads the processing state of a bulk send.
func (s *EmailsService) BulkStatus(ctx context.Context, bulkEmailID string) (*APIResponse, error) {
	if err := requireID("bulk_email_id", bulkEmailID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/bulk-email/"+bulkEmailID, nil, nil)
}
