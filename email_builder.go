package mailersend

import "slices"

// EmailBuilder accumulates the optional fields of an EmailRequest through
// chained setters. Build validates the assembled request, so a builder
// never emits an invalid one.
type EmailBuilder struct {
	req EmailRequest
}

func NewEmailBuilder() *EmailBuilder {
	return &EmailBuilder{}
}

func (b *EmailBuilder) From(email, name string) *EmailBuilder {
	b.req.From = &EmailContact{Email: email, Name: name}
	return b
}

func (b *EmailBuilder) To(email, name string) *EmailBuilder {
	b.req.To = append(b.req.To, EmailContact{Email: email, Name: name})
	return b
}

func (b *EmailBuilder) ToMany(contacts []EmailContact) *EmailBuilder {
	b.req.To = append(b.req.To, contacts...)
	return b
}

func (b *EmailBuilder) Cc(email, name string) *EmailBuilder {
	b.req.Cc = append(b.req.Cc, EmailContact{Email: email, Name: name})
	return b
}

func (b *EmailBuilder) Bcc(email, name string) *EmailBuilder {
	b.req.Bcc = append(b.req.Bcc, EmailContact{Email: email, Name: name})
	return b
}

func (b *EmailBuilder) ReplyTo(email, name string) *EmailBuilder {
	b.req.ReplyTo = &EmailContact{Email: email, Name: name}
	return b
}

func (b *EmailBuilder) Subject(subject string) *EmailBuilder {
	b.req.Subject = subject
	return b
}

func (b *EmailBuilder) Text(text string) *EmailBuilder {
	b.req.Text = text
	return b
}

func (b *EmailBuilder) HTML(html string) *EmailBuilder {
	b.req.HTML = html
	return b
}

func (b *EmailBuilder) TemplateID(templateID string) *EmailBuilder {
	b.req.TemplateID = templateID
	return b
}

// Attach adds a base64-encoded attachment.
func (b *EmailBuilder) Attach(filename, content string) *EmailBuilder {
	b.req.Attachments = append(b.req.Attachments, EmailAttachment{
		Content:     content,
		Filename:    filename,
		Disposition: "attachment",
	})

	return b
}

// AttachInline adds an inline attachment referenced from HTML by cid.
func (b *EmailBuilder) AttachInline(filename, content, cid string) *EmailBuilder {
	b.req.Attachments = append(b.req.Attachments, EmailAttachment{
		Content:     content,
		Filename:    filename,
		Disposition: "inline",
		ID:          cid,
	})

	return b
}

// Personalize sets substitution data for one recipient.
func (b *EmailBuilder) Personalize(email string, data map[string]any) *EmailBuilder {
	b.req.Personalization = append(b.req.Personalization, EmailPersonalization{
		Email: email,
		Data:  data,
	})

	return b
}

func (b *EmailBuilder) Tags(tags ...string) *EmailBuilder {
	b.req.Tags = append(b.req.Tags, tags...)
	return b
}

func (b *EmailBuilder) TrackClicks(enabled bool) *EmailBuilder {
	b.settings().TrackClicks = &enabled
	return b
}

func (b *EmailBuilder) TrackOpens(enabled bool) *EmailBuilder {
	b.settings().TrackOpens = &enabled
	return b
}

func (b *EmailBuilder) TrackContent(enabled bool) *EmailBuilder {
	b.settings().TrackContent = &enabled
	return b
}

// SendAt schedules delivery for a unix timestamp.
func (b *EmailBuilder) SendAt(timestamp int64) *EmailBuilder {
	b.req.SendAt = timestamp
	return b
}

func (b *EmailBuilder) PrecedenceBulk(enabled bool) *EmailBuilder {
	b.req.PrecedenceBulk = &enabled
	return b
}

func (b *EmailBuilder) InReplyTo(messageID string) *EmailBuilder {
	b.req.InReplyTo = messageID
	return b
}

func (b *EmailBuilder) References(messageIDs ...string) *EmailBuilder {
	b.req.References = append(b.req.References, messageIDs...)
	return b
}

func (b *EmailBuilder) Header(name, value string) *EmailBuilder {
	b.req.Headers = append(b.req.Headers, EmailHeader{Name: name, Value: value})
	return b
}

func (b *EmailBuilder) settings() *EmailTrackingSettings {
	if b.req.Settings == nil {
		b.req.Settings = &EmailTrackingSettings{}
	}

	return b.req.Settings
}

// Build validates the accumulated fields and emits the request. It fails
// with a *ValidationError when required fields are unset. The request is
// detached from the builder: pointer fields are copied and slices cloned,
// so later setter calls cannot mutate an already-built request.
func (b *EmailBuilder) Build() (*EmailRequest, error) {
	req := b.req

	req.To = slices.Clone(b.req.To)
	req.Cc = slices.Clone(b.req.Cc)
	req.Bcc = slices.Clone(b.req.Bcc)
	req.Tags = slices.Clone(b.req.Tags)
	req.Attachments = slices.Clone(b.req.Attachments)
	req.Personalization = slices.Clone(b.req.Personalization)
	req.References = slices.Clone(b.req.References)
	req.Headers = slices.Clone(b.req.Headers)

	if b.req.From != nil {
		from := *b.req.From
		req.From = &from
	}

	if b.req.ReplyTo != nil {
		replyTo := *b.req.ReplyTo
		req.ReplyTo = &replyTo
	}

	if b.req.Settings != nil {
		settings := *b.req.Settings
		req.Settings = &settings
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	return &req, nil
}
