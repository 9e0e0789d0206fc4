package mailersend

import (
	"context"
	"net/http"
)

// MessagesService reads sent messages.
type MessagesService struct {
	client *Client
}

func (s *MessagesService) List(ctx context.Context, opts *ListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/messages", params, nil)
}

func (s *MessagesService) Get(ctx context.Context, messageID string) (*APIResponse, error) {
	if err := requireID("message_id", messageID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/messages/"+messageID, nil, nil)
}
