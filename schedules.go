package mailersend

import (
	"context"
	"net/http"
)

// SchedulesService manages messages scheduled with send_at.
type SchedulesService struct {
	client *Client
}

type ScheduleListOptions struct {
	ListOptions
	DomainID string `json:"domain_id,omitempty"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=scheduled sent error"`
}

func (s *SchedulesService) List(ctx context.Context, opts *ScheduleListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.ListOptions.toQuery(nil)
		if opts.DomainID != "" {
			params["domain_id"] = opts.DomainID
		}

		if opts.Status != "" {
			params["status"] = opts.Status
		}
	}

	return s.client.Request(ctx, http.MethodGet, "/message-schedules", params, nil)
}

func (s *SchedulesService) Get(ctx context.Context, messageID string) (*APIResponse, error) {
	if err := requireID("message_id", messageID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/message-schedules/"+messageID, nil, nil)
}

// Delete cancels a scheduled message that has not been sent yet.
func (s *SchedulesService) Delete(ctx context.Context, messageID string) (*APIResponse, error) {
	if err := requireID("message_id", messageID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/message-schedules/"+messageID, nil, nil)
}
