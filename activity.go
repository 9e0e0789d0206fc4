package mailersend

import (
	"context"
	"net/http"
	"strconv"
)

// ActivityService reads per-domain sending activity.
type ActivityService struct {
	client *Client
}

// ActivityEvents is the set of filterable activity event types.
var ActivityEvents = []string{
	"queued",
	"sent",
	"delivered",
	"soft_bounced",
	"hard_bounced",
	"opened",
	"clicked",
	"unsubscribed",
	"spam_complaints",
	"survey_opened",
	"survey_submitted",
}

var activityEventSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ActivityEvents))
	for _, event := range ActivityEvents {
		set[event] = struct{}{}
	}

	return set
}()

// maxActivityWindow caps the date_from..date_to range at 7 days.
const maxActivityWindow = 604800

type ActivityListRequest struct {
	DomainID string `json:"domain_id" validate:"required"`

	// DateFrom and DateTo are unix timestamps bounding the window.
	DateFrom int64 `json:"date_from" validate:"required,gt=0"`
	DateTo   int64 `json:"date_to" validate:"required,gt=0"`

	Events []string `json:"event,omitempty"`

	ListOptions
}

func (r *ActivityListRequest) validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}

	if r.DateTo <= r.DateFrom {
		return errValidationf("date_to must be greater than date_from")
	}

	if r.DateTo-r.DateFrom > maxActivityWindow {
		return errValidationf("timeframe between date_from and date_to cannot exceed 7 days")
	}

	for _, event := range r.Events {
		if _, ok := activityEventSet[event]; !ok {
			return errValidationf("invalid activity event %q", event)
		}
	}

	return nil
}

func (r *ActivityListRequest) toQuery() map[string]string {
	params := r.ListOptions.toQuery(nil)
	params["date_from"] = strconv.FormatInt(r.DateFrom, 10)
	params["date_to"] = strconv.FormatInt(r.DateTo, 10)

	for i, event := range r.Events {
		params["event["+strconv.Itoa(i)+"]"] = event
	}

	return params
}

func (s *ActivityService) List(ctx context.Context, req *ActivityListRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("activity list request is required")
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/activity/"+req.DomainID, req.toQuery(), nil)
}

func (s *ActivityService) Get(ctx context.Context, activityID string) (*APIResponse, error) {
	if err := requireID("activity_id", activityID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/activities/"+activityID, nil, nil)
}
