package mailersend

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// AnalyticsService reads aggregated sending statistics.
type AnalyticsService struct {
	client *Client
}

// analyticsEventSet extends the activity events with the unique-count
// variants the by-date endpoint accepts.
var analyticsEventSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ActivityEvents)+2)
	for _, event := range ActivityEvents {
		set[event] = struct{}{}
	}

	set["opened_unique"] = struct{}{}
	set["clicked_unique"] = struct{}{}

	return set
}()

// AnalyticsRequest is shared by all analytics endpoints. GroupBy and
// Events apply to ActivityByDate only and are dropped from the query for
// the opens endpoints.
type AnalyticsRequest struct {
	DomainID     string   `json:"domain_id,omitempty"`
	RecipientIDs []string `json:"recipient_id,omitempty" validate:"omitempty,max=50"`

	// DateFrom and DateTo are unix timestamps bounding the window.
	DateFrom int64 `json:"date_from" validate:"required,gt=0"`
	DateTo   int64 `json:"date_to" validate:"required,gt=0"`

	Tags []string `json:"tags,omitempty"`

	GroupBy string   `json:"group_by,omitempty" validate:"omitempty,oneof=days weeks months years"`
	Events  []string `json:"event,omitempty"`
}

func (r *AnalyticsRequest) validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}

	if r.DateTo <= r.DateFrom {
		return errValidationf("date_to must be greater than date_from")
	}

	for _, tag := range r.Tags {
		if strings.TrimSpace(tag) == "" {
			return errValidationf("tags must be non-empty strings")
		}
	}

	for _, event := range r.Events {
		if _, ok := analyticsEventSet[event]; !ok {
			return errValidationf("invalid analytics event %q", event)
		}
	}

	return nil
}

func (r *AnalyticsRequest) toQuery(withDateDimensions bool) map[string]string {
	params := map[string]string{
		"date_from": strconv.FormatInt(r.DateFrom, 10),
		"date_to":   strconv.FormatInt(r.DateTo, 10),
	}

	if r.DomainID != "" {
		params["domain_id"] = r.DomainID
	}

	for i, id := range r.RecipientIDs {
		params["recipient_id["+strconv.Itoa(i)+"]"] = id
	}

	for i, tag := range r.Tags {
		params["tags["+strconv.Itoa(i)+"]"] = tag
	}

	if withDateDimensions {
		if r.GroupBy != "" {
			params["group_by"] = r.GroupBy
		}

		for i, event := range r.Events {
			params["event["+strconv.Itoa(i)+"]"] = event
		}
	}

	return params
}

func (s *AnalyticsService) get(ctx context.Context, path string, req *AnalyticsRequest, withDateDimensions bool) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("analytics request is required")
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, path, req.toQuery(withDateDimensions), nil)
}

// ActivityByDate returns event counts grouped by day, week, month or
// year.
func (s *AnalyticsService) ActivityByDate(ctx context.Context, req *AnalyticsRequest) (*APIResponse, error) {
	return s.get(ctx, "/analytics/date", req, true)
}

func (s *AnalyticsService) OpensByCountry(ctx context.Context, req *AnalyticsRequest) (*APIResponse, error) {
	return s.get(ctx, "/analytics/country", req, false)
}

func (s *AnalyticsService) OpensByUserAgent(ctx context.Context, req *AnalyticsRequest) (*APIResponse, error) {
	return s.get(ctx, "/analytics/ua-name", req, false)
}

func (s *AnalyticsService) OpensByReadingEnvironment(ctx context.Context, req *AnalyticsRequest) (*APIResponse, error) {
	return s.get(ctx, "/analytics/ua-type", req, false)
}
