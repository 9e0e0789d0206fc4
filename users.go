package mailersend

import (
	"context"
	"net/http"
)

// UsersService manages account users and pending invites.
type UsersService struct {
	client *Client
}

type UserInviteRequest struct {
	Email       string   `json:"email" validate:"required,email,max=191"`
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions,omitempty"`
	Templates   []string `json:"templates,omitempty"`
	Domains     []string `json:"domains,omitempty"`

	RequiresPeriodicPasswordChange *bool `json:"requires_periodic_password_change,omitempty"`
}

type UserUpdateRequest struct {
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions,omitempty"`
	Templates   []string `json:"templates,omitempty"`
	Domains     []string `json:"domains,omitempty"`

	RequiresPeriodicPasswordChange *bool `json:"requires_periodic_password_change,omitempty"`
}

func (s *UsersService) List(ctx context.Context, opts *ListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/users", params, nil)
}

func (s *UsersService) Get(ctx context.Context, userID string) (*APIResponse, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/users/"+userID, nil, nil)
}

func (s *UsersService) Invite(ctx context.Context, req *UserInviteRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("user invite request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPost, "/users", nil, req)
}

func (s *UsersService) Update(ctx context.Context, userID string, req *UserUpdateRequest) (*APIResponse, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, errValidationf("user update request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPut, "/users/"+userID, nil, req)
}

func (s *UsersService) Delete(ctx context.Context, userID string) (*APIResponse, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/users/"+userID, nil, nil)
}

func (s *UsersService) ListInvites(ctx context.Context, opts *ListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/invites", params, nil)
}

func (s *UsersService) GetInvite(ctx context.Context, inviteID string) (*APIResponse, error) {
	if err := requireID("invite_id", inviteID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/invites/"+inviteID, nil, nil)
}

func (s *UsersService) ResendInvite(ctx context.Context, inviteID string) (*APIResponse, error) {
	if err := requireID("invite_id", inviteID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPost, "/invites/"+inviteID+"/resend", nil, nil)
}

func (s *UsersService) CancelInvite(ctx context.Context, inviteID string) (*APIResponse, error) {
	if err := requireID("invite_id", inviteID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodDelete, "/invites/"+inviteID, nil, nil)
}
