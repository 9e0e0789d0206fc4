package mailersend

import (
	"context"
	"net/http"
	"strconv"
)

// EmailVerificationService verifies single addresses and manages
// verification lists.
type EmailVerificationService struct {
	client *Client
}

// EmailVerificationResults is the set of result values the Results
// filter accepts.
var EmailVerificationResults = []string{
	"valid",
	"catch_all",
	"mailbox_full",
	"role_based",
	"unknown",
	"failed",
	"syntax_error",
	"typo",
	"mailbox_not_found",
	"disposable",
	"mailbox_blocked",
}

var verificationResultSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(EmailVerificationResults))
	for _, result := range EmailVerificationResults {
		set[result] = struct{}{}
	}

	return set
}()

// EmailVerificationCreateRequest creates a verification list. Addresses
// are only length-checked locally; syntax problems are what the
// verification itself reports.
type EmailVerificationCreateRequest struct {
	Name   string   `json:"name" validate:"required"`
	Emails []string `json:"emails" validate:"required,min=1,dive,required,max=191"`
}

type EmailVerificationResultsOptions struct {
	ListOptions
	Results []string `json:"results,omitempty"`
}

// VerifyEmail verifies one address synchronously and returns its status.
// The address is deliberately not syntax-checked locally: a syntax error
// is itself a verification result.
func (s *EmailVerificationService) VerifyEmail(ctx context.Context, email string) (*APIResponse, error) {
	if err := requireID("email", email); err != nil {
		return nil, err
	}

	body := map[string]string{"email": email}

	return s.client.Request(ctx, http.MethodPost, "/email-verification/verify", nil, body)
}

// VerifyEmailAsync starts an asynchronous single-address verification;
// poll the returned ID with AsyncStatus.
func (s *EmailVerificationService) VerifyEmailAsync(ctx context.Context, email string) (*APIResponse, error) {
	if err := requireID("email", email); err != nil {
		return nil, err
	}

	body := map[string]string{"email": email}

	return s.client.Request(ctx, http.MethodPost, "/email-verification/verify-async", nil, body)
}

func (s *EmailVerificationService) AsyncStatus(ctx context.Context, verificationID string) (*APIResponse, error) {
	if err := requireID("email_verification_id", verificationID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/email-verification/verify-async/"+verificationID, nil, nil)
}

func (s *EmailVerificationService) List(ctx context.Context, opts *ListOptions) (*APIResponse, error) {
	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		params = opts.toQuery(nil)
	}

	return s.client.Request(ctx, http.MethodGet, "/email-verification", params, nil)
}

func (s *EmailVerificationService) Get(ctx context.Context, verificationID string) (*APIResponse, error) {
	if err := requireID("email_verification_id", verificationID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/email-verification/"+verificationID, nil, nil)
}

func (s *EmailVerificationService) Create(ctx context.Context, req *EmailVerificationCreateRequest) (*APIResponse, error) {
	if req == nil {
		return nil, errValidationf("email verification create request is required")
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodPost, "/email-verification", nil, req)
}

// Verify starts verification of an existing list.
func (s *EmailVerificationService) Verify(ctx context.Context, verificationID string) (*APIResponse, error) {
	if err := requireID("email_verification_id", verificationID); err != nil {
		return nil, err
	}

	return s.client.Request(ctx, http.MethodGet, "/email-verification/"+verificationID+"/verify", nil, nil)
}

// Results reads per-address outcomes of a verified list, optionally
// filtered to specific result values.
func (s *EmailVerificationService) Results(ctx context.Context, verificationID string, opts *EmailVerificationResultsOptions) (*APIResponse, error) {
	if err := requireID("email_verification_id", verificationID); err != nil {
		return nil, err
	}

	var params map[string]string

	if opts != nil {
		if err := validateRequest(opts); err != nil {
			return nil, err
		}

		for _, result := range opts.Results {
			if _, ok := verificationResultSet[result]; !ok {
				return nil, errValidationf("invalid verification result filter %q", result)
			}
		}

		params = opts.ListOptions.toQuery(nil)
		for i, result := range opts.Results {
			params["results["+strconv.Itoa(i)+"]"] = result
		}
	}

	return s.client.Request(ctx, http.MethodGet, "/email-verification/"+verificationID+"/results", params, nil)
}
