// Package profile exposes the /profile endpoints: reading the
// authenticated user's WebID profile and replacing it with a submitted
// record.
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/podworks/profiled/internal/platform/auth"
	"github.com/podworks/profiled/internal/platform/logging"
	"github.com/podworks/profiled/internal/service/webprofile"
)

// Register registers profile endpoints.
func Register(api huma.API, svc webprofile.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Description: "Resolves the authenticated account's WebID and returns the profile record extracted from its document.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ViewGetInput) (*ViewGetOutput, error) {
		acct := auth.AccountFromContext(ctx)

		view, err := svc.GetView(ctx, acct.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ViewGetOutput{
			Body: View{
				WebID:   view.WebID,
				Profile: *view.Profile,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-profile",
		Method:      http.MethodPut,
		Path:        "/profile",
		// The raw body is passed through to the service, which reports
		// shape and field errors together; huma must not pre-validate it
		// against the RawBody placeholder schema.
		SkipValidateBody: true,
		Summary:     "Replace current user's profile",
		Description: "Validates the submitted record and reconciles the WebID document with it, creating the document on first write.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfilePutInput) (*ProfilePutOutput, error) {
		acct := auth.AccountFromContext(ctx)

		record, err := svc.Handle(ctx, acct.ID, input.RawBody)
		if err != nil {
			logging.LogAuditEvent(ctx, "profile.update", acct.ID, "", "failure", map[string]any{
				"error": err.Error(),
			})
			return nil, mapServiceError(err)
		}

		logging.LogAuditEvent(ctx, "profile.update", acct.ID, "", "success", nil)
		return &ProfilePutOutput{Body: *record}, nil
	})
}

func mapServiceError(err error) error {
	var verr *webprofile.ValidationError
	switch {
	case errors.Is(err, webprofile.ErrNoWebID):
		return huma.Error400BadRequest("no WebID linked to this account")
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Messages))
		for _, msg := range verr.Messages {
			details = append(details, &huma.ErrorDetail{
				Message:  msg,
				Location: "body",
			})
		}
		return huma.Error422UnprocessableEntity("profile validation failed", details...)
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
