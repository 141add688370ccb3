package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent logs a structured audit event for profile mutations.
// Result is "success" or "failure"; details carries optional context such as
// an error category.
func LogAuditEvent(ctx context.Context, action, accountID, resourceID, result string, details map[string]any) {
	FromContext(ctx).Info("Audit event",
		zap.String("audit.action", action),
		zap.String("audit.account_id", accountID),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
