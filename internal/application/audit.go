package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// auditor appends audit-log entries as a side effect of admin mutations.
// Appends are best effort: a failed append is logged and never fails the
// mutation it records.
type auditor struct {
	Repo   repository.AuditLogRepository
	Logger *logrus.Logger
}

func (a auditor) record(ctx context.Context, caller *policy.Caller, action, details string) {
	if a.Repo == nil {
		return
	}
	name := ""
	if caller != nil {
		name = caller.Name
		if name == "" {
			name = caller.Email
		}
	}
	entry := &entity.AuditLogEntry{Action: action, AdminName: name, Details: details}
	if err := a.Repo.Append(ctx, entry); err != nil && a.Logger != nil {
		a.Logger.WithError(err).WithField("action", action).Warn("audit append failed")
	}
}
