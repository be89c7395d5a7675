package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// ResolveRoleQuery identifies the authenticated subject to resolve.
// Email is used only to seed a lazily provisioned record.
type ResolveRoleQuery struct {
	SubjectID string
	Email     string
}

// ResolveRoleUseCase resolves the role for a subject, provisioning a USER
// record on first sight. All failures degrade to a denied resolution; this
// use case never surfaces an error and never yields ADMIN on a failed path.
type ResolveRoleUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute returns an explicit resolution result. The denied branch is a
// deliberate fail-safe default, not an error path the caller can miss.
func (u ResolveRoleUseCase) Execute(ctx context.Context, query ResolveRoleQuery) entities.Resolution {
	logger := application.ResolveLogger(u.Logger)

	subjectID := strings.TrimSpace(query.SubjectID)
	if subjectID == "" {
		return entities.Denied()
	}

	user, err := u.Repository.GetUser(ctx, subjectID)
	if err == nil {
		return entities.Resolution{Outcome: entities.OutcomeFound, Role: user.Role}
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		logger.Error("role lookup failed, denying privilege",
			"event", "directory_resolve_failed",
			"module", "identity-access/directory-service",
			"layer", "application",
			"subject_id", subjectID,
			"error", err.Error(),
		)
		return entities.Denied()
	}

	created, wasCreated, err := u.Repository.ProvisionUser(ctx, ports.ProvisionUserInput{
		ID:        subjectID,
		Email:     strings.TrimSpace(query.Email),
		Name:      defaultName(query.Email, subjectID),
		CreatedAt: u.now(),
	})
	if err != nil {
		logger.Error("record provisioning failed, denying privilege",
			"event", "directory_provision_failed",
			"module", "identity-access/directory-service",
			"layer", "application",
			"subject_id", subjectID,
			"error", err.Error(),
		)
		return entities.Denied()
	}

	if wasCreated {
		logger.Info("directory record provisioned",
			"event", "directory_record_provisioned",
			"module", "identity-access/directory-service",
			"layer", "application",
			"subject_id", subjectID,
		)
		return entities.Resolution{Outcome: entities.OutcomeCreated, Role: created.Role}
	}
	// Lost a provisioning race; the surviving record wins.
	return entities.Resolution{Outcome: entities.OutcomeFound, Role: created.Role}
}

func (u ResolveRoleUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

// defaultName derives a display name from the email local-part, falling back
// to the subject id for identities without a mirrored email.
func defaultName(email string, subjectID string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return subjectID
}
