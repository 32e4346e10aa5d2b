// Package domain contains application Usecases orchestrating activity signups.
package domain

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/internal/entities"
	"mergington-activities/internal/observability"
)

// GetAllActivities returns every activity with its public fields.
func (u *Usecase) GetAllActivities(ctx context.Context) ([]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListAll(ctx)
}

// SignUp adds email to the named activity's roster.
func (u *Usecase) SignUp(ctx context.Context, activityName, email string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMembership(activityName, email); err != nil {
		observability.RecordSignup(observability.OutcomeInvalid)
		return "", err
	}

	if _, err := u.repo.FindByName(ctx, activityName); err != nil {
		observability.RecordSignup(outcomeOf(err))
		return "", err
	}

	added, err := u.repo.TryAddParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordSignup(observability.OutcomeError)
		return "", err
	}
	if !added {
		err := u.conflictCause(ctx, activityName, email)
		observability.RecordSignup(outcomeOf(err))
		u.log.Infow("signup rejected", "activity", activityName, "email", email, "reason", err.Error())
		return "", err
	}

	observability.RecordSignup(observability.OutcomeSuccess)
	u.publish(entities.ParticipantJoined, activityName, email)
	return fmt.Sprintf("Successfully signed up for %s", activityName), nil
}

// Remove drops email from the named activity's roster.
// The membership pre-check and the removal are separate store calls.
func (u *Usecase) Remove(ctx context.Context, activityName, email string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMembership(activityName, email); err != nil {
		observability.RecordRemoval(observability.OutcomeInvalid)
		return "", err
	}

	activity, err := u.repo.FindByName(ctx, activityName)
	if err != nil {
		observability.RecordRemoval(outcomeOf(err))
		return "", err
	}
	if !activity.HasParticipant(email) {
		observability.RecordRemoval(observability.OutcomeNotSignedUp)
		return "", entities.ErrNotSignedUp
	}

	removed, err := u.repo.TryRemoveParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordRemoval(observability.OutcomeError)
		return "", err
	}
	if !removed {
		observability.RecordRemoval(observability.OutcomeFailed)
		u.log.Warnw("removal matched no participant after pre-check", "activity", activityName, "email", email)
		return "", entities.ErrOperationFailed
	}

	observability.RecordRemoval(observability.OutcomeSuccess)
	u.publish(entities.ParticipantLeft, activityName, email)
	return fmt.Sprintf("Successfully removed from %s", activityName), nil
}

// conflictCause re-reads the activity to explain a rejected add. The read is not
// atomic with the update and only picks the error message.
func (u *Usecase) conflictCause(ctx context.Context, activityName, email string) error {
	activity, err := u.repo.FindByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, entities.ErrActivityNotFound) {
			return err
		}
		u.log.Warnw("conflict diagnosis read failed", "activity", activityName, "error", err)
		return entities.ErrConflict
	}
	switch {
	case activity.HasParticipant(email):
		return entities.ErrAlreadySignedUp
	case activity.Full():
		return entities.ErrActivityFull
	default:
		return entities.ErrConflict
	}
}

// publish emits a membership event. Failures are logged; the roster change is already committed.
func (u *Usecase) publish(typ entities.ParticipantEventType, activityName, email string) {
	ctx, cancel := withTimeout(u.ctx, u.timeout)
	defer cancel()

	ev := entities.ParticipantEvent{
		Type:       typ,
		Activity:   activityName,
		Email:      email,
		OccurredAt: u.now(),
	}
	if err := u.pub.Publish(ctx, ev); err != nil {
		observability.RecordPublishFailure()
		u.log.Warnw("failed to publish membership event", "type", typ, "activity", activityName, "error", err)
	}
}

func validateMembership(activityName, email string) error {
	if activityName == "" {
		return fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, entities.ErrInvalidArgument):
		return observability.OutcomeInvalid
	case errors.Is(err, entities.ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, entities.ErrConflict):
		return observability.OutcomeConflict
	case errors.Is(err, entities.ErrNotSignedUp):
		return observability.OutcomeNotSignedUp
	case errors.Is(err, entities.ErrOperationFailed):
		return observability.OutcomeFailed
	default:
		return observability.OutcomeError
	}
}
