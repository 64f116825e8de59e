package usecase

//go:generate mockgen -source=reminder.go -destination=../../tests/mock/usecase/reminder.go -package=usecasemock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reminder-scheduler/internal/domain/reminder"
)

const emptyListMessage = "No reminders in the list"

type ReminderUseCase interface {
	AddReminder(ctx context.Context, ownerID reminder.OwnerID, text string) (*reminder.Reminder, error)
	GetReminders(ctx context.Context, ownerID reminder.OwnerID) ([]*reminder.Reminder, error)
	GetRemindersList(ctx context.Context, ownerID reminder.OwnerID) (string, error)
	DeleteReminder(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (*reminder.Reminder, error)
	ClearReminders(ctx context.Context, ownerID reminder.OwnerID) error
}

type reminderUseCaseImpl struct {
	repo   ReminderRepository
	logger *slog.Logger
}

func NewReminderUseCase(repo ReminderRepository, logger *slog.Logger) ReminderUseCase {
	return &reminderUseCaseImpl{repo: repo, logger: logger}
}

// AddReminder makes a single attempt; a reminder.ErrParse is returned as is
// and re-prompting is left to the caller.
func (uc *reminderUseCaseImpl) AddReminder(ctx context.Context, ownerID reminder.OwnerID, text string) (*reminder.Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, reminder.ErrEmptyText
	}

	rem, err := uc.repo.Create(ctx, ownerID, text)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("reminder added",
		slog.String("reminder_id", rem.ID().String()),
		slog.String("owner_id", ownerID.String()),
		slog.Time("due_at", rem.DueAt()))
	return rem, nil
}

func (uc *reminderUseCaseImpl) GetReminders(ctx context.Context, ownerID reminder.OwnerID) ([]*reminder.Reminder, error) {
	return uc.repo.FindByOwner(ctx, ownerID)
}

func (uc *reminderUseCaseImpl) GetRemindersList(ctx context.Context, ownerID reminder.OwnerID) (string, error) {
	reminders, err := uc.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return FormatReminderList(reminders), nil
}

// FormatReminderList renders "{i}. {text} ({dueAtDisplay})" lines, 1-indexed.
func FormatReminderList(reminders []*reminder.Reminder) string {
	if len(reminders) == 0 {
		return emptyListMessage
	}

	lines := make([]string, len(reminders))
	for i, rem := range reminders {
		lines[i] = fmt.Sprintf("%d. %s (%s)", i+1, rem.Text(), rem.DueAtDisplay())
	}
	return strings.Join(lines, "\n")
}

// DeleteReminder returns the removed reminder, or nil when there was nothing
// to remove.
func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (*reminder.Reminder, error) {
	rem, err := uc.repo.FindByID(ctx, ownerID, id)
	if err != nil || rem == nil {
		return nil, err
	}

	deleted, err := uc.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		// fired or deleted concurrently
		return nil, nil
	}

	uc.logger.Info("reminder deleted",
		slog.String("reminder_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return rem, nil
}

func (uc *reminderUseCaseImpl) ClearReminders(ctx context.Context, ownerID reminder.OwnerID) error {
	n, err := uc.repo.DeleteAll(ctx, ownerID)
	if err != nil {
		return err
	}
	uc.logger.Info("reminders cleared",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", n))
	return nil
}
