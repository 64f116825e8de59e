package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"
	"time"

	"reminder-scheduler/internal/domain/reminder"
)

type ReminderRepository interface {
	Create(ctx context.Context, ownerID reminder.OwnerID, rawText string) (*reminder.Reminder, error)
	FindByOwner(ctx context.Context, ownerID reminder.OwnerID) ([]*reminder.Reminder, error)
	FindByID(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (*reminder.Reminder, error)
	Delete(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (bool, error)
	DeleteAll(ctx context.Context, ownerID reminder.OwnerID) (int, error)
}

// DueReminderStore is the scheduler's view of the repository.
type DueReminderStore interface {
	FindDue(ctx context.Context, now time.Time) ([]reminder.DueEntry, error)
	FindAll(ctx context.Context) ([]*reminder.Reminder, error)
	FindByID(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (*reminder.Reminder, error)
	Remove(ctx context.Context, rem *reminder.Reminder) error
	DeleteTimeEntry(ctx context.Context, entry reminder.DueEntry) error
}

// Notifier delivers a message to the owner's chat.
type Notifier interface {
	Send(ctx context.Context, ownerID reminder.OwnerID, message string) error
}
