//go:build unit || e2e

package builder

import (
	"time"

	"reminder-scheduler/internal/domain/reminder"
	reqdto "reminder-scheduler/internal/handler/dto/request"
)

type ReminderBuilder struct {
	ID           string
	OwnerID      reminder.OwnerID
	Text         string
	DueAt        time.Time
	DueAtDisplay string
	CreatedAt    time.Time
}

func NewReminderBuilder() *ReminderBuilder {
	return &ReminderBuilder{
		ID:           "",
		OwnerID:      1,
		Text:         "buy milk",
		DueAt:        time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC),
		DueAtDisplay: "2 января 2024 г., 9:00",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReminderBuilder) With(mutate func(*ReminderBuilder)) *ReminderBuilder {
	mutate(b)
	return b
}

func (b *ReminderBuilder) WithOwner(ownerID reminder.OwnerID) *ReminderBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ReminderBuilder) WithText(text string) *ReminderBuilder {
	b.Text = text
	return b
}

func (b *ReminderBuilder) WithDueAt(at time.Time) *ReminderBuilder {
	b.DueAt = at
	return b
}

func (b *ReminderBuilder) WithCreatedAt(at time.Time) *ReminderBuilder {
	b.CreatedAt = at
	return b
}

// BuildDomain panics on invalid builder state; builders only hold test data.
func (b *ReminderBuilder) BuildDomain() *reminder.Reminder {
	id := reminder.NewID()
	if b.ID != "" {
		var err error
		id, err = reminder.ParseID(b.ID)
		if err != nil {
			panic(err)
		}
	}
	text, err := reminder.NewText(b.Text)
	if err != nil {
		panic(err)
	}
	due, err := reminder.NewDueTime(b.DueAt, b.DueAtDisplay)
	if err != nil {
		panic(err)
	}
	return reminder.Reconstruct(id, b.OwnerID, text, due, b.CreatedAt)
}

func (b *ReminderBuilder) BuildCreateRequestDTO() reqdto.CreateReminderRequest {
	return reqdto.CreateReminderRequest{Text: b.Text + " tomorrow at 9"}
}
