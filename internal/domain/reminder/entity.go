package reminder

import (
	"strings"
	"time"
)

// Reminder is immutable once created; editing is delete followed by create.
type Reminder struct {
	id        ID
	ownerID   OwnerID
	text      Text
	due       DueTime
	createdAt time.Time
}

// NewReminder builds a reminder that must be due strictly after now.
func NewReminder(ownerID OwnerID, text Text, due DueTime, now time.Time) (*Reminder, error) {
	if !due.IsFuture(now) {
		return nil, ErrParse
	}

	return &Reminder{
		id:        NewID(),
		ownerID:   ownerID,
		text:      text,
		due:       due,
		createdAt: now.UTC(),
	}, nil
}

// Reconstruct restores a persisted reminder without re-validating the due time.
func Reconstruct(id ID, ownerID OwnerID, text Text, due DueTime, createdAt time.Time) *Reminder {
	return &Reminder{
		id:        id,
		ownerID:   ownerID,
		text:      text,
		due:       due,
		createdAt: createdAt.UTC(),
	}
}

func (r *Reminder) ID() ID               { return r.id }
func (r *Reminder) OwnerID() OwnerID     { return r.ownerID }
func (r *Reminder) Text() Text           { return r.text }
func (r *Reminder) DueAt() time.Time     { return r.due.Time() }
func (r *Reminder) DueAtDisplay() string { return r.due.Display() }
func (r *Reminder) CreatedAt() time.Time { return r.createdAt }

func (r *Reminder) IsDue(now time.Time) bool {
	return r.due.IsDue(now)
}

// NotificationMessage is the text delivered to the owner when the reminder fires.
func (r *Reminder) NotificationMessage() string {
	return "🔔 Reminder: " + r.text.String()
}

// Compare orders reminders by creation time, falling back to id for equal
// timestamps.
func Compare(a, b *Reminder) int {
	if c := a.createdAt.Compare(b.createdAt); c != 0 {
		return c
	}
	return strings.Compare(a.id.String(), b.id.String())
}

// DueEntry is one time-index entry: the moment a reminder fires and a pointer
// back to it.
type DueEntry struct {
	ID      ID
	OwnerID OwnerID
	DueAt   time.Time

	// Dangling is set when the pointer could not be read; such entries can only
	// be discarded.
	Dangling bool
}
