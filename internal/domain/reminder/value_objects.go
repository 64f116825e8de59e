package reminder

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTextLength = 4096

// OwnerID is the chat-side identifier of the user a reminder belongs to.
type OwnerID int64

func ParseOwnerID(s string) (OwnerID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidOwner
	}
	return OwnerID(v), nil
}

func (o OwnerID) Int64() int64   { return int64(o) }
func (o OwnerID) String() string { return strconv.FormatInt(int64(o), 10) }

type ID struct {
	value string
}

func NewID() ID {
	return ID{value: uuid.NewString()}
}

// ParseID accepts only UUIDs, so ids can never carry key separators.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return ID{value: u.String()}, nil
}

func (i ID) String() string { return i.value }
func (i ID) IsZero() bool   { return i.value == "" }

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: t}, nil
}

func (t Text) String() string { return t.value }

// DueTime is the absolute moment a reminder fires, kept in UTC.
type DueTime struct {
	at      time.Time
	display string
}

func NewDueTime(at time.Time, display string) (DueTime, error) {
	if at.IsZero() {
		return DueTime{}, ErrDueAtRequired
	}
	return DueTime{at: at.UTC(), display: display}, nil
}

func (d DueTime) Time() time.Time { return d.at }
func (d DueTime) Display() string { return d.display }
func (d DueTime) IsFuture(now time.Time) bool {
	return d.at.After(now)
}

// checks whether the reminder is due at now (inclusive)
func (d DueTime) IsDue(now time.Time) bool {
	return !d.at.After(now)
}
