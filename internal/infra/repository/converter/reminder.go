package converter

import (
	"time"

	"reminder-scheduler/internal/domain/reminder"

	json "github.com/goccy/go-json"
)

// DueAtLayout is the ISO 8601 form used in time-index keys; fixed width so
// that string order matches chronological order.
const DueAtLayout = "2006-01-02T15:04:05.000Z"

type ReminderRecord struct {
	ID           string    `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Text         string    `json:"text"`
	DueAt        time.Time `json:"dueAt"`
	DueAtDisplay string    `json:"dueAtDisplay"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TimeIndexRecord points from a time-index entry back to its primary entry.
type TimeIndexRecord struct {
	OwnerID int64  `json:"ownerId"`
	ID      string `json:"id"`
}

func FormatDueAt(t time.Time) string {
	return t.UTC().Format(DueAtLayout)
}

func ReminderToRecord(r *reminder.Reminder) ReminderRecord {
	return ReminderRecord{
		ID:           r.ID().String(),
		OwnerID:      r.OwnerID().Int64(),
		Text:         r.Text().String(),
		DueAt:        r.DueAt(),
		DueAtDisplay: r.DueAtDisplay(),
		CreatedAt:    r.CreatedAt(),
	}
}

func EncodeReminder(r *reminder.Reminder) ([]byte, error) {
	return json.Marshal(ReminderToRecord(r))
}

func DecodeReminder(data []byte) (*reminder.Reminder, error) {
	var rec ReminderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return RecordToReminder(rec)
}

func RecordToReminder(rec ReminderRecord) (*reminder.Reminder, error) {
	id, err := reminder.ParseID(rec.ID)
	if err != nil {
		return nil, err
	}
	text, err := reminder.NewText(rec.Text)
	if err != nil {
		return nil, err
	}
	due, err := reminder.NewDueTime(rec.DueAt, rec.DueAtDisplay)
	if err != nil {
		return nil, err
	}
	return reminder.Reconstruct(id, reminder.OwnerID(rec.OwnerID), text, due, rec.CreatedAt), nil
}

func EncodeTimeIndex(r *reminder.Reminder) ([]byte, error) {
	return json.Marshal(TimeIndexRecord{OwnerID: r.OwnerID().Int64(), ID: r.ID().String()})
}

func DecodeTimeIndex(data []byte) (TimeIndexRecord, error) {
	var rec TimeIndexRecord
	err := json.Unmarshal(data, &rec)
	return rec, err
}
