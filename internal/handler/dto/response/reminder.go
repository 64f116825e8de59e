package response

import (
	"reminder-scheduler/internal/domain/reminder"
)

type ReminderResponse struct {
	ID           string `json:"id"`
	OwnerID      int64  `json:"owner_id"`
	Text         string `json:"text"`
	DueAt        int64  `json:"due_at"`
	DueAtDisplay string `json:"due_at_display"`
	CreatedAt    int64  `json:"created_at"`
}

type ReminderListResponse struct {
	Reminders []*ReminderResponse `json:"reminders"`
	Count     int                 `json:"count"`
}

func FromReminder(r *reminder.Reminder) *ReminderResponse {
	return &ReminderResponse{
		ID:           r.ID().String(),
		OwnerID:      r.OwnerID().Int64(),
		Text:         r.Text().String(),
		DueAt:        r.DueAt().Unix(),
		DueAtDisplay: r.DueAtDisplay(),
		CreatedAt:    r.CreatedAt().Unix(),
	}
}

func FromReminders(rs []*reminder.Reminder) *ReminderListResponse {
	items := make([]*ReminderResponse, len(rs))
	for i, r := range rs {
		items[i] = FromReminder(r)
	}
	return &ReminderListResponse{Reminders: items, Count: len(items)}
}
