package request

type CreateReminderRequest struct {
	// Text carries both the reminder body and its due time, e.g. "buy milk tomorrow at 9".
	Text string `json:"text" binding:"required,max=4096"`
}
