package api

import (
	"net/http"

	"reminder-scheduler/internal/domain/reminder"
	reqdto "reminder-scheduler/internal/handler/dto/request"
	resdto "reminder-scheduler/internal/handler/dto/response"
	"reminder-scheduler/internal/handler/httperr"
	"reminder-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderUseCase usecase.ReminderUseCase
}

func NewReminderHandler(reminderUseCase usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{reminderUseCase: reminderUseCase}
}

// @Summary Add reminder
// @Description Create a reminder from free text; the due time is read from the text itself
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ownerID path int true "Owner (chat) ID"
// @Param request body reqdto.CreateReminderRequest true "Reminder text"
// @Success 201 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/owners/{ownerID}/reminders [post]
func (h *ReminderHandler) AddReminder(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rem, err := h.reminderUseCase.AddReminder(c.Request.Context(), ownerID, req.Text)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+rem.ID().String())
	c.JSON(http.StatusCreated, resdto.FromReminder(rem))
}

// @Summary List reminders
// @Description List the owner's reminders ordered by creation time
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param ownerID path int true "Owner (chat) ID"
// @Success 200 {object} resdto.ReminderListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/owners/{ownerID}/reminders [get]
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	reminders, err := h.reminderUseCase.GetReminders(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminders(reminders))
}

// @Summary List reminders as text
// @Description Numbered reminder list ready to be sent to the chat
// @Tags reminders
// @Produce plain
// @Security BearerAuth
// @Param ownerID path int true "Owner (chat) ID"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/owners/{ownerID}/reminders/text [get]
func (h *ReminderHandler) GetRemindersList(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	text, err := h.reminderUseCase.GetRemindersList(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.String(http.StatusOK, text)
}

// @Summary Delete reminder
// @Description Delete one reminder; returns the removed reminder
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param ownerID path int true "Owner (chat) ID"
// @Param id path string true "Reminder ID"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/owners/{ownerID}/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}
	id, err := reminder.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	rem, err := h.reminderUseCase.DeleteReminder(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if rem == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errReminderNotFound, "Reminder not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReminder(rem))
}

// @Summary Clear reminders
// @Description Delete every reminder of the owner
// @Tags reminders
// @Security BearerAuth
// @Param ownerID path int true "Owner (chat) ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/owners/{ownerID}/reminders [delete]
func (h *ReminderHandler) ClearReminders(c *gin.Context) {
	ownerID, ok := ownerParam(c)
	if !ok {
		return
	}

	if err := h.reminderUseCase.ClearReminders(c.Request.Context(), ownerID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func ownerParam(c *gin.Context) (reminder.OwnerID, bool) {
	ownerID, err := reminder.ParseOwnerID(c.Param("ownerID"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return 0, false
	}
	return ownerID, true
}
