package handler

import (
	"net/http"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"
	"github.com/lucian886/healthManagement/internal/app/pkg/schedule"

	"github.com/gin-gonic/gin"
)

// ownedReminder loads a reminder and enforces owner equality.
func (h *Handler) ownedReminder(ctx *gin.Context, id uint) (*ds.HealthReminder, error) {
	reminder, err := h.Repository.GetReminder(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("reminder not found")
		}
		return nil, apperr.Wrap(err, "loading reminder")
	}
	if reminder.UserID != currentUserID(ctx) {
		return nil, apperr.Forbidden("no access to this reminder")
	}
	return reminder, nil
}

// ApiCreateReminder creates a reminder. RepeatType defaults to daily and the
// next fire time is derived from the time of day.
// @Summary Create a reminder
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders [post]
func (h *Handler) ApiCreateReminder(ctx *gin.Context) {
	type requestBody struct {
		ReminderType string `json:"reminder_type"`
		Content      string `json:"content" binding:"required"`
		ReminderTime string `json:"reminder_time"`
		RepeatType   string `json:"repeat_type"`
		RepeatDays   string `json:"repeat_days"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	repeatType := body.RepeatType
	if repeatType == "" {
		repeatType = "daily"
	}

	reminder := &ds.HealthReminder{
		UserID:           currentUserID(ctx),
		ReminderType:     body.ReminderType,
		Content:          body.Content,
		ReminderTime:     body.ReminderTime,
		RepeatType:       repeatType,
		RepeatDays:       body.RepeatDays,
		Enabled:          true,
		NextReminderTime: schedule.NextOccurrence(body.ReminderTime, time.Now()),
	}
	if err := h.Repository.CreateReminder(reminder); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "reminder created", reminder)
}

// ApiListReminders lists every reminder of the caller.
// @Summary List reminders
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders [get]
func (h *Handler) ApiListReminders(ctx *gin.Context) {
	list, err := h.Repository.ListReminders(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiActiveReminders lists enabled reminders ordered by time of day.
// @Summary List active reminders
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders/active [get]
func (h *Handler) ApiActiveReminders(ctx *gin.Context) {
	list, err := h.Repository.ListActiveReminders(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiUpdateReminder partially updates a reminder and recomputes the next fire
// time from the (possibly new) time of day.
// @Summary Update a reminder
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders/{id} [put]
func (h *Handler) ApiUpdateReminder(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	reminder, err := h.ownedReminder(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	type requestBody struct {
		ReminderType *string `json:"reminder_type"`
		Content      *string `json:"content"`
		ReminderTime *string `json:"reminder_time"`
		RepeatType   *string `json:"repeat_type"`
		RepeatDays   *string `json:"repeat_days"`
		Enabled      *bool   `json:"enabled"`
		Completed    *bool   `json:"completed"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if body.ReminderType != nil {
		reminder.ReminderType = *body.ReminderType
	}
	if body.Content != nil {
		reminder.Content = *body.Content
	}
	if body.ReminderTime != nil {
		reminder.ReminderTime = *body.ReminderTime
	}
	if body.RepeatType != nil {
		reminder.RepeatType = *body.RepeatType
	}
	if body.RepeatDays != nil {
		reminder.RepeatDays = *body.RepeatDays
	}
	if body.Enabled != nil {
		reminder.Enabled = *body.Enabled
	}
	if body.Completed != nil {
		reminder.Completed = *body.Completed
	}
	reminder.NextReminderTime = schedule.NextOccurrence(reminder.ReminderTime, time.Now())

	if err := h.Repository.SaveReminder(reminder); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "reminder updated", reminder)
}

// ApiToggleReminder flips the enabled flag. Re-enabling recomputes the next
// fire time; disabling leaves it untouched.
// @Summary Toggle a reminder
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders/{id}/toggle [patch]
func (h *Handler) ApiToggleReminder(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	reminder, err := h.ownedReminder(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	reminder.Enabled = !reminder.Enabled
	if reminder.Enabled {
		reminder.NextReminderTime = schedule.NextOccurrence(reminder.ReminderTime, time.Now())
	}
	if err := h.Repository.SaveReminder(reminder); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "reminder toggled", reminder)
}

// ApiDeleteReminder removes a reminder.
// @Summary Delete a reminder
// @Tags reminders
// @Security BearerAuth
// @Router /api/reminders/{id} [delete]
func (h *Handler) ApiDeleteReminder(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if _, err := h.ownedReminder(ctx, id); err != nil {
		h.appError(ctx, err)
		return
	}

	if err := h.Repository.DeleteReminder(id); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonMessage(ctx, "reminder deleted", nil)
}
