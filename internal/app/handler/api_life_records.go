package handler

import (
	"net/http"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ApiAddLifeRecord logs one diet, exercise or sleep activity. Only the field
// group of the given record type is read from the body.
// @Summary Add a life record
// @Tags life-records
// @Security BearerAuth
// @Router /api/life-records [post]
func (h *Handler) ApiAddLifeRecord(ctx *gin.Context) {
	type requestBody struct {
		RecordType string `json:"record_type" binding:"required"`
		RecordDate string `json:"record_date"`
		RecordTime string `json:"record_time"`

		MealType    string   `json:"meal_type"`
		FoodContent string   `json:"food_content"`
		Calories    *float64 `json:"calories"`

		ExerciseType    string   `json:"exercise_type"`
		DurationMinutes *int     `json:"duration_minutes"`
		CaloriesBurned  *float64 `json:"calories_burned"`
		Distance        *float64 `json:"distance"`
		Steps           *int     `json:"steps"`

		SleepStart    string   `json:"sleep_start"`
		SleepEnd      string   `json:"sleep_end"`
		SleepDuration *float64 `json:"sleep_duration"`
		SleepQuality  string   `json:"sleep_quality"`

		Mood string `json:"mood"`
		Note string `json:"note"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	recordDate, err := parseDate(body.RecordDate)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	record := &ds.LifeRecord{
		UserID:     currentUserID(ctx),
		RecordType: body.RecordType,
		RecordDate: dateOrToday(recordDate),
		Mood:       body.Mood,
		Note:       body.Note,
	}

	switch body.RecordType {
	case "diet":
		record.RecordTime = body.RecordTime
		record.MealType = body.MealType
		record.FoodContent = body.FoodContent
		record.Calories = body.Calories
	case "exercise":
		record.RecordTime = body.RecordTime
		record.ExerciseType = body.ExerciseType
		record.DurationMinutes = body.DurationMinutes
		record.CaloriesBurned = body.CaloriesBurned
		record.Distance = body.Distance
		record.Steps = body.Steps
	case "sleep":
		record.SleepStart = body.SleepStart
		record.SleepEnd = body.SleepEnd
		record.SleepDuration = body.SleepDuration
		record.SleepQuality = body.SleepQuality
	default:
		h.appError(ctx, apperr.Validation("unknown record type: "+body.RecordType))
		return
	}

	if err := h.Repository.CreateLifeRecord(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "record added", record)
}

// ApiDailyLifeRecords lists one day's activities, latest time first.
// @Summary Daily life records
// @Tags life-records
// @Security BearerAuth
// @Router /api/life-records/daily [get]
func (h *Handler) ApiDailyLifeRecords(ctx *gin.Context) {
	date, err := parseDate(ctx.Query("date"))
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if date == nil {
		h.appError(ctx, apperr.Validation("date is required"))
		return
	}

	list, err := h.Repository.ListLifeRecordsByDate(currentUserID(ctx), *date)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiLifeRecordsByType lists everything of one record type, newest-first.
// @Summary Life records by type
// @Tags life-records
// @Security BearerAuth
// @Router /api/life-records/type/{recordType} [get]
func (h *Handler) ApiLifeRecordsByType(ctx *gin.Context) {
	list, err := h.Repository.ListLifeRecordsByType(currentUserID(ctx), ctx.Param("recordType"))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiRecentLifeRecords lists the 30 most recent records of one type.
// @Summary Recent life records
// @Tags life-records
// @Security BearerAuth
// @Router /api/life-records/recent/{recordType} [get]
func (h *Handler) ApiRecentLifeRecords(ctx *gin.Context) {
	list, err := h.Repository.ListRecentLifeRecords(currentUserID(ctx), ctx.Param("recordType"), 30)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiDeleteLifeRecord deletes one record after the ownership check.
// @Summary Delete a life record
// @Tags life-records
// @Security BearerAuth
// @Router /api/life-records/{id} [delete]
func (h *Handler) ApiDeleteLifeRecord(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}

	record, err := h.Repository.GetLifeRecord(id)
	if err != nil {
		if isNotFound(err) {
			h.appError(ctx, apperr.NotFound("record not found"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if record.UserID != currentUserID(ctx) {
		h.appError(ctx, apperr.Forbidden("no access to this record"))
		return
	}

	if err := h.Repository.DeleteLifeRecord(id); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonMessage(ctx, "record deleted", nil)
}
