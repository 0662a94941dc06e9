package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"
	"github.com/lucian886/healthManagement/internal/app/pkg/metric"

	"github.com/gin-gonic/gin"
)

// ApiRecordHealthData stores one measurement. The value parsing rule and unit
// come from the metric table; blood pressure takes an explicit pair or a
// "130/80" string.
// @Summary Record a health measurement
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data [post]
func (h *Handler) ApiRecordHealthData(ctx *gin.Context) {
	type requestBody struct {
		DataType          string `json:"data_type" binding:"required"`
		Value             string `json:"value"`
		SystolicPressure  *int   `json:"systolic_pressure"`
		DiastolicPressure *int   `json:"diastolic_pressure"`
		RecordDate        string `json:"record_date"`
		RecordTime        string `json:"record_time"`
		Note              string `json:"note"`
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

	data := &ds.HealthData{
		UserID:     currentUserID(ctx),
		DataType:   body.DataType,
		Unit:       metric.Unit(body.DataType),
		RecordDate: dateOrToday(recordDate),
		RecordTime: body.RecordTime,
		Note:       body.Note,
	}

	if body.DataType == metric.TypeBloodPressure {
		if body.SystolicPressure != nil && body.DiastolicPressure != nil {
			data.SystolicPressure = body.SystolicPressure
			data.DiastolicPressure = body.DiastolicPressure
		} else {
			data.SystolicPressure, data.DiastolicPressure = metric.ParseBloodPressure(body.Value)
		}
	} else {
		data.Value = metric.ParseDecimal(body.Value)
	}

	if err := h.Repository.CreateHealthData(data); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "measurement recorded", data)
}

// ApiLatestHealthData lists measurements newest-first across all types.
// @Summary Latest health data
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data/latest [get]
func (h *Handler) ApiLatestHealthData(ctx *gin.Context) {
	list, err := h.Repository.ListLatestHealthData(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiHealthDataTrend returns the last N days of one type, oldest-first.
// @Summary Health data trend
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data/trend/{dataType} [get]
func (h *Handler) ApiHealthDataTrend(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		h.appError(ctx, apperr.Validation("invalid days"))
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	list, err := h.Repository.ListHealthDataTrend(currentUserID(ctx), ctx.Param("dataType"), from, to)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiDailyHealthData returns every measurement of one day.
// @Summary Daily health data
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data/daily [get]
func (h *Handler) ApiDailyHealthData(ctx *gin.Context) {
	date, err := parseDate(ctx.Query("date"))
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if date == nil {
		h.appError(ctx, apperr.Validation("date is required"))
		return
	}

	list, err := h.Repository.ListHealthDataByDate(currentUserID(ctx), *date)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiHealthDataHistory returns up to limit rows of one type, newest-first.
// @Summary Health data history
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data/history/{dataType} [get]
func (h *Handler) ApiHealthDataHistory(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "30"))
	if err != nil || limit <= 0 {
		h.appError(ctx, apperr.Validation("invalid limit"))
		return
	}

	list, err := h.Repository.ListHealthDataHistory(currentUserID(ctx), ctx.Param("dataType"), limit)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiDeleteHealthData deletes one measurement after the ownership check.
// @Summary Delete a measurement
// @Tags health-data
// @Security BearerAuth
// @Router /api/health-data/{id} [delete]
func (h *Handler) ApiDeleteHealthData(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}

	data, err := h.Repository.GetHealthData(id)
	if err != nil {
		if isNotFound(err) {
			h.appError(ctx, apperr.NotFound("measurement not found"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if data.UserID != currentUserID(ctx) {
		h.appError(ctx, apperr.Forbidden("no access to this measurement"))
		return
	}

	if err := h.Repository.DeleteHealthData(id); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonMessage(ctx, "measurement deleted", nil)
}
