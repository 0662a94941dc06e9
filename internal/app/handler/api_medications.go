package handler

import (
	"net/http"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ownedMedication loads a medication record and enforces owner equality.
func (h *Handler) ownedMedication(ctx *gin.Context, id uint) (*ds.MedicationRecord, error) {
	med, err := h.Repository.GetMedication(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("medication not found")
		}
		return nil, apperr.Wrap(err, "loading medication")
	}
	if med.UserID != currentUserID(ctx) {
		return nil, apperr.Forbidden("no access to this medication")
	}
	return med, nil
}

// ApiAddMedication starts tracking a medication. StartDate defaults to today.
// @Summary Add a medication
// @Tags medications
// @Security BearerAuth
// @Router /api/medications [post]
func (h *Handler) ApiAddMedication(ctx *gin.Context) {
	type requestBody struct {
		MedicationName string `json:"medication_name" binding:"required"`
		Dosage         string `json:"dosage"`
		Method         string `json:"method"`
		Frequency      string `json:"frequency"`
		TakeTime       string `json:"take_time"`
		StartDate      string `json:"start_date"`
		EndDate        string `json:"end_date"`
		Note           string `json:"note"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	startDate, err := parseDate(body.StartDate)
	if err != nil {
		h.appError(ctx, err)
		return
	}
	endDate, err := parseDate(body.EndDate)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	med := &ds.MedicationRecord{
		UserID:         currentUserID(ctx),
		MedicationName: body.MedicationName,
		Dosage:         body.Dosage,
		Method:         body.Method,
		Frequency:      body.Frequency,
		TakeTime:       body.TakeTime,
		StartDate:      dateOrToday(startDate),
		EndDate:        endDate,
		Active:         true,
		Note:           body.Note,
	}
	if err := h.Repository.CreateMedication(med); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "medication added", med)
}

// ApiListMedications lists every medication of the caller, newest-first.
// @Summary List medications
// @Tags medications
// @Security BearerAuth
// @Router /api/medications [get]
func (h *Handler) ApiListMedications(ctx *gin.Context) {
	list, err := h.Repository.ListMedications(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiActiveMedications lists only the medications still being taken.
// @Summary List active medications
// @Tags medications
// @Security BearerAuth
// @Router /api/medications/active [get]
func (h *Handler) ApiActiveMedications(ctx *gin.Context) {
	list, err := h.Repository.ListActiveMedications(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiUpdateMedication partially updates a medication.
// @Summary Update a medication
// @Tags medications
// @Security BearerAuth
// @Router /api/medications/{id} [put]
func (h *Handler) ApiUpdateMedication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	med, err := h.ownedMedication(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	type requestBody struct {
		MedicationName *string `json:"medication_name"`
		Dosage         *string `json:"dosage"`
		Method         *string `json:"method"`
		Frequency      *string `json:"frequency"`
		TakeTime       *string `json:"take_time"`
		StartDate      *string `json:"start_date"`
		EndDate        *string `json:"end_date"`
		Active         *bool   `json:"active"`
		Note           *string `json:"note"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if body.MedicationName != nil {
		med.MedicationName = *body.MedicationName
	}
	if body.Dosage != nil {
		med.Dosage = *body.Dosage
	}
	if body.Method != nil {
		med.Method = *body.Method
	}
	if body.Frequency != nil {
		med.Frequency = *body.Frequency
	}
	if body.TakeTime != nil {
		med.TakeTime = *body.TakeTime
	}
	if body.StartDate != nil {
		d, err := parseDate(*body.StartDate)
		if err != nil {
			h.appError(ctx, err)
			return
		}
		if d != nil {
			med.StartDate = *d
		}
	}
	if body.EndDate != nil {
		d, err := parseDate(*body.EndDate)
		if err != nil {
			h.appError(ctx, err)
			return
		}
		med.EndDate = d
	}
	if body.Active != nil {
		med.Active = *body.Active
	}
	if body.Note != nil {
		med.Note = *body.Note
	}

	if err := h.Repository.SaveMedication(med); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "medication updated", med)
}

// ApiStopMedication marks a medication as no longer taken. Deactivation and
// the end date are set together; the record itself stays.
// @Summary Stop a medication
// @Tags medications
// @Security BearerAuth
// @Router /api/medications/{id}/stop [patch]
func (h *Handler) ApiStopMedication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	med, err := h.ownedMedication(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	today := time.Now()
	med.Active = false
	med.EndDate = &today
	if err := h.Repository.SaveMedication(med); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "medication stopped", med)
}

// ApiDeleteMedication removes the record entirely.
// @Summary Delete a medication
// @Tags medications
// @Security BearerAuth
// @Router /api/medications/{id} [delete]
func (h *Handler) ApiDeleteMedication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if _, err := h.ownedMedication(ctx, id); err != nil {
		h.appError(ctx, err)
		return
	}

	if err := h.Repository.DeleteMedication(id); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonMessage(ctx, "medication deleted", nil)
}
