package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/ai"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// chatProfile maps the stored profile onto the assistant's context shape.
// A missing profile yields nil so the field is omitted from the payload.
func chatProfile(profile *ds.UserProfile) *ai.Profile {
	if profile == nil {
		return nil
	}
	p := &ai.Profile{
		RealName:       profile.RealName,
		Gender:         profile.Gender,
		Height:         profile.Height,
		Weight:         profile.Weight,
		BloodType:      profile.BloodType,
		Allergies:      profile.Allergies,
		MedicalHistory: profile.MedicalHistory,
		FamilyHistory:  profile.FamilyHistory,
	}
	if profile.BirthDate != nil {
		p.BirthDate = profile.BirthDate.Format("2006-01-02")
	}
	return p
}

// chatRecords maps medical records onto the assistant's context shape.
func chatRecords(records []ds.MedicalRecord) []ai.RecordContext {
	out := make([]ai.RecordContext, 0, len(records))
	for _, r := range records {
		rc := ai.RecordContext{
			ID:          r.ID,
			Title:       r.Title,
			RecordType:  r.RecordType,
			Description: r.Description,
			Hospital:    r.Hospital,
			Doctor:      r.Doctor,
			FileName:    r.FileName,
			ImageURL:    r.FilePath,
		}
		if r.RecordDate != nil {
			rc.RecordDate = r.RecordDate.Format("2006-01-02")
		}
		out = append(out, rc)
	}
	return out
}

// aiFallback builds the apology reply substituted when an inference call
// fails. The error detail rides along so the user sees why.
func aiFallback(what string, err error) string {
	return fmt.Sprintf("Sorry, %s is temporarily unavailable (%s). Please try again later.", what, err.Error())
}

// ApiChat runs one conversation turn. The user turn is persisted before the
// upstream call; an upstream failure still produces a stored assistant turn
// carrying an apology, so the session history never loses a question.
// @Summary Chat with the health assistant
// @Tags chat
// @Security BearerAuth
// @Router /api/chat [post]
func (h *Handler) ApiChat(ctx *gin.Context) {
	type requestBody struct {
		Message   string `json:"message" binding:"required"`
		SessionID string `json:"session_id"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	userID := currentUserID(ctx)
	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Read before storing the new turn: the outbound payload carries the
	// current message once, in its own field, never duplicated into history.
	history, err := h.Repository.ListSessionHistory(userID, sessionID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	userTurn := &ds.ChatHistory{
		UserID:    userID,
		Role:      ds.RoleUser,
		Content:   body.Message,
		SessionID: sessionID,
	}
	if err := h.Repository.CreateChatTurn(userTurn); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	profile, err := h.Repository.GetProfile(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	records, err := h.Repository.ListMedicalRecords(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	messages := make([]ai.Message, 0, len(history))
	for _, turn := range history {
		messages = append(messages, ai.Message{Role: turn.Role, Content: turn.Content})
	}

	answer, err := h.AI.Chat(ctx.Request.Context(), ai.ChatRequest{
		Message:        body.Message,
		UserProfile:    chatProfile(profile),
		MedicalRecords: chatRecords(records),
		History:        messages,
	})
	if err != nil {
		logrus.WithError(err).Warn("ai chat call failed, answering with a fallback")
		answer = aiFallback("the assistant", err)
	}

	assistantTurn := &ds.ChatHistory{
		UserID:    userID,
		Role:      ds.RoleAssistant,
		Content:   answer,
		SessionID: sessionID,
	}
	if err := h.Repository.CreateChatTurn(assistantTurn); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, assistantTurn)
}

// ApiAnalyzeRecordImage asks the assistant about one record's file. The
// exchange is not persisted; the fresh session id lets the client start a
// conversation from the result if it wants to.
// @Summary Analyze a medical record image
// @Tags chat
// @Security BearerAuth
// @Router /api/chat/analyze-image/{recordId} [post]
func (h *Handler) ApiAnalyzeRecordImage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "recordId")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if !record.HasFile() {
		h.appError(ctx, apperr.Validation("record has no file to analyze"))
		return
	}

	type requestBody struct {
		Message string `json:"message"`
	}
	var body requestBody
	_ = ctx.ShouldBindJSON(&body)
	if body.Message == "" {
		body.Message = "Please analyze this medical record image and explain the findings."
	}

	profile, err := h.Repository.GetProfile(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	answer, err := h.AI.AnalyzeImage(ctx.Request.Context(), ai.ImageRequest{
		Message:     body.Message,
		ImageURL:    record.FilePath,
		UserProfile: chatProfile(profile),
	})
	if err != nil {
		// Degraded but successful, same as the chat path.
		logrus.WithError(err).Warn("ai image analysis failed, answering with a fallback")
		answer = aiFallback("image analysis", err)
	}

	jsonResponse(ctx, &ds.ChatHistory{
		UserID:    currentUserID(ctx),
		Role:      ds.RoleAssistant,
		Content:   answer,
		SessionID: uuid.New().String(),
		CreatedAt: time.Now(),
	})
}

// ApiChatHistory returns every turn of one session, oldest-first.
// @Summary Session history
// @Tags chat
// @Security BearerAuth
// @Router /api/chat/history/{sessionId} [get]
func (h *Handler) ApiChatHistory(ctx *gin.Context) {
	list, err := h.Repository.ListSessionHistory(currentUserID(ctx), ctx.Param("sessionId"))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiListSessions returns the caller's sessions, most recently active first.
// @Summary List chat sessions
// @Tags chat
// @Security BearerAuth
// @Router /api/chat/sessions [get]
func (h *Handler) ApiListSessions(ctx *gin.Context) {
	list, err := h.Repository.ListSessionSummaries(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiDeleteSession drops every turn of one session.
// @Summary Delete a chat session
// @Tags chat
// @Security BearerAuth
// @Router /api/chat/sessions/{sessionId} [delete]
func (h *Handler) ApiDeleteSession(ctx *gin.Context) {
	if err := h.Repository.DeleteSession(currentUserID(ctx), ctx.Param("sessionId")); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonMessage(ctx, "session deleted", nil)
}
