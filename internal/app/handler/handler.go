package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/lucian886/healthManagement/internal/app/config"
	"github.com/lucian886/healthManagement/internal/app/middleware"
	"github.com/lucian886/healthManagement/internal/app/pkg/ai"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"
	"github.com/lucian886/healthManagement/internal/app/pkg/auth"
	"github.com/lucian886/healthManagement/internal/app/pkg/storage"
	"github.com/lucian886/healthManagement/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
	Storage        *storage.MinIO
	AI             ai.Client
}

func NewHandler(r *repository.Repository, cfg *config.Config, jwtSvc *auth.JWTService,
	sessionSvc *auth.SessionService, store *storage.MinIO, aiClient ai.Client) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
		Storage:        store,
		AI:             aiClient,
	}
}

// RegisterHandler wires up all routes. Everything except register/login sits
// behind the auth middleware.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}

	api := router.Group("/api")

	api.POST("/auth/register", h.ApiRegister)
	api.POST("/auth/login", h.ApiLogin)

	authed := api.Group("", middleware.AuthMiddleware(authSvc))

	authed.POST("/auth/logout", h.ApiLogout)

	authed.GET("/profile", h.ApiGetProfile)
	authed.PUT("/profile", h.ApiUpdateProfile)
	authed.POST("/profile/avatar", h.ApiUploadAvatar)

	authed.POST("/health-data", h.ApiRecordHealthData)
	authed.GET("/health-data/latest", h.ApiLatestHealthData)
	authed.GET("/health-data/trend/:dataType", h.ApiHealthDataTrend)
	authed.GET("/health-data/daily", h.ApiDailyHealthData)
	authed.GET("/health-data/history/:dataType", h.ApiHealthDataHistory)
	authed.DELETE("/health-data/:id", h.ApiDeleteHealthData)

	authed.POST("/life-records", h.ApiAddLifeRecord)
	authed.GET("/life-records/daily", h.ApiDailyLifeRecords)
	authed.GET("/life-records/type/:recordType", h.ApiLifeRecordsByType)
	authed.GET("/life-records/recent/:recordType", h.ApiRecentLifeRecords)
	authed.DELETE("/life-records/:id", h.ApiDeleteLifeRecord)

	authed.GET("/records", h.ApiListRecords)
	authed.GET("/records/:id", h.ApiGetRecord)
	authed.POST("/records", h.ApiCreateRecord)
	authed.POST("/records/upload", h.ApiUploadRecord)
	authed.POST("/records/upload-batch", h.ApiUploadBatchRecords)
	authed.PUT("/records/:id", h.ApiUpdateRecord)
	authed.DELETE("/records/:id", h.ApiDeleteRecord)
	authed.GET("/records/:id/images", h.ApiListRecordImages)
	authed.POST("/records/:id/images", h.ApiAddRecordImages)
	authed.DELETE("/records/:id/images/:imageId", h.ApiDeleteRecordImage)

	authed.POST("/medications", h.ApiAddMedication)
	authed.GET("/medications", h.ApiListMedications)
	authed.GET("/medications/active", h.ApiActiveMedications)
	authed.PUT("/medications/:id", h.ApiUpdateMedication)
	authed.PATCH("/medications/:id/stop", h.ApiStopMedication)
	authed.DELETE("/medications/:id", h.ApiDeleteMedication)

	authed.POST("/reminders", h.ApiCreateReminder)
	authed.GET("/reminders", h.ApiListReminders)
	authed.GET("/reminders/active", h.ApiActiveReminders)
	authed.PUT("/reminders/:id", h.ApiUpdateReminder)
	authed.PATCH("/reminders/:id/toggle", h.ApiToggleReminder)
	authed.DELETE("/reminders/:id", h.ApiDeleteReminder)

	authed.POST("/chat", h.ApiChat)
	authed.POST("/chat/analyze-image/:recordId", h.ApiAnalyzeRecordImage)
	authed.GET("/chat/history/:sessionId", h.ApiChatHistory)
	authed.GET("/chat/sessions", h.ApiListSessions)
	authed.DELETE("/chat/sessions/:sessionId", h.ApiDeleteSession)
}

// jsonResponse writes the success envelope shared by every endpoint.
func jsonResponse(ctx *gin.Context, data interface{}) {
	ctx.JSON(200, gin.H{"success": true, "message": "ok", "data": data})
}

func jsonMessage(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(200, gin.H{"success": true, "message": message, "data": data})
}

// errorHandler writes an error with an explicit status, for binding and
// unexpected failures.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// appError maps a coded error from pkg/apperr onto its HTTP status.
func (h *Handler) appError(ctx *gin.Context, err error) {
	logrus.Error(err.Error())
	ctx.JSON(apperr.HTTPStatus(err), gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func currentUserID(ctx *gin.Context) uint {
	id, _ := middleware.GetCurrentUserID(ctx)
	return id
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(id), nil
}

// parseDate parses a "2006-01-02" date, nil for empty input.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.Validation("invalid date, expected YYYY-MM-DD")
	}
	return &t, nil
}

// dateOrToday defaults an unspecified record date to today.
func dateOrToday(d *time.Time) time.Time {
	if d != nil {
		return *d
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
