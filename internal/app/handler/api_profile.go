package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ApiGetProfile returns the caller's profile; an empty one if never filled in.
// @Summary Get user profile
// @Tags profile
// @Security BearerAuth
// @Router /api/profile [get]
func (h *Handler) ApiGetProfile(ctx *gin.Context) {
	profile, err := h.Repository.GetProfile(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if profile == nil {
		profile = &ds.UserProfile{UserID: currentUserID(ctx)}
	}
	jsonResponse(ctx, profile)
}

// ApiUpdateProfile partially updates the profile, creating the row if missing.
// @Summary Update user profile
// @Tags profile
// @Security BearerAuth
// @Router /api/profile [put]
func (h *Handler) ApiUpdateProfile(ctx *gin.Context) {
	type requestBody struct {
		RealName         *string  `json:"real_name"`
		Gender           *string  `json:"gender"`
		BirthDate        *string  `json:"birth_date"`
		Phone            *string  `json:"phone"`
		Address          *string  `json:"address"`
		Height           *float64 `json:"height"`
		Weight           *float64 `json:"weight"`
		BloodType        *string  `json:"blood_type"`
		Allergies        *string  `json:"allergies"`
		MedicalHistory   *string  `json:"medical_history"`
		FamilyHistory    *string  `json:"family_history"`
		EmergencyContact *string  `json:"emergency_contact"`
		EmergencyPhone   *string  `json:"emergency_phone"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	userID := currentUserID(ctx)
	profile, err := h.Repository.GetProfile(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if profile == nil {
		profile = &ds.UserProfile{UserID: userID}
	}

	if body.RealName != nil {
		profile.RealName = *body.RealName
	}
	if body.Gender != nil {
		profile.Gender = *body.Gender
	}
	if body.BirthDate != nil {
		if *body.BirthDate == "" {
			profile.BirthDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *body.BirthDate)
			if err != nil {
				h.errorHandler(ctx, http.StatusBadRequest, err)
				return
			}
			profile.BirthDate = &d
		}
	}
	if body.Phone != nil {
		profile.Phone = *body.Phone
	}
	if body.Address != nil {
		profile.Address = *body.Address
	}
	if body.Height != nil {
		profile.Height = body.Height
	}
	if body.Weight != nil {
		profile.Weight = body.Weight
	}
	if body.BloodType != nil {
		profile.BloodType = *body.BloodType
	}
	if body.Allergies != nil {
		profile.Allergies = *body.Allergies
	}
	if body.MedicalHistory != nil {
		profile.MedicalHistory = *body.MedicalHistory
	}
	if body.FamilyHistory != nil {
		profile.FamilyHistory = *body.FamilyHistory
	}
	if body.EmergencyContact != nil {
		profile.EmergencyContact = *body.EmergencyContact
	}
	if body.EmergencyPhone != nil {
		profile.EmergencyPhone = *body.EmergencyPhone
	}

	if profile.ID == 0 {
		err = h.Repository.CreateProfile(profile)
	} else {
		err = h.Repository.SaveProfile(profile)
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "profile updated", profile)
}

// ApiUploadAvatar replaces the account avatar. The previous blob is removed
// after the new one is stored.
// @Summary Upload an avatar
// @Tags profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Router /api/profile/avatar [post]
func (h *Handler) ApiUploadAvatar(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		h.appError(ctx, apperr.Validation("file is required"))
		return
	}

	userID := currentUserID(ctx)
	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	avatarURL, err := h.Storage.UploadFile(ctx.Request.Context(), file, fmt.Sprintf("avatars/%d", userID))
	if err != nil {
		h.appError(ctx, apperr.Upstream("uploading avatar", err))
		return
	}

	if user.AvatarURL != "" {
		_ = h.Storage.DeleteByURL(ctx.Request.Context(), user.AvatarURL)
	}

	if err := h.Repository.UpdateUser(userID, map[string]interface{}{"avatar_url": avatarURL}); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "avatar updated", gin.H{"avatar_url": avatarURL})
}
