package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/lucian886/healthManagement/internal/app/ds"
	"github.com/lucian886/healthManagement/internal/app/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// recordFolder is where a user's record files live in object storage.
func recordFolder(userID uint) string {
	return fmt.Sprintf("medical-records/%d", userID)
}

// ownedRecord loads a medical record and enforces strict owner equality.
func (h *Handler) ownedRecord(ctx *gin.Context, recordID uint) (*ds.MedicalRecord, error) {
	record, err := h.Repository.GetMedicalRecord(recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("medical record not found")
		}
		return nil, apperr.Wrap(err, "loading medical record")
	}
	if record.UserID != currentUserID(ctx) {
		return nil, apperr.Forbidden("no access to this medical record")
	}
	return record, nil
}

// syncPrimaryFile re-derives the record's mirrored file columns from its image
// collection: the image with the lowest sort order, or all-null when empty.
func (h *Handler) syncPrimaryFile(record *ds.MedicalRecord) error {
	images, err := h.Repository.ListRecordImages(record.ID)
	if err != nil {
		return err
	}
	record.SetPrimary(ds.PrimaryImage(images))
	return h.Repository.SaveMedicalRecord(record)
}

// ApiListRecords lists the caller's medical records, newest-first.
// @Summary List medical records
// @Tags records
// @Security BearerAuth
// @Router /api/records [get]
func (h *Handler) ApiListRecords(ctx *gin.Context) {
	list, err := h.Repository.ListMedicalRecords(currentUserID(ctx))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list)
}

// ApiGetRecord returns one record.
// @Summary Get a medical record
// @Tags records
// @Security BearerAuth
// @Router /api/records/{id} [get]
func (h *Handler) ApiGetRecord(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}
	jsonResponse(ctx, record)
}

// ApiCreateRecord creates a record without any file attached.
// @Summary Create a medical record
// @Tags records
// @Security BearerAuth
// @Router /api/records [post]
func (h *Handler) ApiCreateRecord(ctx *gin.Context) {
	type requestBody struct {
		Title       string `json:"title" binding:"required"`
		RecordType  string `json:"record_type"`
		Description string `json:"description"`
		Hospital    string `json:"hospital"`
		Doctor      string `json:"doctor"`
		RecordDate  string `json:"record_date"`
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

	record := &ds.MedicalRecord{
		UserID:      currentUserID(ctx),
		Title:       body.Title,
		RecordType:  body.RecordType,
		Description: body.Description,
		Hospital:    body.Hospital,
		Doctor:      body.Doctor,
		RecordDate:  recordDate,
	}
	if err := h.Repository.CreateMedicalRecord(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "record created", record)
}

// ApiUpdateRecord partially updates the descriptive fields.
// @Summary Update a medical record
// @Tags records
// @Security BearerAuth
// @Router /api/records/{id} [put]
func (h *Handler) ApiUpdateRecord(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	type requestBody struct {
		Title       *string `json:"title"`
		RecordType  *string `json:"record_type"`
		Description *string `json:"description"`
		Hospital    *string `json:"hospital"`
		Doctor      *string `json:"doctor"`
		RecordDate  *string `json:"record_date"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if body.Title != nil {
		record.Title = *body.Title
	}
	if body.RecordType != nil {
		record.RecordType = *body.RecordType
	}
	if body.Description != nil {
		record.Description = *body.Description
	}
	if body.Hospital != nil {
		record.Hospital = *body.Hospital
	}
	if body.Doctor != nil {
		record.Doctor = *body.Doctor
	}
	if body.RecordDate != nil {
		d, err := parseDate(*body.RecordDate)
		if err != nil {
			h.appError(ctx, err)
			return
		}
		record.RecordDate = d
	}

	if err := h.Repository.SaveMedicalRecord(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "record updated", record)
}

// ApiDeleteRecord removes the record, its image rows and every stored blob.
// Blobs go first: image blobs, then the mirrored file if it is distinct
// (legacy rows only), then the database rows.
// @Summary Delete a medical record
// @Tags records
// @Security BearerAuth
// @Router /api/records/{id} [delete]
func (h *Handler) ApiDeleteRecord(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	images, err := h.Repository.ListRecordImages(record.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	mirrorIsImage := false
	for _, img := range images {
		if err := h.Storage.DeleteByURL(ctx.Request.Context(), img.FilePath); err != nil {
			h.appError(ctx, apperr.Upstream("deleting stored file", err))
			return
		}
		if img.FilePath == record.FilePath {
			mirrorIsImage = true
		}
	}
	if record.HasFile() && !mirrorIsImage {
		if err := h.Storage.DeleteByURL(ctx.Request.Context(), record.FilePath); err != nil {
			h.appError(ctx, apperr.Upstream("deleting stored file", err))
			return
		}
	}

	if err := h.Repository.DeleteMedicalRecord(record.ID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "record deleted", nil)
}

// ApiUploadRecord creates a record from multipart fields and attaches one file.
// @Summary Create a medical record with a file
// @Tags records
// @Security BearerAuth
// @Accept multipart/form-data
// @Router /api/records/upload [post]
func (h *Handler) ApiUploadRecord(ctx *gin.Context) {
	title := ctx.PostForm("title")
	if title == "" {
		h.appError(ctx, apperr.Validation("title is required"))
		return
	}

	recordDate, err := parseDate(ctx.PostForm("record_date"))
	if err != nil {
		h.appError(ctx, err)
		return
	}

	record := &ds.MedicalRecord{
		UserID:      currentUserID(ctx),
		Title:       title,
		RecordType:  ctx.PostForm("record_type"),
		Description: ctx.PostForm("description"),
		Hospital:    ctx.PostForm("hospital"),
		Doctor:      ctx.PostForm("doctor"),
		RecordDate:  recordDate,
	}
	if err := h.Repository.CreateMedicalRecord(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err == nil && file != nil {
		if err := h.replaceMainFile(ctx, record, file); err != nil {
			h.appError(ctx, err)
			return
		}
	}

	jsonMessage(ctx, "record uploaded", record)
}

// ApiUploadBatchRecords creates one record per uploaded file; the title comes
// from the file name. Files are committed one by one, a mid-batch failure
// keeps the earlier records.
// @Summary Batch-create medical records from files
// @Tags records
// @Security BearerAuth
// @Accept multipart/form-data
// @Router /api/records/upload-batch [post]
func (h *Handler) ApiUploadBatchRecords(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		h.appError(ctx, apperr.Validation("no files supplied"))
		return
	}

	recordDate, err := parseDate(ctx.PostForm("record_date"))
	if err != nil {
		h.appError(ctx, err)
		return
	}

	results := make([]*ds.MedicalRecord, 0, len(files))
	for _, file := range files {
		title := strings.TrimSuffix(file.Filename, path.Ext(file.Filename))
		if title == "" {
			title = fmt.Sprintf("record-%d", time.Now().UnixMilli())
		}

		record := &ds.MedicalRecord{
			UserID:     currentUserID(ctx),
			Title:      title,
			RecordType: ctx.PostForm("record_type"),
			Hospital:   ctx.PostForm("hospital"),
			Doctor:     ctx.PostForm("doctor"),
			RecordDate: recordDate,
		}
		if err := h.Repository.CreateMedicalRecord(record); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if err := h.replaceMainFile(ctx, record, file); err != nil {
			h.appError(ctx, err)
			return
		}
		results = append(results, record)
	}

	jsonMessage(ctx, fmt.Sprintf("uploaded %d records", len(results)), results)
}

// replaceMainFile uploads a file as the record's main image. If the record
// already has a lowest-sort image that one is replaced (old blob deleted),
// otherwise the file becomes image #0. The mirror is re-derived afterwards so
// it can never drift from the image list.
func (h *Handler) replaceMainFile(ctx *gin.Context, record *ds.MedicalRecord, file *multipart.FileHeader) error {
	fileURL, err := h.Storage.UploadFile(ctx.Request.Context(), file, recordFolder(record.UserID))
	if err != nil {
		return apperr.Upstream("uploading file", err)
	}

	images, err := h.Repository.ListRecordImages(record.ID)
	if err != nil {
		return apperr.Wrap(err, "listing record images")
	}

	if primary := ds.PrimaryImage(images); primary != nil {
		if err := h.Storage.DeleteByURL(ctx.Request.Context(), primary.FilePath); err != nil {
			return apperr.Upstream("deleting previous file", err)
		}
		primary.FilePath = fileURL
		primary.FileName = file.Filename
		primary.FileType = file.Header.Get("Content-Type")
		primary.FileSize = file.Size
		if err := h.Repository.SaveRecordImage(primary); err != nil {
			return apperr.Wrap(err, "saving record image")
		}
	} else {
		img := &ds.MedicalRecordImage{
			RecordID:  record.ID,
			FilePath:  fileURL,
			FileName:  file.Filename,
			FileType:  file.Header.Get("Content-Type"),
			FileSize:  file.Size,
			SortOrder: 0,
		}
		if err := h.Repository.CreateRecordImage(img); err != nil {
			return apperr.Wrap(err, "saving record image")
		}
	}

	return h.syncPrimaryFile(record)
}

// ApiListRecordImages returns the record's images ordered by sort order.
// @Summary List record images
// @Tags records
// @Security BearerAuth
// @Router /api/records/{id}/images [get]
func (h *Handler) ApiListRecordImages(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	if _, err := h.ownedRecord(ctx, id); err != nil {
		h.appError(ctx, err)
		return
	}

	images, err := h.Repository.ListRecordImages(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, images)
}

// ApiAddRecordImages appends uploaded images in input order. Sort orders keep
// counting up from the current image count and are never reused. Not
// transactional across files: a failure keeps the images stored so far.
// @Summary Add images to a record
// @Tags records
// @Security BearerAuth
// @Accept multipart/form-data
// @Router /api/records/{id}/images [post]
func (h *Handler) ApiAddRecordImages(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		h.appError(ctx, apperr.Validation("no files supplied"))
		return
	}

	count, err := h.Repository.CountRecordImages(record.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	sortOrder := int(count)

	for _, file := range files {
		fileURL, err := h.Storage.UploadFile(ctx.Request.Context(), file, recordFolder(record.UserID))
		if err != nil {
			h.appError(ctx, apperr.Upstream("uploading image", err))
			return
		}
		img := &ds.MedicalRecordImage{
			RecordID:  record.ID,
			FilePath:  fileURL,
			FileName:  file.Filename,
			FileType:  file.Header.Get("Content-Type"),
			FileSize:  file.Size,
			SortOrder: sortOrder,
		}
		if err := h.Repository.CreateRecordImage(img); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		sortOrder++
	}

	if err := h.syncPrimaryFile(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, fmt.Sprintf("added %d images", len(files)), record)
}

// ApiDeleteRecordImage removes one image and its blob; the mirror moves to the
// remaining image with the lowest sort order or clears entirely.
// @Summary Delete a record image
// @Tags records
// @Security BearerAuth
// @Router /api/records/{id}/images/{imageId} [delete]
func (h *Handler) ApiDeleteRecordImage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		h.appError(ctx, err)
		return
	}
	record, err := h.ownedRecord(ctx, id)
	if err != nil {
		h.appError(ctx, err)
		return
	}

	imageID, err := parseIDParam(ctx, "imageId")
	if err != nil {
		h.appError(ctx, err)
		return
	}

	image, err := h.Repository.GetRecordImage(imageID)
	if err != nil {
		if isNotFound(err) {
			h.appError(ctx, apperr.NotFound("image not found"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if image.RecordID != record.ID {
		h.appError(ctx, apperr.NotFound("image not found"))
		return
	}

	if err := h.Storage.DeleteByURL(ctx.Request.Context(), image.FilePath); err != nil {
		h.appError(ctx, apperr.Upstream("deleting stored file", err))
		return
	}
	if err := h.Repository.DeleteRecordImage(image.ID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if err := h.syncPrimaryFile(record); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonMessage(ctx, "image deleted", record)
}
