package uploads

import (
	"context"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/dto"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service/uploadservice"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=uploads.go -destination=mock_uploads.go -package=uploads

const (
	filesField = "files"
	urlsField  = "urls"

	memoryLimit = 8 << 20
)

type Service interface {
	CreateUploads(ctx context.Context, userID int, files []uploadservice.File, urls []string) ([]domain.Upload, error)
	ListUploads(ctx context.Context, userID int) ([]domain.Upload, error)
}

type UploadsHandler struct {
	uploadService Service
	maxBytes      int64
}

func New(uploadService Service, maxBytes int64) *UploadsHandler {
	return &UploadsHandler{
		uploadService: uploadService,
		maxBytes:      maxBytes,
	}
}

// CreateUploads godoc
//
//	@Summary		Upload designs
//	@Description	Upload design images and/or design URLs for analysis. Two or more items form one batch and get a comparative analysis.
//	@Tags			Uploads
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			files	formData	file	false	"Design image (png, jpeg, webp, gif); repeatable"
//	@Param			urls	formData	string	false	"Design URL; repeatable"
//	@Success		202		{array}		dto.UploadResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid multipart form"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		413		{object}	utils.Response	"Upload too large"
//	@Failure		422		{object}	utils.Response	"Nothing to upload or unsupported input"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/uploads [post]
func (h *UploadsHandler) CreateUploads(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			zap.L().Warn("failed to remove multipart temp files", zap.Error(err))
		}
	}()

	headers := r.MultipartForm.File[filesField]
	files := make([]uploadservice.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		defer f.Close()
		files = append(files, uploadservice.File{
			Name:        fh.Filename,
			ContentType: contentType(fh),
			Size:        fh.Size,
			Content:     f,
		})
	}

	var urls []string
	for _, u := range r.MultipartForm.Value[urlsField] {
		if strings.TrimSpace(u) != "" {
			urls = append(urls, u)
		}
	}

	uploads, err := h.uploadService.CreateUploads(r.Context(), userID, files, urls)
	if err != nil {
		switch {
		case errors.Is(err, uploadservice.ErrNoUploads),
			errors.Is(err, uploadservice.ErrUnsupportedType),
			errors.Is(err, uploadservice.ErrInvalidURL):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toUploadDTOs(uploads))
}

// GetUploads godoc
//
//	@Summary		List uploads
//	@Description	Uploads of the authenticated user with their analysis status, newest first.
//	@Tags			Uploads
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UploadResponseDTO
//	@Success		204	{object}	utils.Response	"No uploads"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/uploads [get]
func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	uploads, err := h.uploadService.ListUploads(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch uploads")
		return
	}
	if len(uploads) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUploadDTOs(uploads))
}

// contentType trusts the part header unless it is missing or generic, then
// falls back to the file extension.
func contentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			return mt
		}
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename))); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil {
			return mt
		}
	}
	return "application/octet-stream"
}

func toUploadDTOs(uploads []domain.Upload) []dto.UploadResponseDTO {
	response := make([]dto.UploadResponseDTO, len(uploads))
	for i, u := range uploads {
		response[i] = dto.UploadResponseDTO{
			ID:          u.ID,
			BatchID:     u.BatchID,
			FileName:    u.FileName,
			FileURL:     u.FileURL,
			SourceURL:   u.SourceURL,
			ContentType: u.ContentType,
			Status:      string(u.Status),
			CreatedAt:   u.CreatedAt,
		}
	}
	return response
}
