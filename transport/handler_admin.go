package transport

import (
	stderrors "errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	utilsContext "github.com/muhammadheryan/vastu-shakti/utils/context"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
)

// extensions accepted for featured images, keyed by sniffed content type.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Dashboard handler
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Failure 401 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /api/admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.AdminApp.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.DashboardResponse{Stats: *stats})
}

// AdminListConsultations handler
// @Summary List consultations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} model.ConsultationListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/admin/consultations [get]
func (s *RestHandler) AdminListConsultations(w http.ResponseWriter, r *http.Request) {
	res, err := s.ConsultationApp.ListAll(r.Context(), &model.ConsultationFilter{
		Status:  constant.ConsultationStatus(strings.TrimSpace(r.URL.Query().Get("status"))),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUpdateConsultationStatus handler
// @Summary Update consultation status
// @Description Any transition between known statuses is accepted
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Param request body model.UpdateConsultationStatusRequest true "Status"
// @Success 200 {object} model.ConsultationResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/consultations/{id}/status [put]
func (s *RestHandler) AdminUpdateConsultationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateConsultationStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	consultation, err := s.ConsultationApp.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ConsultationResponse{
		Message:      "Consultation status updated successfully",
		Consultation: consultation,
	})
}

// AdminListContacts handler
// @Summary List enquiries
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "new, in_progress, resolved or closed"
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} model.ContactListResponse
// @Router /api/admin/contacts [get]
func (s *RestHandler) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ContactApp.ListContacts(r.Context(), &model.ContactFilter{
		Status:  constant.ContactStatus(strings.TrimSpace(r.URL.Query().Get("status"))),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUpdateContactStatus handler
// @Summary Update enquiry status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body model.UpdateContactStatusRequest true "Status"
// @Success 200 {object} model.ContactResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/contacts/{id}/status [put]
func (s *RestHandler) AdminUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateContactStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	contact, err := s.ContactApp.UpdateContactStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ContactResponse{Message: "Contact status updated successfully", Contact: contact})
}

// AdminListFeedback handler
// @Summary List feedback
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param published query bool false "Filter by published flag"
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} model.FeedbackListResponse
// @Router /api/admin/feedback [get]
func (s *RestHandler) AdminListFeedback(w http.ResponseWriter, r *http.Request) {
	res, err := s.ContactApp.ListFeedback(r.Context(), &model.FeedbackFilter{
		Published: queryBool(r, "published"),
		Page:      queryInt(r, "page"),
		PerPage:   queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminPublishFeedback handler
// @Summary Publish or verify feedback
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param request body model.PublishFeedbackRequest true "Flags"
// @Success 200 {object} model.FeedbackItemResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/feedback/{id}/publish [put]
func (s *RestHandler) AdminPublishFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PublishFeedbackRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	feedback, err := s.ContactApp.PublishFeedback(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.FeedbackItemResponse{Message: "Feedback updated successfully", Feedback: feedback})
}

// AdminCreateBlog handler
// @Summary Create blog post
// @Description The slug is derived from the title. Posts start unpublished.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BlogRequest true "Post"
// @Success 201 {object} model.AdminBlogResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/admin/blogs [post]
func (s *RestHandler) AdminCreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utilsContext.GetIdentity(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BlogRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	blog, err := s.BlogApp.Create(ctx, identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.AdminBlogResponse{Message: "Blog created successfully", Blog: blog})
}

// AdminUpdateBlog handler
// @Summary Update blog post
// @Description Changing the title regenerates the slug
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body model.BlogRequest true "Post"
// @Success 200 {object} model.AdminBlogResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/admin/blogs/{id} [put]
func (s *RestHandler) AdminUpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.BlogRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	blog, err := s.BlogApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.AdminBlogResponse{Message: "Blog updated successfully", Blog: blog})
}

// AdminPublishBlog handler
// @Summary Publish or unpublish blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body model.PublishBlogRequest true "Flag"
// @Success 200 {object} model.AdminBlogResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/admin/blogs/{id}/publish [put]
func (s *RestHandler) AdminPublishBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PublishBlogRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	blog, err := s.BlogApp.SetPublished(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.AdminBlogResponse{Blog: blog})
}

// AdminUpload handler
// @Summary Upload featured image
// @Description JPEG, PNG, GIF or WebP up to MAX_FILE_SIZE bytes. Served back under /uploads/.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image"
// @Success 201 {object} model.UploadResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 413 {object} transport.ErrorResponse
// @Router /api/admin/uploads [post]
func (s *RestHandler) AdminUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	// multipart framing needs some room over the file itself
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, errors.SetCustomError(constant.ErrPayloadTooLarge))
			return
		}
		writeError(w, errors.SetValidationError([]errors.FieldError{{Field: "image", Message: "image file is required"}}))
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		writeError(w, errors.SetCustomError(constant.ErrPayloadTooLarge))
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !stderrors.Is(err, io.ErrUnexpectedEOF) {
		writeError(w, errors.SetValidationError([]errors.FieldError{{Field: "image", Message: "image file is empty"}}))
		return
	}
	ext, ok := imageExtensions[http.DetectContentType(sniff[:n])]
	if !ok {
		writeError(w, errors.SetValidationError([]errors.FieldError{{Field: "image", Message: "image must be jpeg, png, gif or webp"}}))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		logger.Error("[AdminUpload] err seek upload", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		logger.Error("[AdminUpload] err create upload dir", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	filename := uuid.NewString() + ext
	written, err := saveUpload(filepath.Join(s.cfg.Upload.Dir, filename), file)
	if err != nil {
		logger.Error("[AdminUpload] err save file", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeCreated(w, model.UploadResponse{
		Message:  "File uploaded successfully",
		URL:      "/uploads/" + filename,
		Filename: filename,
		Size:     written,
	})
}

// saveUpload writes src to path, leaving nothing behind when the write fails.
func saveUpload(path string, src io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return written, nil
}
