package transport

import (
	"net/http"

	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	utilsContext "github.com/muhammadheryan/vastu-shakti/utils/context"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
)

// BookConsultation handler
// @Summary Book consultation
// @Description Public booking form. Every invalid field is reported.
// @Tags Consultations
// @Accept json
// @Produce json
// @Param request body model.BookConsultationRequest true "Booking"
// @Success 201 {object} model.ConsultationResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/consultations/book [post]
func (s *RestHandler) BookConsultation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BookConsultationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	consultation, err := s.ConsultationApp.Book(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.ConsultationResponse{
		Message:      "Consultation booked successfully",
		Consultation: consultation,
	})
}

// MyConsultations handler
// @Summary My consultations
// @Description Consultations booked with the caller's email, newest first
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size (max 20)"
// @Success 200 {object} model.ConsultationListResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /api/consultations/my-consultations [get]
func (s *RestHandler) MyConsultations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utilsContext.GetIdentity(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ConsultationApp.ListMine(ctx, identity, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetConsultation handler
// @Summary Consultation detail
// @Description Visible to the booking owner and admins
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Success 200 {object} model.ConsultationResponse
// @Failure 403 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/consultations/{id} [get]
func (s *RestHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utilsContext.GetIdentity(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	consultation, err := s.ConsultationApp.GetByID(ctx, identity, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ConsultationResponse{Consultation: consultation})
}
