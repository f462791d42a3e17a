package transport

import (
	"net/http"

	"github.com/muhammadheryan/vastu-shakti/model"
)

// SubmitEnquiry handler
// @Summary Submit enquiry
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body model.EnquiryRequest true "Enquiry"
// @Success 201 {object} model.EnquiryResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/contact/enquiry [post]
// @Router /api/contact/inquiry [post]
func (s *RestHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.EnquiryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.SubmitEnquiry(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// SubmitFeedback handler
// @Summary Submit feedback
// @Description Stored unpublished until an admin publishes it. "message" is accepted for "comments".
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body model.FeedbackRequest true "Feedback"
// @Success 201 {object} model.FeedbackResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/contact/feedback [post]
func (s *RestHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.FeedbackRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.SubmitFeedback(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// PublishedFeedback handler
// @Summary Published feedback
// @Description Latest published testimonials
// @Tags Contact
// @Produce json
// @Success 200 {object} model.FeedbackListResponse
// @Router /api/contact/feedback [get]
func (s *RestHandler) PublishedFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := s.ContactApp.ListPublishedFeedback(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.FeedbackListResponse{Feedback: feedback})
}
