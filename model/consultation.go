package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

type ConsultationEntity struct {
	ID               uint64                      `db:"id"`
	UserID           *uint64                     `db:"user_id"`
	Name             string                      `db:"name"`
	Email            string                      `db:"email"`
	Mobile           string                      `db:"mobile"`
	State            string                      `db:"state"`
	Occupation       string                      `db:"occupation"`
	PreferredDate    time.Time                   `db:"preferred_date"`
	PreferredTime    string                      `db:"preferred_time"`
	Message          string                      `db:"message"`
	ConsultationType string                      `db:"consultation_type"`
	Status           constant.ConsultationStatus `db:"status"`
	AssignedExpertID *uint64                     `db:"assigned_expert_id"`
	Notes            *string                     `db:"notes"`
	FollowUpDate     *time.Time                  `db:"follow_up_date"`
	IsPaid           bool                        `db:"is_paid"`
	PaymentAmount    float64                     `db:"payment_amount"`
	CreatedAt        time.Time                   `db:"created_at"`
	UpdatedAt        time.Time                   `db:"updated_at"`
}

type ConsultationFilter struct {
	Email   string
	Status  constant.ConsultationStatus
	Page    int
	PerPage int
}

// BookConsultationRequest is the public booking form. Timestamps are always set
// server-side, so none are accepted here.
type BookConsultationRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Mobile           string `json:"mobile" validate:"required,mobile_in,max=20"`
	State            string `json:"state" validate:"required,max=100"`
	Occupation       string `json:"occupation" validate:"required,max=100"`
	PreferredDate    string `json:"preferredDate" validate:"required,iso8601"`
	PreferredTime    string `json:"preferredTime" validate:"required,max=50"`
	Message          string `json:"message"`
	ConsultationType string `json:"consultationType" validate:"required,oneof=house office career wealth health marriage education relationship"`
}

func (r *BookConsultationRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.State = strings.TrimSpace(r.State)
	r.Occupation = strings.TrimSpace(r.Occupation)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.PreferredTime = strings.TrimSpace(r.PreferredTime)
	r.Message = strings.TrimSpace(r.Message)
}

type UpdateConsultationStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  *string `json:"notes"`
}

type Consultation struct {
	ID               uint64                      `json:"id"`
	Name             string                      `json:"name"`
	Email            string                      `json:"email"`
	Mobile           string                      `json:"mobile"`
	State            string                      `json:"state"`
	Occupation       string                      `json:"occupation"`
	PreferredDate    time.Time                   `json:"preferredDate"`
	PreferredTime    string                      `json:"preferredTime"`
	ConsultationType string                      `json:"consultationType"`
	Message          string                      `json:"message"`
	Status           constant.ConsultationStatus `json:"status"`
	Notes            *string                     `json:"notes,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

func NewConsultation(e *ConsultationEntity) *Consultation {
	return &Consultation{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Mobile:           e.Mobile,
		State:            e.State,
		Occupation:       e.Occupation,
		PreferredDate:    e.PreferredDate,
		PreferredTime:    e.PreferredTime,
		ConsultationType: e.ConsultationType,
		Message:          e.Message,
		Status:           e.Status,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

type ConsultationResponse struct {
	Message      string        `json:"message,omitempty"`
	Consultation *Consultation `json:"consultation"`
}

type ConsultationListResponse struct {
	Consultations []*Consultation `json:"consultations"`
	Pagination    Pagination      `json:"pagination"`
}
