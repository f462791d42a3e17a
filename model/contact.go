package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
)

type ContactEntity struct {
	ID        uint64                 `db:"id"`
	Name      string                 `db:"name"`
	Email     string                 `db:"email"`
	Mobile    string                 `db:"mobile"`
	Subject   string                 `db:"subject"`
	Message   string                 `db:"message"`
	Status    constant.ContactStatus `db:"status"`
	CreatedAt time.Time              `db:"created_at"`
	UpdatedAt time.Time              `db:"updated_at"`
}

type ContactFilter struct {
	Status  constant.ContactStatus
	Page    int
	PerPage int
}

type EnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Mobile  string `json:"mobile" validate:"required,mobile_in,max=20"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

func (r *EnquiryRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

type EnquiryResponse struct {
	Message   string `json:"message"`
	EnquiryID uint64 `json:"enquiryId"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress resolved closed"`
}

type Contact struct {
	ID        uint64                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Mobile    string                 `json:"mobile"`
	Subject   string                 `json:"subject"`
	Message   string                 `json:"message"`
	Status    constant.ContactStatus `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func NewContact(e *ContactEntity) *Contact {
	return &Contact{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Mobile:    e.Mobile,
		Subject:   e.Subject,
		Message:   e.Message,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type ContactResponse struct {
	Message string   `json:"message,omitempty"`
	Contact *Contact `json:"contact"`
}

type ContactListResponse struct {
	Contacts   []*Contact `json:"contacts"`
	Pagination Pagination `json:"pagination"`
}
