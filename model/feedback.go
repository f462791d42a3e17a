package model

import (
	"strings"
	"time"
)

type FeedbackEntity struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Rating      int       `db:"rating"`
	Comments    string    `db:"comments"`
	Service     string    `db:"service"`
	IsPublished bool      `db:"is_published"`
	IsVerified  bool      `db:"is_verified"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type FeedbackFilter struct {
	Published *bool
	Page      int
	PerPage   int
}

// FeedbackRequest accepts "message" as an alias of "comments".
type FeedbackRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments" validate:"required,min=5"`
	Message  string `json:"message"`
	Service  string `json:"service" validate:"max=100"`
}

func (r *FeedbackRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Comments = strings.TrimSpace(r.Comments)
	if r.Comments == "" {
		r.Comments = strings.TrimSpace(r.Message)
	}
	r.Service = strings.TrimSpace(r.Service)
}

type FeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID uint64 `json:"feedbackId"`
}

type PublishFeedbackRequest struct {
	IsPublished *bool `json:"isPublished"`
	IsVerified  *bool `json:"isVerified"`
}

type Feedback struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments"`
	Service     string    `json:"service,omitempty"`
	IsPublished bool      `json:"isPublished"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewFeedback(e *FeedbackEntity) *Feedback {
	return &Feedback{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Rating:      e.Rating,
		Comments:    e.Comments,
		Service:     e.Service,
		IsPublished: e.IsPublished,
		IsVerified:  e.IsVerified,
		CreatedAt:   e.CreatedAt,
	}
}

// PublicFeedback hides the submitter email from the public testimonial listing.
func NewPublicFeedback(e *FeedbackEntity) *Feedback {
	f := NewFeedback(e)
	f.Email = ""
	return f
}

type FeedbackItemResponse struct {
	Message  string    `json:"message,omitempty"`
	Feedback *Feedback `json:"feedback"`
}

type FeedbackListResponse struct {
	Feedback   []*Feedback `json:"feedback"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
