package contact

import (
	"context"
	"time"

	"github.com/muhammadheryan/vastu-shakti/application/notification"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	contactrepo "github.com/muhammadheryan/vastu-shakti/repository/contact"
	feedbackrepo "github.com/muhammadheryan/vastu-shakti/repository/feedback"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

type ContactApp interface {
	SubmitEnquiry(ctx context.Context, req *model.EnquiryRequest) (*model.EnquiryResponse, error)
	SubmitFeedback(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackResponse, error)
	ListPublishedFeedback(ctx context.Context) ([]*model.Feedback, error)
	ListContacts(ctx context.Context, filter *model.ContactFilter) (*model.ContactListResponse, error)
	UpdateContactStatus(ctx context.Context, id uint64, req *model.UpdateContactStatusRequest) (*model.Contact, error)
	ListFeedback(ctx context.Context, filter *model.FeedbackFilter) (*model.FeedbackListResponse, error)
	PublishFeedback(ctx context.Context, id uint64, req *model.PublishFeedbackRequest) (*model.Feedback, error)
}

type ContactAppImpl struct {
	contactRepo  contactrepo.ContactRepository
	feedbackRepo feedbackrepo.FeedbackRepository
	dispatcher   notification.Dispatcher
}

func NewContactApp(contactRepo contactrepo.ContactRepository, feedbackRepo feedbackrepo.FeedbackRepository, dispatcher notification.Dispatcher) ContactApp {
	return &ContactAppImpl{
		contactRepo:  contactRepo,
		feedbackRepo: feedbackRepo,
		dispatcher:   dispatcher,
	}
}

func (s *ContactAppImpl) SubmitEnquiry(ctx context.Context, req *model.EnquiryRequest) (*model.EnquiryResponse, error) {
	now := time.Now()
	entity, err := s.contactRepo.Create(ctx, &model.ContactEntity{
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    constant.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Error("[SubmitEnquiry] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.RecordEnquiry()
	s.dispatcher.Dispatch(&model.Notification{
		Kind:      constant.NotificationEnquiry,
		Enquiry:   model.NewContact(entity),
		CreatedAt: now,
	})

	return &model.EnquiryResponse{
		Message:   "Enquiry submitted successfully. We will get back to you soon!",
		EnquiryID: entity.ID,
	}, nil
}

func (s *ContactAppImpl) SubmitFeedback(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackResponse, error) {
	now := time.Now()
	entity, err := s.feedbackRepo.Create(ctx, &model.FeedbackEntity{
		Name:        req.Name,
		Email:       req.Email,
		Rating:      req.Rating,
		Comments:    req.Comments,
		Service:     req.Service,
		IsPublished: false,
		IsVerified:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		logger.Error("[SubmitFeedback] err feedbackRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.RecordFeedback(entity.Rating)
	s.dispatcher.Dispatch(&model.Notification{
		Kind:      constant.NotificationFeedback,
		Feedback:  model.NewFeedback(entity),
		CreatedAt: now,
	})

	return &model.FeedbackResponse{
		Message:    "Thank you for your feedback!",
		FeedbackID: entity.ID,
	}, nil
}

func (s *ContactAppImpl) ListPublishedFeedback(ctx context.Context) ([]*model.Feedback, error) {
	published := true
	entities, _, err := s.feedbackRepo.List(ctx, &model.FeedbackFilter{
		Published: &published,
		Page:      1,
		PerPage:   constant.PublishedFeedbackLimit,
	})
	if err != nil {
		logger.Error("[ListPublishedFeedback] err feedbackRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]*model.Feedback, 0, len(entities))
	for _, e := range entities {
		items = append(items, model.NewPublicFeedback(e))
	}
	return items, nil
}

func (s *ContactAppImpl) ListContacts(ctx context.Context, filter *model.ContactFilter) (*model.ContactListResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Message: "status must be one of [new in_progress resolved closed]"}})
	}
	page, perPage := model.NormalizePage(filter.Page, filter.PerPage, constant.ConsultationPageSizeDefault, constant.AdminPageSizeMax)

	entities, total, err := s.contactRepo.List(ctx, &model.ContactFilter{Status: filter.Status, Page: page, PerPage: perPage})
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]*model.Contact, 0, len(entities))
	for _, e := range entities {
		items = append(items, model.NewContact(e))
	}
	return &model.ContactListResponse{
		Contacts:   items,
		Pagination: model.NewPagination(page, perPage, total),
	}, nil
}

func (s *ContactAppImpl) UpdateContactStatus(ctx context.Context, id uint64, req *model.UpdateContactStatusRequest) (*model.Contact, error) {
	status := constant.ContactStatus(req.Status)
	if !status.IsValid() {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Message: "status must be one of [new in_progress resolved closed]"}})
	}

	entity, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateContactStatus] err contactRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity.Status = status
	entity.UpdatedAt = time.Now()
	if err := s.contactRepo.UpdateStatus(ctx, entity); err != nil {
		logger.Error("[UpdateContactStatus] err contactRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewContact(entity), nil
}

func (s *ContactAppImpl) ListFeedback(ctx context.Context, filter *model.FeedbackFilter) (*model.FeedbackListResponse, error) {
	page, perPage := model.NormalizePage(filter.Page, filter.PerPage, constant.ConsultationPageSizeDefault, constant.AdminPageSizeMax)

	entities, total, err := s.feedbackRepo.List(ctx, &model.FeedbackFilter{Published: filter.Published, Page: page, PerPage: perPage})
	if err != nil {
		logger.Error("[ListFeedback] err feedbackRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]*model.Feedback, 0, len(entities))
	for _, e := range entities {
		items = append(items, model.NewFeedback(e))
	}
	pagination := model.NewPagination(page, perPage, total)
	return &model.FeedbackListResponse{
		Feedback:   items,
		Pagination: &pagination,
	}, nil
}

// PublishFeedback applies only the flags present in the request.
func (s *ContactAppImpl) PublishFeedback(ctx context.Context, id uint64, req *model.PublishFeedbackRequest) (*model.Feedback, error) {
	entity, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[PublishFeedback] err feedbackRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.IsPublished != nil {
		entity.IsPublished = *req.IsPublished
	}
	if req.IsVerified != nil {
		entity.IsVerified = *req.IsVerified
	}
	entity.UpdatedAt = time.Now()

	if err := s.feedbackRepo.UpdatePublication(ctx, entity); err != nil {
		logger.Error("[PublishFeedback] err feedbackRepo.UpdatePublication", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewFeedback(entity), nil
}
