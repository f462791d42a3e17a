package consultation

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/application/notification"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	consultationrepo "github.com/muhammadheryan/vastu-shakti/repository/consultation"
	userrepo "github.com/muhammadheryan/vastu-shakti/repository/user"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	validatorx "github.com/muhammadheryan/vastu-shakti/utils/validator"
	"go.uber.org/zap"
)

type ConsultationApp interface {
	Book(ctx context.Context, req *model.BookConsultationRequest) (*model.Consultation, error)
	ListMine(ctx context.Context, identity *model.Identity, page int, perPage int) (*model.ConsultationListResponse, error)
	GetByID(ctx context.Context, identity *model.Identity, id uint64) (*model.Consultation, error)
	ListAll(ctx context.Context, filter *model.ConsultationFilter) (*model.ConsultationListResponse, error)
	UpdateStatus(ctx context.Context, id uint64, req *model.UpdateConsultationStatusRequest) (*model.Consultation, error)
}

type ConsultationAppImpl struct {
	consultationRepo consultationrepo.ConsultationRepository
	userRepo         userrepo.UserRepository
	dispatcher       notification.Dispatcher
}

func NewConsultationApp(consultationRepo consultationrepo.ConsultationRepository, userRepo userrepo.UserRepository, dispatcher notification.Dispatcher) ConsultationApp {
	return &ConsultationAppImpl{
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
		dispatcher:       dispatcher,
	}
}

func (s *ConsultationAppImpl) Book(ctx context.Context, req *model.BookConsultationRequest) (*model.Consultation, error) {
	preferredDate, err := validatorx.ParseISO8601(req.PreferredDate)
	if err != nil {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "preferredDate", Message: "preferredDate must be a valid ISO 8601 date"}})
	}

	now := time.Now()
	entity := &model.ConsultationEntity{
		Name:             req.Name,
		Email:            req.Email,
		Mobile:           req.Mobile,
		State:            req.State,
		Occupation:       req.Occupation,
		PreferredDate:    preferredDate,
		PreferredTime:    req.PreferredTime,
		Message:          req.Message,
		ConsultationType: req.ConsultationType,
		Status:           constant.ConsultationStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// link the booking to a registered account when one exists, without failing the booking
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Warn("[Book] err userRepo.Get", zap.String("error", err.Error()))
	} else if user != nil {
		entity.UserID = &user.ID
	}

	entity, err = s.consultationRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Book] err consultationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := model.NewConsultation(entity)
	metrics.RecordConsultationBooked(entity.ConsultationType)
	s.dispatcher.Dispatch(&model.Notification{
		Kind:         constant.NotificationConsultation,
		Consultation: result,
		CreatedAt:    now,
	})

	logger.Info("[Book] consultation booked", zap.Uint64("consultation_id", entity.ID), zap.String("type", entity.ConsultationType))

	return result, nil
}

func (s *ConsultationAppImpl) ListMine(ctx context.Context, identity *model.Identity, page int, perPage int) (*model.ConsultationListResponse, error) {
	page, perPage = model.NormalizePage(page, perPage, constant.ConsultationPageSizeDefault, constant.MyConsultationsPageSizeMax)
	return s.list(ctx, "ListMine", &model.ConsultationFilter{
		Email:   identity.Email,
		Page:    page,
		PerPage: perPage,
	})
}

func (s *ConsultationAppImpl) GetByID(ctx context.Context, identity *model.Identity, id uint64) (*model.Consultation, error) {
	entity, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err consultationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if !identity.IsAdmin() && !strings.EqualFold(entity.Email, identity.Email) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	return model.NewConsultation(entity), nil
}

func (s *ConsultationAppImpl) ListAll(ctx context.Context, filter *model.ConsultationFilter) (*model.ConsultationListResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Message: "status must be one of [pending confirmed completed cancelled]"}})
	}
	page, perPage := model.NormalizePage(filter.Page, filter.PerPage, constant.ConsultationPageSizeDefault, constant.AdminPageSizeMax)
	return s.list(ctx, "ListAll", &model.ConsultationFilter{
		Status:  filter.Status,
		Page:    page,
		PerPage: perPage,
	})
}

// UpdateStatus accepts any transition between known statuses.
func (s *ConsultationAppImpl) UpdateStatus(ctx context.Context, id uint64, req *model.UpdateConsultationStatusRequest) (*model.Consultation, error) {
	status := constant.ConsultationStatus(req.Status)
	if !status.IsValid() {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "status", Message: "status must be one of [pending confirmed completed cancelled]"}})
	}

	entity, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateStatus] err consultationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity.Status = status
	if req.Notes != nil {
		entity.Notes = req.Notes
	}
	entity.UpdatedAt = time.Now()

	if err := s.consultationRepo.UpdateStatus(ctx, entity); err != nil {
		logger.Error("[UpdateStatus] err consultationRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewConsultation(entity), nil
}

func (s *ConsultationAppImpl) list(ctx context.Context, fn string, filter *model.ConsultationFilter) (*model.ConsultationListResponse, error) {
	entities, total, err := s.consultationRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+fn+"] err consultationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]*model.Consultation, 0, len(entities))
	for _, e := range entities {
		items = append(items, model.NewConsultation(e))
	}

	return &model.ConsultationListResponse{
		Consultations: items,
		Pagination:    model.NewPagination(filter.Page, filter.PerPage, total),
	}, nil
}
