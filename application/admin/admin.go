package admin

import (
	"context"

	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	consultationrepo "github.com/muhammadheryan/vastu-shakti/repository/consultation"
	contactrepo "github.com/muhammadheryan/vastu-shakti/repository/contact"
	feedbackrepo "github.com/muhammadheryan/vastu-shakti/repository/feedback"
	userrepo "github.com/muhammadheryan/vastu-shakti/repository/user"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
)

type AdminApp interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

type AdminAppImpl struct {
	consultationRepo consultationrepo.ConsultationRepository
	userRepo         userrepo.UserRepository
	contactRepo      contactrepo.ContactRepository
	feedbackRepo     feedbackrepo.FeedbackRepository
}

func NewAdminApp(
	consultationRepo consultationrepo.ConsultationRepository,
	userRepo userrepo.UserRepository,
	contactRepo contactrepo.ContactRepository,
	feedbackRepo feedbackrepo.FeedbackRepository,
) AdminApp {
	return &AdminAppImpl{
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
		contactRepo:      contactRepo,
		feedbackRepo:     feedbackRepo,
	}
}

func (s *AdminAppImpl) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	unpublished := false
	stats := &model.DashboardStats{}

	counts := []struct {
		name  string
		dst   *int64
		count func() (int64, error)
	}{
		{"consultations", &stats.TotalConsultations, func() (int64, error) { return s.consultationRepo.Count(ctx, "") }},
		{"pending consultations", &stats.PendingConsultations, func() (int64, error) {
			return s.consultationRepo.Count(ctx, constant.ConsultationStatusPending)
		}},
		{"completed consultations", &stats.CompletedConsultations, func() (int64, error) {
			return s.consultationRepo.Count(ctx, constant.ConsultationStatusCompleted)
		}},
		{"users", &stats.TotalUsers, func() (int64, error) { return s.userRepo.Count(ctx) }},
		{"enquiries", &stats.TotalEnquiries, func() (int64, error) { return s.contactRepo.Count(ctx, "") }},
		{"new enquiries", &stats.NewEnquiries, func() (int64, error) { return s.contactRepo.Count(ctx, constant.ContactStatusNew) }},
		{"feedback", &stats.TotalFeedback, func() (int64, error) { return s.feedbackRepo.Count(ctx, nil) }},
		{"unpublished feedback", &stats.UnpublishedFeedback, func() (int64, error) { return s.feedbackRepo.Count(ctx, &unpublished) }},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			logger.Error("[Dashboard] err count "+c.name, zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		*c.dst = n
	}

	return stats, nil
}
