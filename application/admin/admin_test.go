package admin_test

import (
	"context"
	"errors"
	"testing"

	appadmin "github.com/muhammadheryan/vastu-shakti/application/admin"
	"github.com/muhammadheryan/vastu-shakti/constant"
	consultationmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/consultation"
	contactmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/contact"
	feedbackmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/feedback"
	usermocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/user"
	"github.com/muhammadheryan/vastu-shakti/model"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestAdminApp_Dashboard(t *testing.T) {
	type fields struct {
		consultationRepo *consultationmocks.ConsultationRepository
		userRepo         *usermocks.UserRepository
		contactRepo      *contactmocks.ContactRepository
		feedbackRepo     *feedbackmocks.FeedbackRepository
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.DashboardStats
		wantErr  bool
	}{
		{
			name: "success: all counters",
			mockCall: func(f fields) {
				f.consultationRepo.On("Count", mock.Anything, constant.ConsultationStatus("")).Return(int64(12), nil).Once()
				f.consultationRepo.On("Count", mock.Anything, constant.ConsultationStatusPending).Return(int64(5), nil).Once()
				f.consultationRepo.On("Count", mock.Anything, constant.ConsultationStatusCompleted).Return(int64(4), nil).Once()
				f.userRepo.On("Count", mock.Anything).Return(int64(30), nil).Once()
				f.contactRepo.On("Count", mock.Anything, constant.ContactStatus("")).Return(int64(9), nil).Once()
				f.contactRepo.On("Count", mock.Anything, constant.ContactStatusNew).Return(int64(2), nil).Once()
				f.feedbackRepo.On("Count", mock.Anything, (*bool)(nil)).Return(int64(7), nil).Once()
				f.feedbackRepo.
					On("Count", mock.Anything, mock.MatchedBy(func(p *bool) bool { return p != nil && !*p })).
					Return(int64(3), nil).
					Once()
			},
			want: &model.DashboardStats{
				TotalConsultations:     12,
				PendingConsultations:   5,
				CompletedConsultations: 4,
				TotalUsers:             30,
				TotalEnquiries:         9,
				NewEnquiries:           2,
				TotalFeedback:          7,
				UnpublishedFeedback:    3,
			},
		},
		{
			name: "error: first count fails",
			mockCall: func(f fields) {
				f.consultationRepo.On("Count", mock.Anything, constant.ConsultationStatus("")).Return(int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				consultationRepo: consultationmocks.NewConsultationRepository(t),
				userRepo:         usermocks.NewUserRepository(t),
				contactRepo:      contactmocks.NewContactRepository(t),
				feedbackRepo:     feedbackmocks.NewFeedbackRepository(t),
			}
			tt.mockCall(f)

			got, err := appadmin.NewAdminApp(f.consultationRepo, f.userRepo, f.contactRepo, f.feedbackRepo).Dashboard(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dashboard() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.Type() != constant.ErrInternal {
					t.Fatalf("Dashboard() error = %v, want ErrInternal", err)
				}
				return
			}
			if *got != *tt.want {
				t.Fatalf("Dashboard() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
