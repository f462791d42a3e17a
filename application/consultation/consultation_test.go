package consultation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appconsultation "github.com/muhammadheryan/vastu-shakti/application/consultation"
	"github.com/muhammadheryan/vastu-shakti/constant"
	notificationmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/notification"
	consultationmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/consultation"
	usermocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/user"
	"github.com/muhammadheryan/vastu-shakti/model"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	consultationRepo *consultationmocks.ConsultationRepository
	userRepo         *usermocks.UserRepository
	dispatcher       *notificationmocks.Dispatcher
}

func newFields(t *testing.T) fields {
	return fields{
		consultationRepo: consultationmocks.NewConsultationRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		dispatcher:       notificationmocks.NewDispatcher(t),
	}
}

func (f fields) app() appconsultation.ConsultationApp {
	return appconsultation.NewConsultationApp(f.consultationRepo, f.userRepo, f.dispatcher)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func bookRequest() *model.BookConsultationRequest {
	return &model.BookConsultationRequest{
		Name:             "Asha Verma",
		Email:            "asha@example.com",
		Mobile:           "9876543210",
		State:            "Delhi",
		Occupation:       "Engineer",
		PreferredDate:    "2026-11-20",
		PreferredTime:    "10:00 AM",
		Message:          "North-facing flat",
		ConsultationType: "house",
	}
}

func TestConsultationApp_Book(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.BookConsultationRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: guest booking is pending and notifies",
			req:  bookRequest(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).
					Return(nil, nil).
					Once()

				f.consultationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.ConsultationEntity) bool {
						return e.Status == constant.ConsultationStatusPending &&
							e.UserID == nil &&
							e.PreferredDate.Equal(time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)) &&
							!e.CreatedAt.IsZero() && e.CreatedAt.Equal(e.UpdatedAt)
					})).
					Return(func(_ context.Context, e *model.ConsultationEntity) (*model.ConsultationEntity, error) {
						e.ID = 42
						return e, nil
					}).
					Once()

				f.dispatcher.
					On("Dispatch", mock.MatchedBy(func(n *model.Notification) bool {
						return n.Kind == constant.NotificationConsultation && n.Consultation.ID == 42
					})).
					Return().
					Once()
			},
		},
		{
			name: "success: registered email links the user",
			req:  bookRequest(),
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).
					Return(&model.UserEntity{ID: 8}, nil).
					Once()
				f.consultationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.ConsultationEntity) bool {
						return e.UserID != nil && *e.UserID == 8
					})).
					Return(&model.ConsultationEntity{ID: 43, Status: constant.ConsultationStatusPending}, nil).
					Once()
				f.dispatcher.On("Dispatch", mock.Anything).Return().Once()
			},
		},
		{
			name: "success: user lookup failure does not block booking",
			req:  bookRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
				f.consultationRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ConsultationEntity")).
					Return(&model.ConsultationEntity{ID: 44}, nil).
					Once()
				f.dispatcher.On("Dispatch", mock.Anything).Return().Once()
			},
		},
		{
			name: "error: unparseable preferred date",
			req: func() *model.BookConsultationRequest {
				r := bookRequest()
				r.PreferredDate = "next tuesday"
				return r
			}(),
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: persistence failure dispatches nothing",
			req:  bookRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.consultationRepo.
					On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("disk full")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Book(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Book() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID == 0 {
				t.Fatalf("Book() = %+v, want persisted record", got)
			}
		})
	}
}

func TestConsultationApp_ListMine(t *testing.T) {
	f := newFields(t)
	identity := &model.Identity{UserID: 1, Email: "asha@example.com", Role: constant.RoleUser}

	f.consultationRepo.
		On("List", mock.Anything, &model.ConsultationFilter{Email: "asha@example.com", Page: 2, PerPage: 20}).
		Return([]*model.ConsultationEntity{{ID: 3, Email: "asha@example.com"}}, int64(21), nil).
		Once()

	got, err := f.app().ListMine(context.Background(), identity, 2, 500)
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(got.Consultations) != 1 || got.Consultations[0].ID != 3 {
		t.Fatalf("ListMine() consultations = %+v", got.Consultations)
	}
	want := model.Pagination{CurrentPage: 2, PerPage: 20, TotalPages: 2, TotalItems: 21, HasNext: false, HasPrev: true}
	if got.Pagination != want {
		t.Fatalf("ListMine() pagination = %+v, want %+v", got.Pagination, want)
	}
}

func TestConsultationApp_GetByID(t *testing.T) {
	owner := &model.Identity{UserID: 1, Email: "asha@example.com", Role: constant.RoleUser}
	stranger := &model.Identity{UserID: 2, Email: "ravi@example.com", Role: constant.RoleUser}
	admin := &model.Identity{UserID: 3, Email: "admin@example.com", Role: constant.RoleAdmin}
	record := &model.ConsultationEntity{ID: 9, Email: "Asha@Example.com"}

	tests := []struct {
		name     string
		identity *model.Identity
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: owner",
			identity: owner,
			mockCall: func(f fields) {
				f.consultationRepo.On("GetByID", mock.Anything, uint64(9)).Return(record, nil).Once()
			},
		},
		{
			name:     "success: admin",
			identity: admin,
			mockCall: func(f fields) {
				f.consultationRepo.On("GetByID", mock.Anything, uint64(9)).Return(record, nil).Once()
			},
		},
		{
			name:     "error: other user",
			identity: stranger,
			mockCall: func(f fields) {
				f.consultationRepo.On("GetByID", mock.Anything, uint64(9)).Return(record, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:     "error: missing",
			identity: admin,
			mockCall: func(f fields) {
				f.consultationRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().GetByID(context.Background(), tt.identity, 9)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != 9 {
				t.Fatalf("GetByID() = %+v", got)
			}
		})
	}
}

func TestConsultationApp_ListAll(t *testing.T) {
	f := newFields(t)

	f.consultationRepo.
		On("List", mock.Anything, &model.ConsultationFilter{Status: constant.ConsultationStatusPending, Page: 1, PerPage: 100}).
		Return([]*model.ConsultationEntity{}, int64(0), nil).
		Once()

	got, err := f.app().ListAll(context.Background(), &model.ConsultationFilter{Status: constant.ConsultationStatusPending, PerPage: 1000})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got.Consultations == nil || len(got.Consultations) != 0 {
		t.Fatalf("ListAll() consultations = %#v, want empty slice", got.Consultations)
	}

	_, err = f.app().ListAll(context.Background(), &model.ConsultationFilter{Status: "archived"})
	assertErrCode(t, err, constant.ErrInvalidRequest)
}

func TestConsultationApp_UpdateStatus(t *testing.T) {
	notes := "Called the client"
	tests := []struct {
		name     string
		req      *model.UpdateConsultationStatusRequest
		mockCall func(f fields)
		want     constant.ConsultationStatus
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: completed back to pending is allowed",
			req:  &model.UpdateConsultationStatusRequest{Status: "pending", Notes: &notes},
			mockCall: func(f fields) {
				f.consultationRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.ConsultationEntity{ID: 5, Status: constant.ConsultationStatusCompleted}, nil).
					Once()
				f.consultationRepo.
					On("UpdateStatus", mock.Anything, mock.MatchedBy(func(e *model.ConsultationEntity) bool {
						return e.Status == constant.ConsultationStatusPending && e.Notes != nil && *e.Notes == notes
					})).
					Return(nil).
					Once()
			},
			want: constant.ConsultationStatusPending,
		},
		{
			name: "success: notes untouched when absent",
			req:  &model.UpdateConsultationStatusRequest{Status: "confirmed"},
			mockCall: func(f fields) {
				existing := "keep me"
				f.consultationRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.ConsultationEntity{ID: 5, Status: constant.ConsultationStatusPending, Notes: &existing}, nil).
					Once()
				f.consultationRepo.
					On("UpdateStatus", mock.Anything, mock.MatchedBy(func(e *model.ConsultationEntity) bool {
						return e.Notes != nil && *e.Notes == "keep me"
					})).
					Return(nil).
					Once()
			},
			want: constant.ConsultationStatusConfirmed,
		},
		{
			name:    "error: status outside the enum",
			req:     &model.UpdateConsultationStatusRequest{Status: "archived"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: missing consultation",
			req:  &model.UpdateConsultationStatusRequest{Status: "confirmed"},
			mockCall: func(f fields) {
				f.consultationRepo.On("GetByID", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().UpdateStatus(context.Background(), 5, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != tt.want {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}
