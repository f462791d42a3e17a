package contact_test

import (
	"context"
	"errors"
	"testing"

	appcontact "github.com/muhammadheryan/vastu-shakti/application/contact"
	"github.com/muhammadheryan/vastu-shakti/constant"
	notificationmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/notification"
	contactmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/contact"
	feedbackmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/feedback"
	"github.com/muhammadheryan/vastu-shakti/model"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	contactRepo  *contactmocks.ContactRepository
	feedbackRepo *feedbackmocks.FeedbackRepository
	dispatcher   *notificationmocks.Dispatcher
}

func newFields(t *testing.T) fields {
	return fields{
		contactRepo:  contactmocks.NewContactRepository(t),
		feedbackRepo: feedbackmocks.NewFeedbackRepository(t),
		dispatcher:   notificationmocks.NewDispatcher(t),
	}
}

func (f fields) app() appcontact.ContactApp {
	return appcontact.NewContactApp(f.contactRepo, f.feedbackRepo, f.dispatcher)
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

func TestContactApp_SubmitEnquiry(t *testing.T) {
	req := &model.EnquiryRequest{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Mobile:  "+91 98765 43210",
		Subject: "Office layout",
		Message: "Need help with my office entrance direction.",
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: stored as new and notified",
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.ContactEntity) bool {
						return e.Status == constant.ContactStatusNew && e.Subject == "Office layout"
					})).
					Return(func(_ context.Context, e *model.ContactEntity) (*model.ContactEntity, error) {
						e.ID = 17
						return e, nil
					}).
					Once()
				f.dispatcher.
					On("Dispatch", mock.MatchedBy(func(n *model.Notification) bool {
						return n.Kind == constant.NotificationEnquiry && n.Enquiry.ID == 17
					})).
					Return().
					Once()
			},
			wantID: 17,
		},
		{
			name: "error: persistence failure",
			mockCall: func(f fields) {
				f.contactRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().SubmitEnquiry(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitEnquiry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.EnquiryID != tt.wantID {
				t.Fatalf("SubmitEnquiry() id = %d, want %d", got.EnquiryID, tt.wantID)
			}
		})
	}
}

func TestContactApp_SubmitFeedback(t *testing.T) {
	f := newFields(t)

	f.feedbackRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(e *model.FeedbackEntity) bool {
			return !e.IsPublished && !e.IsVerified && e.Rating == 5 && e.Comments == "Very helpful session"
		})).
		Return(&model.FeedbackEntity{ID: 3, Rating: 5, Comments: "Very helpful session"}, nil).
		Once()
	f.dispatcher.
		On("Dispatch", mock.MatchedBy(func(n *model.Notification) bool {
			return n.Kind == constant.NotificationFeedback && n.Feedback.Rating == 5
		})).
		Return().
		Once()

	got, err := f.app().SubmitFeedback(context.Background(), &model.FeedbackRequest{Rating: 5, Comments: "Very helpful session"})
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if got.FeedbackID != 3 {
		t.Fatalf("SubmitFeedback() id = %d, want 3", got.FeedbackID)
	}
}

func TestContactApp_ListPublishedFeedback(t *testing.T) {
	f := newFields(t)

	f.feedbackRepo.
		On("List", mock.Anything, mock.MatchedBy(func(filter *model.FeedbackFilter) bool {
			return filter.Published != nil && *filter.Published && filter.Page == 1 && filter.PerPage == constant.PublishedFeedbackLimit
		})).
		Return([]*model.FeedbackEntity{{ID: 1, Name: "Meera", Email: "meera@example.com", Rating: 4, IsPublished: true}}, int64(1), nil).
		Once()

	got, err := f.app().ListPublishedFeedback(context.Background())
	if err != nil {
		t.Fatalf("ListPublishedFeedback() error = %v", err)
	}
	if len(got) != 1 || got[0].Email != "" || got[0].Name != "Meera" {
		t.Fatalf("ListPublishedFeedback() = %+v, want email hidden", got)
	}
}

func TestContactApp_UpdateContactStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: resolve enquiry",
			status: "resolved",
			mockCall: func(f fields) {
				f.contactRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.ContactEntity{ID: 2, Status: constant.ContactStatusNew}, nil).Once()
				f.contactRepo.
					On("UpdateStatus", mock.Anything, mock.MatchedBy(func(e *model.ContactEntity) bool {
						return e.Status == constant.ContactStatusResolved
					})).
					Return(nil).
					Once()
			},
		},
		{
			name:    "error: unknown status",
			status:  "spam",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: missing enquiry",
			status: "closed",
			mockCall: func(f fields) {
				f.contactRepo.On("GetByID", mock.Anything, uint64(2)).Return(nil, nil).Once()
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

			got, err := f.app().UpdateContactStatus(context.Background(), 2, &model.UpdateContactStatusRequest{Status: tt.status})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateContactStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if string(got.Status) != tt.status {
				t.Fatalf("UpdateContactStatus() status = %s, want %s", got.Status, tt.status)
			}
		})
	}
}

func TestContactApp_ListContactsAndFeedback(t *testing.T) {
	f := newFields(t)

	f.contactRepo.
		On("List", mock.Anything, &model.ContactFilter{Status: constant.ContactStatusNew, Page: 1, PerPage: 20}).
		Return([]*model.ContactEntity{{ID: 1}, {ID: 2}}, int64(2), nil).
		Once()
	contacts, err := f.app().ListContacts(context.Background(), &model.ContactFilter{Status: constant.ContactStatusNew})
	if err != nil {
		t.Fatalf("ListContacts() error = %v", err)
	}
	if len(contacts.Contacts) != 2 || contacts.Pagination.TotalItems != 2 {
		t.Fatalf("ListContacts() = %+v", contacts)
	}

	unpublished := false
	f.feedbackRepo.
		On("List", mock.Anything, &model.FeedbackFilter{Published: &unpublished, Page: 3, PerPage: 100}).
		Return([]*model.FeedbackEntity{}, int64(0), nil).
		Once()
	feedback, err := f.app().ListFeedback(context.Background(), &model.FeedbackFilter{Published: &unpublished, Page: 3, PerPage: 250})
	if err != nil {
		t.Fatalf("ListFeedback() error = %v", err)
	}
	if feedback.Pagination == nil || feedback.Pagination.PerPage != 100 {
		t.Fatalf("ListFeedback() pagination = %+v", feedback.Pagination)
	}
}

func TestContactApp_PublishFeedback(t *testing.T) {
	f := newFields(t)
	publish := true

	f.feedbackRepo.
		On("GetByID", mock.Anything, uint64(6)).
		Return(&model.FeedbackEntity{ID: 6, IsVerified: true}, nil).
		Once()
	f.feedbackRepo.
		On("UpdatePublication", mock.Anything, mock.MatchedBy(func(e *model.FeedbackEntity) bool {
			return e.IsPublished && e.IsVerified
		})).
		Return(nil).
		Once()

	got, err := f.app().PublishFeedback(context.Background(), 6, &model.PublishFeedbackRequest{IsPublished: &publish})
	if err != nil {
		t.Fatalf("PublishFeedback() error = %v", err)
	}
	if !got.IsPublished || !got.IsVerified {
		t.Fatalf("PublishFeedback() = %+v", got)
	}

	f.feedbackRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()
	_, err = f.app().PublishFeedback(context.Background(), 7, &model.PublishFeedbackRequest{IsPublished: &publish})
	assertErrCode(t, err, constant.ErrNotFound)
}
