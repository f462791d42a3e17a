package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	appconsultation "github.com/muhammadheryan/vastu-shakti/application/consultation"
	appuser "github.com/muhammadheryan/vastu-shakti/application/user"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/constant"
	adminmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/admin"
	blogmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/blog"
	chatmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/chat"
	consultationmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/consultation"
	contactmocks "github.com/muhammadheryan/vastu-shakti/mocks/application/contact"
	usermocks "github.com/muhammadheryan/vastu-shakti/mocks/application/user"
	consultationrepomocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/consultation"
	redismocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/redis"
	userrepomocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/user"
	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/transport"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const frontend = "http://localhost:3000"

type deps struct {
	user         *usermocks.UserApp
	consultation *consultationmocks.ConsultationApp
	contact      *contactmocks.ContactApp
	blog         *blogmocks.BlogApp
	chat         *chatmocks.ChatApp
	admin        *adminmocks.AdminApp
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{MaxBodyBytes: 1 << 20},
		CORS:        config.CORSConfig{FrontendURL: frontend},
		RateLimit:   config.RateLimitConfig{MaxRequests: 100, Window: 15 * time.Minute},
		Upload:      config.UploadConfig{Dir: "uploads/", MaxFileSize: 5 << 20},
		Internal:    config.InternalConfig{APIKey: "internal-key"},
	}
}

func newHandler(t *testing.T, opts transport.Options) (http.Handler, *deps) {
	t.Helper()
	d := &deps{
		user:         usermocks.NewUserApp(t),
		consultation: consultationmocks.NewConsultationApp(t),
		contact:      contactmocks.NewContactApp(t),
		blog:         blogmocks.NewBlogApp(t),
		chat:         chatmocks.NewChatApp(t),
		admin:        adminmocks.NewAdminApp(t),
	}
	if opts.Config == nil {
		opts.Config = testConfig()
	}
	if opts.UserApp == nil {
		opts.UserApp = d.user
	}
	if opts.ConsultationApp == nil {
		opts.ConsultationApp = d.consultation
	}
	opts.ContactApp = d.contact
	opts.BlogApp = d.blog
	opts.ChatApp = d.chat
	opts.AdminApp = d.admin
	return transport.NewTransport(opts), d
}

func do(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var res transport.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

const validBooking = `{
	"name": "Asha Verma",
	"email": "asha@example.com",
	"mobile": "9876543210",
	"state": "Maharashtra",
	"occupation": "Engineer",
	"preferredDate": "2026-11-20",
	"preferredTime": "10:00 AM",
	"consultationType": "house"
}`

func TestBookConsultation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, d := newHandler(t, transport.Options{})
		d.consultation.On("Book", mock.Anything, mock.MatchedBy(func(req *model.BookConsultationRequest) bool {
			return req.ConsultationType == "house" && req.Mobile == "9876543210"
		})).Return(&model.Consultation{
			ID:               1,
			Name:             "Asha Verma",
			Email:            "asha@example.com",
			Mobile:           "9876543210",
			State:            "Maharashtra",
			Occupation:       "Engineer",
			ConsultationType: "house",
			Status:           constant.ConsultationStatusPending,
		}, nil)

		rec := do(h, http.MethodPost, "/api/consultations/book", validBooking, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var res model.ConsultationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "Consultation booked successfully", res.Message)
		assert.Equal(t, constant.ConsultationStatusPending, res.Consultation.Status)
		assert.Equal(t, "house", res.Consultation.ConsultationType)
	})

	t.Run("invalid consultation type", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{})
		body := strings.Replace(validBooking, `"house"`, `"invalid-type"`, 1)

		rec := do(h, http.MethodPost, "/api/consultations/book", body, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeError(t, rec)
		assert.Equal(t, "0003", res.Code)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "consultationType", res.Errors[0].Field)
	})

	t.Run("every invalid field is listed", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{})

		rec := do(h, http.MethodPost, "/api/consultations/book", `{"name":"A","mobile":"12"}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := map[string]bool{}
		for _, fe := range decodeError(t, rec).Errors {
			fields[fe.Field] = true
		}
		for _, f := range []string{"name", "email", "mobile", "state", "occupation", "preferredDate", "preferredTime", "consultationType"} {
			assert.True(t, fields[f], "missing %s", f)
		}
	})

	t.Run("over column width", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{})
		body := strings.Replace(validBooking, `"10:00 AM"`, `"`+strings.Repeat("t", 80)+`"`, 1)
		body = strings.Replace(body, `"Maharashtra"`, `"`+strings.Repeat("s", 150)+`"`, 1)

		rec := do(h, http.MethodPost, "/api/consultations/book", body, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeError(t, rec)
		assert.Equal(t, "0003", res.Code)
		fields := map[string]bool{}
		for _, fe := range res.Errors {
			fields[fe.Field] = true
		}
		assert.Equal(t, map[string]bool{"preferredTime": true, "state": true}, fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{})

		rec := do(h, http.MethodPost, "/api/consultations/book", `{"name":`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "body", decodeError(t, rec).Errors[0].Field)
	})
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 64
	h, _ := newHandler(t, transport.Options{Config: cfg})

	rec := do(h, http.MethodPost, "/api/contact/enquiry", `{"message":"`+strings.Repeat("x", 1024)+`"}`, nil)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "0011", decodeError(t, rec).Code)
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		headers  map[string]string
		mockCall func(d *deps)
		wantCode int
	}{
		{
			name:     "missing token",
			path:     "/api/consultations/my-consultations",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "invalid token",
			path:    "/api/consultations/my-consultations",
			headers: bearer("bad"),
			mockCall: func(d *deps) {
				d.user.On("Authenticate", mock.Anything, "bad").Return(nil, cerr.SetCustomError(constant.ErrUnauthorize))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "own consultations",
			path:    "/api/consultations/my-consultations?page=2&limit=5",
			headers: bearer("good"),
			mockCall: func(d *deps) {
				identity := &model.Identity{UserID: 7, Email: "asha@example.com", Role: constant.RoleUser}
				d.user.On("Authenticate", mock.Anything, "good").Return(identity, nil)
				d.consultation.On("ListMine", mock.Anything, identity, 2, 5).Return(&model.ConsultationListResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "not owner",
			path:    "/api/consultations/42",
			headers: bearer("good"),
			mockCall: func(d *deps) {
				identity := &model.Identity{UserID: 7, Email: "asha@example.com", Role: constant.RoleUser}
				d.user.On("Authenticate", mock.Anything, "good").Return(identity, nil)
				d.consultation.On("GetByID", mock.Anything, identity, uint64(42)).Return(nil, cerr.SetCustomError(constant.ErrForbidden))
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "admin route as user",
			path:    "/api/admin/dashboard",
			headers: bearer("good"),
			mockCall: func(d *deps) {
				d.user.On("Authenticate", mock.Anything, "good").Return(&model.Identity{UserID: 7, Role: constant.RoleUser}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "admin route as admin",
			path:    "/api/admin/dashboard",
			headers: bearer("admin"),
			mockCall: func(d *deps) {
				d.user.On("Authenticate", mock.Anything, "admin").Return(&model.Identity{UserID: 1, Role: constant.RoleAdmin}, nil)
				d.admin.On("Dashboard", mock.Anything).Return(&model.DashboardStats{TotalConsultations: 3}, nil)
			},
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newHandler(t, transport.Options{})
			if tt.mockCall != nil {
				tt.mockCall(d)
			}

			rec := do(h, http.MethodGet, tt.path, "", tt.headers)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newHandler(t, transport.Options{})

	rec := do(h, http.MethodGet, "/api/does-not-exist", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	res := decodeError(t, rec)
	assert.Equal(t, "0008", res.Code)
	assert.Equal(t, "route not found", res.Message)
}

func TestRateLimit(t *testing.T) {
	t.Run("over limit", func(t *testing.T) {
		limiter := redismocks.NewRepository(t)
		limiter.On("IncrWithExpire", mock.Anything, "ratelimit:192.0.2.1", 15*time.Minute).Return(int64(101), 10*time.Minute, nil)
		h, _ := newHandler(t, transport.Options{RateLimiter: limiter})

		rec := do(h, http.MethodGet, "/api/blogs", "", nil)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "600", rec.Header().Get("Retry-After"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "too many requests from this IP, please try again later", decodeError(t, rec).Message)
	})

	t.Run("under limit", func(t *testing.T) {
		limiter := redismocks.NewRepository(t)
		limiter.On("IncrWithExpire", mock.Anything, "ratelimit:192.0.2.1", 15*time.Minute).Return(int64(1), 15*time.Minute, nil)
		h, d := newHandler(t, transport.Options{RateLimiter: limiter})
		d.blog.On("List", mock.Anything, mock.Anything).Return(&model.BlogListResponse{}, nil)

		rec := do(h, http.MethodGet, "/api/blogs", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "99", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("redis down fails open", func(t *testing.T) {
		limiter := redismocks.NewRepository(t)
		limiter.On("IncrWithExpire", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), time.Duration(0), errors.New("connection refused"))
		h, d := newHandler(t, transport.Options{RateLimiter: limiter})
		d.blog.On("List", mock.Anything, mock.Anything).Return(&model.BlogListResponse{}, nil)

		rec := do(h, http.MethodGet, "/api/blogs", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("outside api is not counted", func(t *testing.T) {
		limiter := redismocks.NewRepository(t)
		h, _ := newHandler(t, transport.Options{RateLimiter: limiter})

		rec := do(h, http.MethodGet, "/", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newHandler(t, transport.Options{})

	rec := do(h, http.MethodOptions, "/api/consultations/book", "", map[string]string{
		"Origin":                        frontend,
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, frontend, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSecurityHeaders(t *testing.T) {
	h, _ := newHandler(t, transport.Options{})

	rec := do(h, http.MethodGet, "/", "", nil)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestChatMessage(t *testing.T) {
	h, d := newHandler(t, transport.Options{})
	d.chat.On("SendMessage", mock.Anything, &model.ChatRequest{Message: "namaste", Language: "hi", SessionID: "s-1"}).
		Return(&model.ChatResponse{Response: "नमस्ते!", Intent: constant.ChatIntentGreeting, SessionID: "s-1"}, nil)

	rec := do(h, http.MethodPost, "/api/chat/message", `{"message":"namaste","language":"hi","sessionId":" s-1 "}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var res model.ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, constant.ChatIntentGreeting, res.Intent)
	assert.Equal(t, "s-1", res.SessionID)
}

func TestSubmitFeedback_MessageAlias(t *testing.T) {
	h, d := newHandler(t, transport.Options{})
	d.contact.On("SubmitFeedback", mock.Anything, mock.MatchedBy(func(req *model.FeedbackRequest) bool {
		return req.Comments == "Great guidance" && req.Rating == 5
	})).Return(&model.FeedbackResponse{Message: "Thank you for your feedback!", FeedbackID: 3}, nil)

	rec := do(h, http.MethodPost, "/api/contact/feedback", `{"rating":5,"message":"Great guidance"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestEnquiryAlias(t *testing.T) {
	h, d := newHandler(t, transport.Options{})
	d.contact.On("SubmitEnquiry", mock.Anything, mock.Anything).Return(&model.EnquiryResponse{EnquiryID: 9}, nil)

	body := `{"name":"Ravi","email":"ravi@example.com","mobile":"+91 98765 43210","subject":"Office","message":"Need help with office layout"}`
	rec := do(h, http.MethodPost, "/api/contact/inquiry", body, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestInternalMetrics(t *testing.T) {
	h, _ := newHandler(t, transport.Options{})

	rec := do(h, http.MethodGet, "/internal/metrics", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(h, http.MethodGet, "/internal/metrics", "", bearer("internal-key"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{DBCheck: func(ctx context.Context) error { return nil }})

		rec := do(h, http.MethodGet, "/health", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var res transport.HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "OK", res.Status)
	})

	t.Run("database down", func(t *testing.T) {
		h, _ := newHandler(t, transport.Options{DBCheck: func(ctx context.Context) error { return errors.New("dial tcp: refused") }})

		rec := do(h, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPanicRecovery(t *testing.T) {
	h, d := newHandler(t, transport.Options{})
	d.blog.On("GetBySlug", mock.Anything, "boom", "").Run(func(mock.Arguments) { panic("boom") })

	rec := do(h, http.MethodGet, "/api/blogs/boom", "", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "0001", decodeError(t, rec).Code)
}

func TestAdminUpload(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	tests := []struct {
		name     string
		content  []byte
		maxSize  int64
		wantCode int
	}{
		{name: "png stored", content: png, maxSize: 1 << 20, wantCode: http.StatusCreated},
		{name: "not an image", content: []byte("plain text, not an image"), maxSize: 1 << 20, wantCode: http.StatusBadRequest},
		{name: "too large", content: png, maxSize: 16, wantCode: http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Upload.Dir = t.TempDir()
			cfg.Upload.MaxFileSize = tt.maxSize
			h, d := newHandler(t, transport.Options{Config: cfg})
			d.user.On("Authenticate", mock.Anything, "admin").Return(&model.Identity{UserID: 1, Role: constant.RoleAdmin}, nil)

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			part, err := mw.CreateFormFile("image", "cover.png")
			require.NoError(t, err)
			_, err = part.Write(tt.content)
			require.NoError(t, err)
			require.NoError(t, mw.Close())

			req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			req.Header.Set("Authorization", "Bearer admin")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusCreated {
				return
			}
			var res model.UploadResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
			assert.True(t, strings.HasSuffix(res.Filename, ".png"))
			assert.Equal(t, "/uploads/"+res.Filename, res.URL)
			stored, err := os.ReadFile(filepath.Join(cfg.Upload.Dir, res.Filename))
			require.NoError(t, err)
			assert.Equal(t, tt.content, stored)
		})
	}
}

func TestRegister_MobileTooLong(t *testing.T) {
	h, _ := newHandler(t, transport.Options{})
	body := `{"name":"Asha","email":"asha@example.com","mobile":"` + strings.Repeat("9", 40) + `","password":"secret123"}`

	rec := do(h, http.MethodPost, "/api/auth/register", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeError(t, rec)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "mobile", res.Errors[0].Field)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.AuthConfig{JWTSecret: "test-secret", JWTExpiration: time.Hour}
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := userrepomocks.NewUserRepository(t)
	repo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).
		Return(&model.UserEntity{ID: 1, Email: "asha@example.com", PasswordHash: string(hashed), IsActive: true}, nil)
	repo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil)
	h, _ := newHandler(t, transport.Options{Config: cfg, UserApp: appuser.NewUserApp(cfg, repo)})

	wrongPassword := do(h, http.MethodPost, "/api/auth/login", `{"email":"asha@example.com","password":"not-it"}`, nil)
	unknownEmail := do(h, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"not-it"}`, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "0006", decodeError(t, unknownEmail).Code)
}

func TestAdminUpdateConsultationStatus(t *testing.T) {
	admin := func(d *deps) {
		d.user.On("Authenticate", mock.Anything, "admin").Return(&model.Identity{UserID: 1, Role: constant.RoleAdmin}, nil)
	}

	t.Run("pending to completed", func(t *testing.T) {
		repo := consultationrepomocks.NewConsultationRepository(t)
		repo.On("GetByID", mock.Anything, uint64(5)).
			Return(&model.ConsultationEntity{ID: 5, Name: "Asha", Status: constant.ConsultationStatusPending}, nil)
		repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(e *model.ConsultationEntity) bool {
			return e.ID == 5 && e.Status == constant.ConsultationStatusCompleted
		})).Return(nil)
		h, d := newHandler(t, transport.Options{ConsultationApp: appconsultation.NewConsultationApp(repo, nil, nil)})
		admin(d)

		rec := do(h, http.MethodPut, "/api/admin/consultations/5/status", `{"status":"completed"}`, bearer("admin"))

		require.Equal(t, http.StatusOK, rec.Code)
		var res model.ConsultationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "Consultation status updated successfully", res.Message)
		assert.Equal(t, constant.ConsultationStatusCompleted, res.Consultation.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := consultationrepomocks.NewConsultationRepository(t)
		repo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil)
		h, d := newHandler(t, transport.Options{ConsultationApp: appconsultation.NewConsultationApp(repo, nil, nil)})
		admin(d)

		rec := do(h, http.MethodPut, "/api/admin/consultations/404/status", `{"status":"completed"}`, bearer("admin"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "0002", decodeError(t, rec).Code)
	})
}

func TestUploadedFiles(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.Dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Upload.Dir, "cover.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(cfg.Upload.Dir, "nested"), 0o755))
	h, _ := newHandler(t, transport.Options{Config: cfg})

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "stored file", path: "/uploads/cover.png", wantCode: http.StatusOK},
		{name: "upload root", path: "/uploads/", wantCode: http.StatusNotFound},
		{name: "sub directory", path: "/uploads/nested", wantCode: http.StatusNotFound},
		{name: "missing file", path: "/uploads/missing.png", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.path, "", nil)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "png-bytes", rec.Body.String())
				return
			}
			assert.Equal(t, "0008", decodeError(t, rec).Code)
			assert.NotContains(t, rec.Body.String(), "cover.png")
		})
	}
}
