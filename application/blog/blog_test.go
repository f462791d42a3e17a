package blog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	appblog "github.com/muhammadheryan/vastu-shakti/application/blog"
	"github.com/muhammadheryan/vastu-shakti/constant"
	blogmocks "github.com/muhammadheryan/vastu-shakti/mocks/repository/blog"
	"github.com/muhammadheryan/vastu-shakti/model"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode())
}

func bilingualPost() *model.BlogEntity {
	published := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return &model.BlogEntity{
		ID:           1,
		Title:        "Understanding Vastu Shastra",
		TitleHindi:   "वास्तु शास्त्र की मूल बातें",
		Slug:         "understanding-vastu-shastra",
		Content:      "Vastu Shastra is an ancient Indian science of architecture...",
		ContentHindi: "वास्तु शास्त्र वास्तुकला का एक प्राचीन भारतीय विज्ञान है...",
		Excerpt:      "Learn about the ancient science.",
		ExcerptHindi: "वास्तु शास्त्र की मूल बातें जानें।",
		Category:     "tips",
		IsPublished:  true,
		PublishedAt:  &published,
		Views:        10,
	}
}

func TestBlogApp_List(t *testing.T) {
	tests := []struct {
		name      string
		query     *model.BlogQuery
		wantTitle string
		filter    *model.BlogFilter
	}{
		{
			name:      "english listing",
			query:     &model.BlogQuery{Language: "en", Category: "Tips"},
			wantTitle: "Understanding Vastu Shastra",
			filter:    &model.BlogFilter{Category: "tips", Page: 1, PerPage: constant.BlogPageSizeDefault},
		},
		{
			name:      "hindi listing projects hindi fields",
			query:     &model.BlogQuery{Language: "hi", Page: 2, PerPage: 500},
			wantTitle: "वास्तु शास्त्र की मूल बातें",
			filter:    &model.BlogFilter{HindiOnly: true, Page: 2, PerPage: constant.BlogPageSizeMax},
		},
		{
			name:      "unknown language falls back to english",
			query:     &model.BlogQuery{Language: "fr"},
			wantTitle: "Understanding Vastu Shastra",
			filter:    &model.BlogFilter{Page: 1, PerPage: constant.BlogPageSizeDefault},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := blogmocks.NewBlogRepository(t)
			repo.On("ListPublished", mock.Anything, tt.filter).Return([]*model.BlogEntity{bilingualPost()}, int64(1), nil).Once()

			got, err := appblog.NewBlogApp(repo).List(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, got.Blogs, 1)
			assert.Equal(t, tt.wantTitle, got.Blogs[0].Title)
			assert.Equal(t, "Vastu Shakti Team", got.Blogs[0].Author)
			assert.Equal(t, int64(1), got.Pagination.TotalItems)
		})
	}
}

func TestBlogApp_GetBySlug(t *testing.T) {
	t.Run("hindi detail with view increment", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		repo.On("GetPublishedBySlug", mock.Anything, "understanding-vastu-shastra").Return(bilingualPost(), nil).Once()
		repo.On("IncrementViews", mock.Anything, uint64(1)).Return(nil).Once()

		got, err := appblog.NewBlogApp(repo).GetBySlug(context.Background(), "understanding-vastu-shastra", "hi")
		require.NoError(t, err)
		assert.Equal(t, "hi", got.Language)
		assert.Equal(t, "वास्तु शास्त्र वास्तुकला का एक प्राचीन भारतीय विज्ञान है...", got.Content)
		assert.Equal(t, int64(11), got.Views)
	})

	t.Run("view increment failure is ignored", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		repo.On("GetPublishedBySlug", mock.Anything, "understanding-vastu-shastra").Return(bilingualPost(), nil).Once()
		repo.On("IncrementViews", mock.Anything, uint64(1)).Return(errors.New("lock wait timeout")).Once()

		got, err := appblog.NewBlogApp(repo).GetBySlug(context.Background(), "understanding-vastu-shastra", "en")
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.Views)
	})

	t.Run("hindi request for english-only post", func(t *testing.T) {
		post := bilingualPost()
		post.TitleHindi = ""
		repo := blogmocks.NewBlogRepository(t)
		repo.On("GetPublishedBySlug", mock.Anything, "understanding-vastu-shastra").Return(post, nil).Once()

		_, err := appblog.NewBlogApp(repo).GetBySlug(context.Background(), "understanding-vastu-shastra", "hi")
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		repo.On("GetPublishedBySlug", mock.Anything, "missing").Return(nil, nil).Once()

		_, err := appblog.NewBlogApp(repo).GetBySlug(context.Background(), "missing", "en")
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestBlogApp_Create(t *testing.T) {
	admin := &model.Identity{UserID: 2, Role: constant.RoleAdmin}
	req := &model.BlogRequest{
		Title:    "Understanding Vastu!! Shastra",
		Content:  "Body",
		Excerpt:  "Excerpt",
		Category: "tips",
		Tags:     []string{"vastu"},
	}

	t.Run("slug derived from title", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		repo.
			On("Create", mock.Anything, mock.MatchedBy(func(e *model.BlogEntity) bool {
				return e.Slug == "understanding-vastu-shastra" && e.AuthorID == 2 && !e.IsPublished
			})).
			Return(func(_ context.Context, e *model.BlogEntity) (*model.BlogEntity, error) {
				e.ID = 30
				return e, nil
			}).
			Once()

		got, err := appblog.NewBlogApp(repo).Create(context.Background(), admin, req)
		require.NoError(t, err)
		assert.Equal(t, uint64(30), got.ID)
		assert.Equal(t, "understanding-vastu-shastra", got.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, &mysql.MySQLError{Number: 1062}).Once()

		_, err := appblog.NewBlogApp(repo).Create(context.Background(), admin, req)
		assertErrCode(t, err, constant.ErrSlugExists)
	})

	t.Run("title without slug characters", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		_, err := appblog.NewBlogApp(repo).Create(context.Background(), admin, &model.BlogRequest{Title: "!!!"})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestBlogApp_Update(t *testing.T) {
	repo := blogmocks.NewBlogRepository(t)
	repo.On("GetByID", mock.Anything, uint64(1)).Return(bilingualPost(), nil).Once()
	repo.
		On("Update", mock.Anything, mock.MatchedBy(func(e *model.BlogEntity) bool {
			return e.Slug == "north-east-corner-tips" && e.Title == "North-East Corner Tips"
		})).
		Return(nil).
		Once()

	got, err := appblog.NewBlogApp(repo).Update(context.Background(), 1, &model.BlogRequest{
		Title: "North-East Corner Tips", Content: "c", Excerpt: "e", Category: "tips",
	})
	require.NoError(t, err)
	assert.Equal(t, "north-east-corner-tips", got.Slug)

	repo.On("GetByID", mock.Anything, uint64(2)).Return(nil, nil).Once()
	_, err = appblog.NewBlogApp(repo).Update(context.Background(), 2, &model.BlogRequest{Title: "x"})
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestBlogApp_SetPublished(t *testing.T) {
	publish, unpublish := true, false

	t.Run("first publish stamps published_at", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		draft := bilingualPost()
		draft.IsPublished, draft.PublishedAt = false, nil
		repo.On("GetByID", mock.Anything, uint64(1)).Return(draft, nil).Once()
		repo.
			On("SetPublished", mock.Anything, mock.MatchedBy(func(e *model.BlogEntity) bool {
				return e.IsPublished && e.PublishedAt != nil
			})).
			Return(nil).
			Once()

		got, err := appblog.NewBlogApp(repo).SetPublished(context.Background(), 1, &model.PublishBlogRequest{IsPublished: &publish})
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
	})

	t.Run("unpublish keeps original published_at", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		post := bilingualPost()
		original := *post.PublishedAt
		repo.On("GetByID", mock.Anything, uint64(1)).Return(post, nil).Once()
		repo.On("SetPublished", mock.Anything, mock.Anything).Return(nil).Once()

		got, err := appblog.NewBlogApp(repo).SetPublished(context.Background(), 1, &model.PublishBlogRequest{IsPublished: &unpublish})
		require.NoError(t, err)
		assert.False(t, got.IsPublished)
		assert.True(t, got.PublishedAt.Equal(original))
	})

	t.Run("missing flag", func(t *testing.T) {
		repo := blogmocks.NewBlogRepository(t)
		_, err := appblog.NewBlogApp(repo).SetPublished(context.Background(), 1, &model.PublishBlogRequest{})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}
