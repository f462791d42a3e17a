package blog_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/model"
	blogrepo "github.com/muhammadheryan/vastu-shakti/repository/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "title", "title_hindi", "slug", "content", "content_hindi", "excerpt", "excerpt_hindi",
	"featured_image", "category", "tags", "author_id", "author_name", "is_published", "published_at",
	"views", "likes", "meta_description", "meta_keywords", "created_at", "updated_at"}

func TestBlogRepository_ListPublished_Hindi(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := blogrepo.NewBlogRepository(sqlx.NewDb(mockDB, "mysql"))
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blogs b WHERE b.is_published = true AND b.title_hindi <> '' AND b.category = ?")).
		WithArgs("tips").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.is_published = true AND b.title_hindi <> '' AND b.category = ? ORDER BY b.published_at DESC, b.id DESC LIMIT ? OFFSET ?")).
		WithArgs("tips", 10, 10).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			2, "Vastu tips", "वास्तु सुझाव", "vastu-tips", "body", "सामग्री", "short", "संक्षेप",
			"", "tips", `["vastu","tips"]`, 1, "Admin", true, now, 3, 1, "", `[]`, now, now))

	items, total, err := repo.ListPublished(context.Background(), &model.BlogFilter{HindiOnly: true, Category: "tips", Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, model.StringList{"vastu", "tips"}, items[0].Tags)
	assert.Equal(t, "Admin", items[0].AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_GetPublishedBySlug_NotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := blogrepo.NewBlogRepository(sqlx.NewDb(mockDB, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.is_published = true AND b.slug = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.GetPublishedBySlug(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
