package blog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BlogRepository interface {
	Create(ctx context.Context, data *model.BlogEntity) (*model.BlogEntity, error)
	Update(ctx context.Context, data *model.BlogEntity) error
	GetByID(ctx context.Context, id uint64) (*model.BlogEntity, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogEntity, error)
	ListPublished(ctx context.Context, filter *model.BlogFilter) ([]*model.BlogEntity, int64, error)
	SetPublished(ctx context.Context, data *model.BlogEntity) error
	IncrementViews(ctx context.Context, id uint64) error
}

func NewBlogRepository(conn *sqlx.DB) BlogRepository {
	return &SQL{conn: conn}
}

const (
	insertBlogQuery = `INSERT INTO blogs
(title, title_hindi, slug, content, content_hindi, excerpt, excerpt_hindi, featured_image, category, tags, author_id,
 is_published, published_at, views, likes, meta_description, meta_keywords, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?, ?)`

	updateBlogQuery = `UPDATE blogs SET title = ?, title_hindi = ?, slug = ?, content = ?, content_hindi = ?, excerpt = ?,
excerpt_hindi = ?, featured_image = ?, category = ?, tags = ?, meta_description = ?, meta_keywords = ?, updated_at = ?
WHERE id = ?`

	blogSelect = `SELECT b.id, b.title, b.title_hindi, b.slug, b.content, b.content_hindi, b.excerpt, b.excerpt_hindi,
b.featured_image, b.category, b.tags, b.author_id, COALESCE(u.name, '') AS author_name, b.is_published, b.published_at,
b.views, b.likes, b.meta_description, b.meta_keywords, b.created_at, b.updated_at
FROM blogs b LEFT JOIN users u ON u.id = b.author_id`

	countPublishedBlogs = `SELECT COUNT(*) FROM blogs b WHERE b.is_published = true`

	setPublishedQuery  = `UPDATE blogs SET is_published = ?, published_at = ?, updated_at = ? WHERE id = ?`
	incrementViewQuery = `UPDATE blogs SET views = views + 1 WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.BlogEntity) (*model.BlogEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertBlogQuery,
		data.Title, data.TitleHindi, data.Slug, data.Content, data.ContentHindi, data.Excerpt, data.ExcerptHindi,
		data.FeaturedImage, data.Category, data.Tags, data.AuthorID, data.IsPublished, data.PublishedAt,
		data.MetaDescription, data.MetaKeywords, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.BlogEntity) error {
	_, err := s.conn.ExecContext(ctx, updateBlogQuery,
		data.Title, data.TitleHindi, data.Slug, data.Content, data.ContentHindi, data.Excerpt, data.ExcerptHindi,
		data.FeaturedImage, data.Category, data.Tags, data.MetaDescription, data.MetaKeywords, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.BlogEntity, error) {
	return s.getOne(ctx, blogSelect+" WHERE b.id = ?", id)
}

func (s *SQL) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogEntity, error) {
	return s.getOne(ctx, blogSelect+" WHERE b.is_published = true AND b.slug = ?", slug)
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.BlogEntity, error) {
	var entity model.BlogEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListPublished(ctx context.Context, filter *model.BlogFilter) ([]*model.BlogEntity, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.HindiOnly {
		where += " AND b.title_hindi <> ''"
	}
	if filter.Category != "" {
		where += " AND b.category = ?"
		args = append(args, filter.Category)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countPublishedBlogs+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := blogSelect + " WHERE b.is_published = true" + where + " ORDER BY b.published_at DESC, b.id DESC LIMIT ? OFFSET ?"
	items := make([]*model.BlogEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, append(args, filter.PerPage, offset)...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) SetPublished(ctx context.Context, data *model.BlogEntity) error {
	_, err := s.conn.ExecContext(ctx, setPublishedQuery, data.IsPublished, data.PublishedAt, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) IncrementViews(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, incrementViewQuery, id)
	return err
}
