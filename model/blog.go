package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringList is stored as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported StringList source %T", src)
	}
	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}

type BlogEntity struct {
	ID              uint64     `db:"id"`
	Title           string     `db:"title"`
	TitleHindi      string     `db:"title_hindi"`
	Slug            string     `db:"slug"`
	Content         string     `db:"content"`
	ContentHindi    string     `db:"content_hindi"`
	Excerpt         string     `db:"excerpt"`
	ExcerptHindi    string     `db:"excerpt_hindi"`
	FeaturedImage   string     `db:"featured_image"`
	Category        string     `db:"category"`
	Tags            StringList `db:"tags"`
	AuthorID        uint64     `db:"author_id"`
	AuthorName      string     `db:"author_name"`
	IsPublished     bool       `db:"is_published"`
	PublishedAt     *time.Time `db:"published_at"`
	Views           int64      `db:"views"`
	Likes           int64      `db:"likes"`
	MetaDescription string     `db:"meta_description"`
	MetaKeywords    StringList `db:"meta_keywords"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type BlogFilter struct {
	// HindiOnly restricts to posts that carry a Hindi title.
	HindiOnly bool
	Category  string
	Page      int
	PerPage   int
}

type BlogRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	TitleHindi      string   `json:"titleHindi" validate:"max=255"`
	Content         string   `json:"content" validate:"required"`
	ContentHindi    string   `json:"contentHindi"`
	Excerpt         string   `json:"excerpt" validate:"required"`
	ExcerptHindi    string   `json:"excerptHindi"`
	FeaturedImage   string   `json:"featuredImage" validate:"max=500"`
	Category        string   `json:"category" validate:"required,oneof=tips house office career wealth health marriage education general"`
	Tags            []string `json:"tags"`
	MetaDescription string   `json:"metaDescription" validate:"max=500"`
	MetaKeywords    []string `json:"metaKeywords"`
}

func (r *BlogRequest) Sanitize() {
	r.Title = strings.TrimSpace(r.Title)
	r.TitleHindi = strings.TrimSpace(r.TitleHindi)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}
}

type PublishBlogRequest struct {
	IsPublished *bool `json:"isPublished"`
}

type BlogQuery struct {
	Language string
	Category string
	Page     int
	PerPage  int
}

type BlogSummary struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Tags          StringList `json:"tags"`
	Language      string     `json:"language"`
	Views         int64      `json:"views"`
	Likes         int64      `json:"likes"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type BlogDetail struct {
	BlogSummary
	Content         string     `json:"content"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    StringList `json:"metaKeywords,omitempty"`
}

// AdminBlog is the full bilingual record returned to authors.
type AdminBlog struct {
	ID              uint64     `json:"id"`
	Title           string     `json:"title"`
	TitleHindi      string     `json:"titleHindi"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	ContentHindi    string     `json:"contentHindi"`
	Excerpt         string     `json:"excerpt"`
	ExcerptHindi    string     `json:"excerptHindi"`
	FeaturedImage   string     `json:"featuredImage"`
	Category        string     `json:"category"`
	Tags            StringList `json:"tags"`
	AuthorID        uint64     `json:"authorId"`
	IsPublished     bool       `json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    StringList `json:"metaKeywords"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewAdminBlog(e *BlogEntity) *AdminBlog {
	return &AdminBlog{
		ID:              e.ID,
		Title:           e.Title,
		TitleHindi:      e.TitleHindi,
		Slug:            e.Slug,
		Content:         e.Content,
		ContentHindi:    e.ContentHindi,
		Excerpt:         e.Excerpt,
		ExcerptHindi:    e.ExcerptHindi,
		FeaturedImage:   e.FeaturedImage,
		Category:        e.Category,
		Tags:            e.Tags,
		AuthorID:        e.AuthorID,
		IsPublished:     e.IsPublished,
		PublishedAt:     e.PublishedAt,
		MetaDescription: e.MetaDescription,
		MetaKeywords:    e.MetaKeywords,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

type BlogListResponse struct {
	Blogs      []*BlogSummary `json:"blogs"`
	Pagination Pagination     `json:"pagination"`
}

type BlogResponse struct {
	Blog *BlogDetail `json:"blog"`
}

type AdminBlogResponse struct {
	Message string     `json:"message,omitempty"`
	Blog    *AdminBlog `json:"blog"`
}

type UploadResponse struct {
	Message  string `json:"message"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
