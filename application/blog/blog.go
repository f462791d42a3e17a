package blog

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	blogrepo "github.com/muhammadheryan/vastu-shakti/repository/blog"
	"github.com/muhammadheryan/vastu-shakti/repository/sqlerr"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
)

const defaultAuthor = "Vastu Shakti Team"

type BlogApp interface {
	List(ctx context.Context, query *model.BlogQuery) (*model.BlogListResponse, error)
	GetBySlug(ctx context.Context, slug string, language string) (*model.BlogDetail, error)
	Create(ctx context.Context, identity *model.Identity, req *model.BlogRequest) (*model.AdminBlog, error)
	Update(ctx context.Context, id uint64, req *model.BlogRequest) (*model.AdminBlog, error)
	SetPublished(ctx context.Context, id uint64, req *model.PublishBlogRequest) (*model.AdminBlog, error)
}

type BlogAppImpl struct {
	blogRepo blogrepo.BlogRepository
}

func NewBlogApp(blogRepo blogrepo.BlogRepository) BlogApp {
	return &BlogAppImpl{blogRepo: blogRepo}
}

// List returns published posts without their bodies. Hindi listings only include posts
// that carry a Hindi title.
func (s *BlogAppImpl) List(ctx context.Context, query *model.BlogQuery) (*model.BlogListResponse, error) {
	language := normalizeLanguage(query.Language)
	page, perPage := model.NormalizePage(query.Page, query.PerPage, constant.BlogPageSizeDefault, constant.BlogPageSizeMax)

	entities, total, err := s.blogRepo.ListPublished(ctx, &model.BlogFilter{
		HindiOnly: language == constant.LanguageHindi,
		Category:  strings.ToLower(strings.TrimSpace(query.Category)),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		logger.Error("[List] err blogRepo.ListPublished", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	blogs := make([]*model.BlogSummary, 0, len(entities))
	for _, e := range entities {
		blogs = append(blogs, summary(e, language))
	}

	return &model.BlogListResponse{
		Blogs:      blogs,
		Pagination: model.NewPagination(page, perPage, total),
	}, nil
}

func (s *BlogAppImpl) GetBySlug(ctx context.Context, slug string, language string) (*model.BlogDetail, error) {
	language = normalizeLanguage(language)

	entity, err := s.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		logger.Error("[GetBySlug] err blogRepo.GetPublishedBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || (language == constant.LanguageHindi && entity.TitleHindi == "") {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.blogRepo.IncrementViews(ctx, entity.ID); err != nil {
		logger.Warn("[GetBySlug] err blogRepo.IncrementViews", zap.Uint64("blog_id", entity.ID), zap.String("error", err.Error()))
	} else {
		entity.Views++
	}

	detail := &model.BlogDetail{
		BlogSummary:     *summary(entity, language),
		Content:         entity.Content,
		MetaDescription: entity.MetaDescription,
		MetaKeywords:    entity.MetaKeywords,
	}
	if language == constant.LanguageHindi && entity.ContentHindi != "" {
		detail.Content = entity.ContentHindi
	}
	return detail, nil
}

func (s *BlogAppImpl) Create(ctx context.Context, identity *model.Identity, req *model.BlogRequest) (*model.AdminBlog, error) {
	slug := Slugify(req.Title)
	if slug == "" {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "title", Message: "title must contain letters or digits"}})
	}

	now := time.Now()
	entity := &model.BlogEntity{AuthorID: identity.UserID, CreatedAt: now}
	apply(entity, req)
	entity.Slug = slug
	entity.UpdatedAt = now

	entity, err := s.blogRepo.Create(ctx, entity)
	if err != nil {
		if sqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrSlugExists)
		}
		logger.Error("[Create] err blogRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Create] blog created", zap.Uint64("blog_id", entity.ID), zap.String("slug", entity.Slug))
	return model.NewAdminBlog(entity), nil
}

// Update replaces the editable fields; the slug follows the title.
func (s *BlogAppImpl) Update(ctx context.Context, id uint64, req *model.BlogRequest) (*model.AdminBlog, error) {
	entity, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] err blogRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Title != entity.Title {
		slug := Slugify(req.Title)
		if slug == "" {
			return nil, errors.SetValidationError([]errors.FieldError{{Field: "title", Message: "title must contain letters or digits"}})
		}
		entity.Slug = slug
	}
	apply(entity, req)
	entity.UpdatedAt = time.Now()

	if err := s.blogRepo.Update(ctx, entity); err != nil {
		if sqlerr.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrSlugExists)
		}
		logger.Error("[Update] err blogRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewAdminBlog(entity), nil
}

// SetPublished toggles visibility. published_at records the first publication only.
func (s *BlogAppImpl) SetPublished(ctx context.Context, id uint64, req *model.PublishBlogRequest) (*model.AdminBlog, error) {
	if req.IsPublished == nil {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "isPublished", Message: "isPublished is required"}})
	}

	entity, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[SetPublished] err blogRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	entity.IsPublished = *req.IsPublished
	if entity.IsPublished && entity.PublishedAt == nil {
		entity.PublishedAt = &now
	}
	entity.UpdatedAt = now

	if err := s.blogRepo.SetPublished(ctx, entity); err != nil {
		logger.Error("[SetPublished] err blogRepo.SetPublished", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewAdminBlog(entity), nil
}

func apply(entity *model.BlogEntity, req *model.BlogRequest) {
	entity.Title = req.Title
	entity.TitleHindi = req.TitleHindi
	entity.Content = req.Content
	entity.ContentHindi = req.ContentHindi
	entity.Excerpt = req.Excerpt
	entity.ExcerptHindi = req.ExcerptHindi
	entity.FeaturedImage = req.FeaturedImage
	entity.Category = req.Category
	entity.Tags = model.StringList(req.Tags)
	entity.MetaDescription = req.MetaDescription
	entity.MetaKeywords = model.StringList(req.MetaKeywords)
}

func summary(e *model.BlogEntity, language string) *model.BlogSummary {
	out := &model.BlogSummary{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Excerpt:       e.Excerpt,
		FeaturedImage: e.FeaturedImage,
		Author:        e.AuthorName,
		Category:      e.Category,
		Tags:          e.Tags,
		Language:      constant.LanguageEnglish,
		Views:         e.Views,
		Likes:         e.Likes,
		PublishedAt:   e.PublishedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if out.Author == "" {
		out.Author = defaultAuthor
	}
	if out.Tags == nil {
		out.Tags = model.StringList{}
	}
	if language == constant.LanguageHindi {
		out.Language = constant.LanguageHindi
		out.Title = e.TitleHindi
		if e.ExcerptHindi != "" {
			out.Excerpt = e.ExcerptHindi
		}
	}
	return out
}

func normalizeLanguage(language string) string {
	if strings.EqualFold(strings.TrimSpace(language), constant.LanguageHindi) {
		return constant.LanguageHindi
	}
	return constant.LanguageEnglish
}
