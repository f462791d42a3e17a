package feedback

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/model"
)

type SQL struct {
	conn *sqlx.DB
}

type FeedbackRepository interface {
	Create(ctx context.Context, data *model.FeedbackEntity) (*model.FeedbackEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.FeedbackEntity, error)
	List(ctx context.Context, filter *model.FeedbackFilter) ([]*model.FeedbackEntity, int64, error)
	UpdatePublication(ctx context.Context, data *model.FeedbackEntity) error
	Count(ctx context.Context, published *bool) (int64, error)
}

func NewFeedbackRepository(conn *sqlx.DB) FeedbackRepository {
	return &SQL{conn: conn}
}

const (
	insertFeedbackQuery = `INSERT INTO feedback (name, email, rating, comments, service, is_published, is_verified, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	feedbackColumns        = `id, name, email, rating, comments, service, is_published, is_verified, created_at, updated_at`
	getFeedbackByID        = `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = ?`
	listFeedbackBase       = `SELECT ` + feedbackColumns + ` FROM feedback WHERE true`
	countFeedback          = `SELECT COUNT(*) FROM feedback WHERE true`
	updatePublicationQuery = `UPDATE feedback SET is_published = ?, is_verified = ?, updated_at = ? WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.FeedbackEntity) (*model.FeedbackEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertFeedbackQuery,
		data.Name, data.Email, data.Rating, data.Comments, data.Service, data.IsPublished, data.IsVerified, data.CreatedAt, data.UpdatedAt)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.FeedbackEntity, error) {
	var entity model.FeedbackEntity
	if err := s.conn.QueryRowxContext(ctx, getFeedbackByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns feedback newest first. A nil Published matches both states.
func (s *SQL) List(ctx context.Context, filter *model.FeedbackFilter) ([]*model.FeedbackEntity, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.Published != nil {
		where += " AND is_published = ?"
		args = append(args, *filter.Published)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countFeedback+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	items := make([]*model.FeedbackEntity, 0)
	query := listFeedbackBase + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	if err := s.conn.SelectContext(ctx, &items, query, append(args, filter.PerPage, offset)...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) UpdatePublication(ctx context.Context, data *model.FeedbackEntity) error {
	_, err := s.conn.ExecContext(ctx, updatePublicationQuery, data.IsPublished, data.IsVerified, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Count(ctx context.Context, published *bool) (int64, error) {
	query := countFeedback
	args := make([]any, 0, 1)
	if published != nil {
		query += " AND is_published = ?"
		args = append(args, *published)
	}
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
