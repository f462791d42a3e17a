package consultation

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ConsultationRepository interface {
	Create(ctx context.Context, data *model.ConsultationEntity) (*model.ConsultationEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ConsultationEntity, error)
	List(ctx context.Context, filter *model.ConsultationFilter) ([]*model.ConsultationEntity, int64, error)
	UpdateStatus(ctx context.Context, data *model.ConsultationEntity) error
	Count(ctx context.Context, status constant.ConsultationStatus) (int64, error)
}

func NewConsultationRepository(conn *sqlx.DB) ConsultationRepository {
	return &SQL{conn: conn}
}

const (
	insertConsultationQuery = `INSERT INTO consultations
(user_id, name, email, mobile, state, occupation, preferred_date, preferred_time, message, consultation_type, status, is_paid, payment_amount, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	consultationColumns = `id, user_id, name, email, mobile, state, occupation, preferred_date, preferred_time, message,
consultation_type, status, assigned_expert_id, notes, follow_up_date, is_paid, payment_amount, created_at, updated_at`

	getConsultationByID  = `SELECT ` + consultationColumns + ` FROM consultations WHERE id = ?`
	listConsultationBase = `SELECT ` + consultationColumns + ` FROM consultations WHERE true`
	countConsultations   = `SELECT COUNT(*) FROM consultations WHERE true`

	updateConsultationStatus = `UPDATE consultations SET status = ?, notes = ?, updated_at = ? WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ConsultationEntity) (*model.ConsultationEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertConsultationQuery,
		data.UserID, data.Name, data.Email, data.Mobile, data.State, data.Occupation,
		data.PreferredDate, data.PreferredTime, data.Message, data.ConsultationType, data.Status,
		data.IsPaid, data.PaymentAmount, data.CreatedAt, data.UpdatedAt)
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

// GetByID returns nil, nil when the consultation does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ConsultationEntity, error) {
	var entity model.ConsultationEntity
	if err := s.conn.QueryRowxContext(ctx, getConsultationByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns one page of consultations, newest first, and the total match count.
func (s *SQL) List(ctx context.Context, filter *model.ConsultationFilter) ([]*model.ConsultationEntity, int64, error) {
	where := ""
	args := make([]any, 0, 4)
	if filter.Email != "" {
		where += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countConsultations+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := listConsultationBase + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]*model.ConsultationEntity, 0)
	for rows.Next() {
		var it model.ConsultationEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, data *model.ConsultationEntity) error {
	_, err := s.conn.ExecContext(ctx, updateConsultationStatus, data.Status, data.Notes, data.UpdatedAt, data.ID)
	return err
}

// Count counts consultations, optionally restricted to one status.
func (s *SQL) Count(ctx context.Context, status constant.ConsultationStatus) (int64, error) {
	query := countConsultations
	args := make([]any, 0, 1)
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
