package contact

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

type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error)
	List(ctx context.Context, filter *model.ContactFilter) ([]*model.ContactEntity, int64, error)
	UpdateStatus(ctx context.Context, data *model.ContactEntity) error
	Count(ctx context.Context, status constant.ContactStatus) (int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	insertContactQuery = `INSERT INTO contacts (name, email, mobile, subject, message, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	contactColumns     = `id, name, email, mobile, subject, message, status, created_at, updated_at`
	getContactByID     = `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`
	listContactBase    = `SELECT ` + contactColumns + ` FROM contacts WHERE true`
	countContacts      = `SELECT COUNT(*) FROM contacts WHERE true`
	updateContactQuery = `UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.Name, data.Email, data.Mobile, data.Subject, data.Message, data.Status, data.CreatedAt, data.UpdatedAt)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, getContactByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ContactFilter) ([]*model.ContactEntity, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countContacts+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	items := make([]*model.ContactEntity, 0)
	query := listContactBase + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	if err := s.conn.SelectContext(ctx, &items, query, append(args, filter.PerPage, offset)...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, data *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, updateContactQuery, data.Status, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) Count(ctx context.Context, status constant.ContactStatus) (int64, error) {
	query := countContacts
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
