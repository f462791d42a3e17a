package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, data *model.UserEntity) error
	UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, mobile, password_hash, state, occupation, language, role, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getUserBase = `SELECT id, name, email, mobile, password_hash, state, occupation, language, role, is_active, last_login_at, created_at, updated_at
FROM users WHERE true`
	updateProfileQuery   = `UPDATE users SET name = ?, state = ?, occupation = ?, language = ?, updated_at = ? WHERE id = ?`
	updateLastLoginQuery = `UPDATE users SET last_login_at = ? WHERE id = ?`
	countUsersQuery      = `SELECT COUNT(*) FROM users`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Name, data.Email, data.Mobile, data.PasswordHash, data.State, data.Occupation,
		data.Language, data.Role, data.IsActive, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns nil, nil when no user matches or the filter is empty.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Mobile != "" {
		query += " AND mobile = ?"
		args = append(args, filter.Mobile)
	}
	if len(args) == 0 {
		return nil, nil
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery, data.Name, data.State, data.Occupation, data.Language, data.UpdatedAt, data.ID)
	return err
}

func (s *SQL) UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error {
	_, err := s.conn.ExecContext(ctx, updateLastLoginQuery, at, id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countUsersQuery); err != nil {
		return 0, err
	}
	return total, nil
}
