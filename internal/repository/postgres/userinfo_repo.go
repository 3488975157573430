package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/repository"
)

const userInfoColumns = `id, created_by, created_date, modified_by, modified_date,
username, password, first_name, last_name, nickname, status, date_of_birth`

// UserInfoRepo implements repository.UserInfoRepository using PostgreSQL.
// Audit timestamps are owned here: created_date is set on insert only,
// modified_date on every write.
type UserInfoRepo struct{ db *DB }

var _ repository.UserInfoRepository = (*UserInfoRepo)(nil)

// NewUserInfoRepo constructs a user repository.
func NewUserInfoRepo(db *DB) *UserInfoRepo { return &UserInfoRepo{db: db} }

// Save upserts a user row and returns the stored state.
func (r *UserInfoRepo) Save(ctx context.Context, m *model.UserInfo) (*model.UserInfo, error) {
	const q = `
INSERT INTO user_info (id, created_by, created_date, modified_by, modified_date,
username, password, first_name, last_name, nickname, status, date_of_birth)
VALUES ($1, $2, now(), $3, now(), $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
modified_by = EXCLUDED.modified_by,
modified_date = now(),
username = EXCLUDED.username,
password = EXCLUDED.password,
first_name = EXCLUDED.first_name,
last_name = EXCLUDED.last_name,
nickname = EXCLUDED.nickname,
status = EXCLUDED.status,
date_of_birth = EXCLUDED.date_of_birth
RETURNING ` + userInfoColumns

	row := r.db.Pool.QueryRow(ctx, q,
		m.ID, m.CreatedBy, m.ModifiedBy,
		m.Username, m.Password, m.FirstName, m.LastName, m.Nickname, m.Status, dateArg(m.DateOfBirth))
	saved, err := scanUserInfo(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrAlreadyExists
		}
		return nil, err
	}
	return saved, nil
}

// FindByID selects a user by id.
func (r *UserInfoRepo) FindByID(ctx context.Context, id string) (*model.UserInfo, error) {
	const q = `SELECT ` + userInfoColumns + ` FROM user_info WHERE id=$1`
	u, err := scanUserInfo(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindByUsername selects a user by username.
func (r *UserInfoRepo) FindByUsername(ctx context.Context, username string) (*model.UserInfo, error) {
	const q = `SELECT ` + userInfoColumns + ` FROM user_info WHERE username=$1`
	u, err := scanUserInfo(r.db.Pool.QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindAll selects every user ordered by id.
func (r *UserInfoRepo) FindAll(ctx context.Context) ([]*model.UserInfo, error) {
	const q = `SELECT ` + userInfoColumns + ` FROM user_info ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.UserInfo
	for rows.Next() {
		u, err := scanUserInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// FindPage selects one id-ordered page of users.
func (r *UserInfoRepo) FindPage(ctx context.Context, page repository.Page) (repository.PageResult[*model.UserInfo], error) {
	var empty repository.PageResult[*model.UserInfo]

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM user_info`).Scan(&total); err != nil {
		return empty, err
	}

	number := page.Number
	if number < 0 {
		number = 0
	}
	size := page.Size
	if size <= 0 {
		size = int(total)
	}
	const q = `SELECT ` + userInfoColumns + ` FROM user_info ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, size, number*size)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	var content []*model.UserInfo
	for rows.Next() {
		u, err := scanUserInfo(rows)
		if err != nil {
			return empty, err
		}
		content = append(content, u)
	}
	if err := rows.Err(); err != nil {
		return empty, err
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return repository.PageResult[*model.UserInfo]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// DeleteByID removes a user row; deleting an absent id is a no-op.
func (r *UserInfoRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM user_info WHERE id=$1`, id)
	return err
}

// ExistsByID reports whether a user row with the id exists.
func (r *UserInfoRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_info WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

// ExistsByUsername reports whether any user holds the username.
func (r *UserInfoRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_info WHERE username=$1)`, username).Scan(&exists)
	return exists, err
}

// ExistsByUsernameExcludingID reports whether a user other than id holds the username.
func (r *UserInfoRepo) ExistsByUsernameExcludingID(ctx context.Context, username, id string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_info WHERE username=$1 AND id<>$2)`, username, id).Scan(&exists)
	return exists, err
}

func dateArg(d model.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time()
}

func scanUserInfo(row pgx.Row) (*model.UserInfo, error) {
	var (
		u   model.UserInfo
		dob *time.Time
	)
	err := row.Scan(
		&u.ID, &u.CreatedBy, &u.CreatedDate, &u.ModifiedBy, &u.ModifiedDate,
		&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Nickname, &u.Status, &dob)
	if err != nil {
		return nil, err
	}
	if dob != nil {
		u.DateOfBirth = model.NewDate(dob.Date())
	}
	return &u, nil
}
