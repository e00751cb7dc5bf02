package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Ward  string `json:"ward"`
	Role  string `json:"role"`
}

// PlanRecord is one saved plan calculation. Input and Result hold the JSON
// the handler exchanged with the client, so history round-trips every field
// without the repo knowing the calculator's types.
type PlanRecord struct {
	ID        int             `json:"id"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, ward, role string) error
	SavePlan(ctx context.Context, userID int, input, result []byte) (int, error)
	ListPlans(ctx context.Context, userID, limit int) ([]PlanRecord, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(ward, ''), COALESCE(role, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Ward, &p.Role)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, ward, role string) error {
	query := "UPDATE users SET ward=$2, role=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, ward, role)
	return err
}

func (r *PostgresUserRepository) SavePlan(ctx context.Context, userID int, input, result []byte) (int, error) {
	var id int
	query := "INSERT INTO plans (user_id, input, result, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, input, result).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListPlans(ctx context.Context, userID, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := "SELECT id, input, result, created_at FROM plans WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
