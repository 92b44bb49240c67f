package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	rows, err := repo.db.Query(ctx, "SELECT id FROM users WHERE email = $1", email)
	if err != nil {
		zap.L().Error("can't look up user", zap.Error(err))
		return false, err
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		found++
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't look up user", zap.Error(err))
		return false, err
	}
	return found > 0, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, email, password FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
	`
	_, err := repo.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Password)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrEmailTaken, user.Email)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}
