package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/adensardi/sahal/internal/domain"
	"github.com/adensardi/sahal/internal/pg"
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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, name, phone, role, is_active, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindAdmins(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, name, phone, role, is_active, created_at
        FROM users
        WHERE role = 'admin' AND is_active = TRUE
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get admin users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan admin user row", zap.Error(err))
			return nil, err
		}
		admins = append(admins, user)
	}
	return admins, nil
}

func (r *Repository) FindServiceByID(ctx context.Context, id int) (*domain.Service, error) {
	query := `
        SELECT id, professional_id, title, price, is_active, created_at
        FROM services
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var svc domain.Service
	err := row.Scan(&svc.ID, &svc.ProfessionalID, &svc.Title, &svc.Price, &svc.IsActive, &svc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return &svc, nil
}
