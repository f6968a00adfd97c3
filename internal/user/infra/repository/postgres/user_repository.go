package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionMarket/internal/user/domain" // Importa el dominio del usuario
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implementa la interfaz domain.UserRepository para PostgreSQL.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository crea una nueva instancia de UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID obtiene un usuario por su ID desde la base de datos.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, username, is_admin FROM users WHERE id = $1`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		// Otro error de base de datos
		return nil, err
	}

	return user, nil
}

// Save creates or updates a user, used when provisioning accounts.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (id, username, is_admin)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET username = EXCLUDED.username,
            is_admin = EXCLUDED.is_admin
    `
	_, err := r.db.Exec(ctx, query, user.ID, user.Username, user.IsAdmin)
	return err
}
