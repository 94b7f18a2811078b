package db

import (
	"context"
	"errors"

	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"

	"github.com/jackc/pgx/v5"
)

type AccountsRepo struct {
	db ports.IDB
}

func NewAccountsRepo(db ports.IDB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (ar *AccountsRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	q := `
	SELECT id, email, password_hash, email_confirmed, created_at
	FROM accounts
	WHERE email = $1
	`

	var account model.Account
	err := ar.db.GetPool().QueryRow(ctx, q, email).Scan(
		&account.Id,
		&account.Email,
		&account.PasswordHash,
		&account.EmailConfirmed,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, myerrors.ErrNotFound
		}
		return nil, wrapQueryError("query account by email", err)
	}

	return &account, nil
}
