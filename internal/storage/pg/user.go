package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

// =========================================================================
// Public methods (satisfy the service storage interfaces)
// =========================================================================

// SaveUserWithCredential inserts the user row and its credential row in one
// transaction. A user without a credential must never be observable: if the
// credential insert fails, the user insert rolls back with it.
func (s *Storage) SaveUserWithCredential(user domain.User, passwordHash string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		if err != nil {
			return err
		}
		return s.saveCredential(tx, domain.Credential{UserId: saved.Id, PasswordHash: passwordHash})
	})
	return saved, err
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

func (s *Storage) User(id domain.UserId) (domain.User, error) {
	return s.user(s.db, id)
}

func (s *Storage) Users() ([]domain.User, error) {
	return s.users(s.db)
}

func (s *Storage) Credential(userId domain.UserId) (domain.Credential, error) {
	return s.credential(s.db, userId)
}

func (s *Storage) DeactivateUser(id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deactivateUser(tx, id)
	})
}

func (s *Storage) UpdateUserRole(id domain.UserId, role domain.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateUserRole(tx, id, role)
	})
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	err := q.QueryRow(`
        INSERT INTO users(name, email, role, is_active)
        VALUES($1, $2, $3, $4)
        RETURNING id, created_at`,
		user.Name, user.Email, string(user.Role), user.IsActive,
	).Scan(&user.Id, &user.CreatedAt)
	if err != nil {
		if mapped := mapPqError(err, "Name or email already in use"); mapped != err {
			return domain.User{}, mapped
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) saveCredential(q Querier, cred domain.Credential) error {
	_, err := q.Exec("INSERT INTO user_credentials(user_id, password_hash) VALUES($1, $2)",
		cred.UserId, cred.PasswordHash)
	if err != nil {
		if mapped := mapPqError(err, "Credential already exists"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert credential: %w", err)
	}
	return nil
}

const userColumns = "id, name, email, role, is_active, created_at"

func scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	var role string
	err := row.Scan(&user.Id, &user.Name, &user.Email, &role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	user.Role = domain.Role(role)
	return user, nil
}

func (s *Storage) userByEmail(q Querier, email domain.Email) (domain.User, error) {
	user, err := scanUser(q.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by email: %w", err)
	}
	return user, nil
}

func (s *Storage) user(q Querier, id domain.UserId) (domain.User, error) {
	user, err := scanUser(q.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) users(q Querier) ([]domain.User, error) {
	rows, err := q.Query("SELECT " + userColumns + " FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.Id, &user.Name, &user.Email, &role, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		user.Role = domain.Role(role)
		out = append(out, user)
	}
	return out, rows.Err()
}

func (s *Storage) credential(q Querier, userId domain.UserId) (domain.Credential, error) {
	var cred domain.Credential
	err := q.QueryRow("SELECT user_id, password_hash FROM user_credentials WHERE user_id = $1", userId).
		Scan(&cred.UserId, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Credential{}, internal_errors.NotFound("Credential not found")
		}
		return domain.Credential{}, fmt.Errorf("failed to query credential: %w", err)
	}
	return cred, nil
}

func (s *Storage) deactivateUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("UPDATE users SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return requireRowsAffected(result, "User not found")
}

func (s *Storage) updateUserRole(q Querier, id domain.UserId, role domain.Role) error {
	result, err := q.Exec("UPDATE users SET role = $1 WHERE id = $2", string(role), id)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return requireRowsAffected(result, "User not found")
}

func requireRowsAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound(notFoundMsg)
	}
	return nil
}
