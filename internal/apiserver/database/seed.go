package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmchainx/farmchainx/internal/common/config"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RepairResult counts the rows touched by RepairUsers
type RepairResult struct {
	Roles     int
	Passwords int
	Approvals int
}

// RepairUsers fixes legacy rows: misspelled roles, plaintext passwords and
// unapproved accounts. Every user is approved on startup.
func RepairUsers(ctx context.Context, db Database, logger *zap.Logger) (*RepairResult, error) {
	result := &RepairResult{}
	err := db.Transaction(ctx, func(ctx context.Context) error {
		users, err := db.ListUsers(ctx)
		if err != nil {
			return err
		}

		for _, u := range users {
			changed := false

			if role := NormalizeRole(string(u.Role)); role != u.Role {
				logger.Info("repairing user role",
					zap.Uint("user_id", u.ID),
					zap.String("from", string(u.Role)),
					zap.String("to", string(role)))
				u.Role = role
				result.Roles++
				changed = true
			}

			if _, err := bcrypt.Cost([]byte(u.Password)); err != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash password of user %d: %w", u.ID, err)
				}
				logger.Info("rehashing plaintext password", zap.Uint("user_id", u.ID))
				u.Password = string(hash)
				result.Passwords++
				changed = true
			}

			if !u.Approved {
				u.Approved = true
				result.Approvals++
				changed = true
			}

			if changed {
				if err := db.UpdateUser(ctx, u); err != nil {
					return fmt.Errorf("failed to repair user %d: %w", u.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InitSuperAdmin creates the configured ADMIN account when its email is not
// registered yet. It reports whether an account was created.
func InitSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig) (bool, error) {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		return false, nil
	}

	_, err := db.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash super admin password: %w", err)
	}

	fullName := cfg.FullName
	if fullName == "" {
		fullName = "Super Admin"
	}

	admin := &User{
		Email:    cfg.Email,
		Password: string(hash),
		FullName: fullName,
		Role:     RoleAdmin,
		Approved: true,
	}
	if err := db.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create super admin: %w", err)
	}
	return true, nil
}
