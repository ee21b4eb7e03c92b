package service

import (
	"context"
	"errors"
	"strings"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/nullable"
	"taskboard-backend/internal/common/validation"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/user/mapper"
	"taskboard-backend/internal/features/user/models"
	"taskboard-backend/internal/features/user/repository"
	"taskboard-backend/internal/platform/database"
)

const (
	msgEmailInUse  = "Email already in use"
	msgWalletInUse = "Wallet address already in use"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.UserSummary, error)
	GetUser(ctx context.Context, id string) (*models.UserResponse, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.UserSummary, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserResponse, error)
	DeleteUser(ctx context.Context, id string) (*models.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.UserSummary, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserSummaries(users), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	return mapper.ToUserResponse(u), nil
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.UserSummary, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Name is required")
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, apperrors.NewFieldValidationError("name", err.Error())
	}

	u := &user.User{
		Name:          name,
		Email:         validation.NilIfBlank(req.Email),
		Avatar:        validation.NilIfBlank(req.Avatar),
		WalletAddress: validation.NilIfBlank(req.WalletAddress),
		Role:          user.RoleMember,
	}
	if u.Email != nil {
		if err := validation.ValidateEmail(*u.Email); err != nil {
			return nil, apperrors.NewFieldValidationError("email", err.Error())
		}
	}
	if u.Avatar != nil {
		if err := validation.ValidateURL(*u.Avatar); err != nil {
			return nil, apperrors.NewFieldValidationError("avatar", err.Error())
		}
	}
	if req.Role != nil && strings.TrimSpace(*req.Role) != "" {
		role, err := user.ParseRole(*req.Role)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("role", err.Error())
		}
		u.Role = role
	}

	err := s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		if u.Email != nil {
			if err := ensureFree(tx.FindByEmail(ctx, *u.Email)); err != nil {
				return conflictOr(err, msgEmailInUse)
			}
		}
		if u.WalletAddress != nil {
			if err := ensureFree(tx.FindByWalletAddress(ctx, *u.WalletAddress)); err != nil {
				return conflictOr(err, msgWalletInUse)
			}
		}
		return tx.Create(ctx, u)
	})
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	return mapper.ToUserSummary(u), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserResponse, error) {
	fields := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validation.ValidateName(name); err != nil {
			return nil, apperrors.NewFieldValidationError("name", err.Error())
		}
		fields[repository.FieldName] = name
	}
	if req.Role != nil {
		role, err := user.ParseRole(*req.Role)
		if err != nil {
			return nil, apperrors.NewFieldValidationError("role", err.Error())
		}
		fields[repository.FieldRole] = role
	}
	email := optional(req.Email)
	if email.Set && email.Valid {
		if err := validation.ValidateEmail(email.V); err != nil {
			return nil, apperrors.NewFieldValidationError("email", err.Error())
		}
	}
	avatar := optional(req.Avatar)
	if avatar.Set && avatar.Valid {
		if err := validation.ValidateURL(avatar.V); err != nil {
			return nil, apperrors.NewFieldValidationError("avatar", err.Error())
		}
	}
	wallet := optional(req.WalletAddress)

	var updated *user.User
	err := s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if email.Set {
			if email.Valid && !strEqual(existing.Email, email.V, false) {
				if err := ensureFree(tx.FindByEmail(ctx, email.V)); err != nil {
					return conflictOr(err, msgEmailInUse)
				}
			}
			fields[repository.FieldEmail] = email.Ptr()
		}
		if wallet.Set {
			if wallet.Valid && !strEqual(existing.WalletAddress, wallet.V, true) {
				if err := ensureFree(tx.FindByWalletAddress(ctx, wallet.V)); err != nil {
					return conflictOr(err, msgWalletInUse)
				}
			}
			fields[repository.FieldWalletAddress] = wallet.Ptr()
		}
		if avatar.Set {
			fields[repository.FieldAvatar] = avatar.Ptr()
		}

		if err := tx.Update(ctx, id, fields); err != nil {
			return err
		}
		updated, err = tx.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err, id)
	}
	return mapper.ToUserResponse(updated), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*models.UserResponse, error) {
	var deleted *user.User
	err := s.repo.Transaction(ctx, func(tx repository.UserRepository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrReferenced) {
			return nil, apperrors.NewConflictError("User", "User still has created tasks and cannot be deleted").
				WithDetail("id", id)
		}
		return nil, mapRepoError(err, id)
	}
	return mapper.ToUserResponse(deleted), nil
}

// optional trims the value and treats an empty string as null.
func optional(v nullable.Value[string]) nullable.Value[string] {
	if !v.Set || !v.Valid {
		return v
	}
	trimmed := strings.TrimSpace(v.V)
	if trimmed == "" {
		return nullable.Null[string]()
	}
	return nullable.Of(trimmed)
}

func strEqual(current *string, next string, foldCase bool) bool {
	if current == nil {
		return false
	}
	if foldCase {
		return strings.EqualFold(*current, next)
	}
	return *current == next
}

var errTaken = errors.New("value taken")

// ensureFree turns a lookup result into errTaken when a row was found.
func ensureFree(_ *user.User, err error) error {
	if err == nil {
		return errTaken
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	return err
}

func conflictOr(err error, message string) error {
	if errors.Is(err, errTaken) {
		return apperrors.NewConflictError("User", message)
	}
	return err
}

func mapRepoError(err error, id string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return apperrors.NewNotFoundError("User", id)
	case errors.Is(err, database.ErrDuplicate):
		return apperrors.NewConflictError("User", "Email or wallet address already in use")
	}
	return err
}
