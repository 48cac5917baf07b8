package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/pagination"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

// UserService handles the cashier directory
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the input for creating a user. Username and
// password are optional; supplying both gives the user a login credential.
type CreateUserInput struct {
	Name     string
	Username *string
	Password string
	Role     string
}

// CreateUser registers a new cashier
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "is required",
		})
	}
	if input.Username != nil && *input.Username == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "username", Message: "must not be empty",
		})
	}
	if input.Password != "" && len(input.Password) < 8 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "password", Message: "must be at least 8 characters",
		})
	}
	if input.Password != "" && input.Username == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "username", Message: "is required when a password is set",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.Username != nil {
		existing, err := s.userRepo.GetByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Username already taken")
		}
	}

	user := &entity.User{
		Name:     input.Name,
		Username: input.Username,
		Role:     input.Role,
	}
	if user.Role == "" {
		user.Role = "cashier"
	}
	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateUserInput represents the input for updating a user
type UpdateUserInput struct {
	Name     *string
	Username *string
	Password *string
	Role     *string
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "must not be empty"},
			})
		}
		user.Name = *input.Name
	}
	if input.Username != nil {
		if *input.Username == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "username", Message: "must not be empty"},
			})
		}
		existing, err := s.userRepo.GetByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Username already taken")
		}
		user.Username = input.Username
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "password", Message: "must be at least 8 characters"},
			})
		}
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	now := time.Now()
	user.ModifiedAt = &now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user from the directory
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}

// ListUsers retrieves all users with pagination
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.User], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, meta), nil
}
