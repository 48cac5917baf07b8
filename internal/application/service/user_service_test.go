package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/kipsang/scanpos-api/internal/infrastructure/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

func TestCreateUserWithoutCredential(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(infraRepo.NewUserRepository(db))

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "cashier", user.Role)
	assert.Nil(t, user.Username)
	assert.False(t, user.HasCredential())
}

func TestCreateUserPasswordRequiresUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(infraRepo.NewUserRepository(db))

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(infraRepo.NewUserRepository(db))

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Username: strPtr("alice"),
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), &CreateUserInput{
		Name:     "Other Alice",
		Username: strPtr("alice"),
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateUserSetsModifiedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(infraRepo.NewUserRepository(db))

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{Name: "Alice"})
	require.NoError(t, err)
	require.Nil(t, user.ModifiedAt)

	updated, err := svc.UpdateUser(context.Background(), user.ID, &UpdateUserInput{
		Name: strPtr("Alice B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	require.NotNil(t, updated.ModifiedAt)
}

func TestLoginAndRefresh(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(infraRepo.NewUserRepository(db))
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	authSvc := NewAuthService(infraRepo.NewUserRepository(db), jwtManager)

	_, err := userSvc.CreateUser(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Username: strPtr("alice"),
		Password: "supersecret",
	})
	require.NoError(t, err)

	tokens, err := authSvc.Login(context.Background(), "alice", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	refreshed, err := authSvc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(infraRepo.NewUserRepository(db))
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	authSvc := NewAuthService(infraRepo.NewUserRepository(db), jwtManager)

	_, err := userSvc.CreateUser(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Username: strPtr("alice"),
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = authSvc.Login(context.Background(), "alice", "wrongpassword")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = authSvc.Login(context.Background(), "nobody", "supersecret")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	// A user with no credential cannot log in even with an empty password
	_, err = userSvc.CreateUser(context.Background(), &CreateUserInput{Name: "Bob"})
	require.NoError(t, err)
	_, err = authSvc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
