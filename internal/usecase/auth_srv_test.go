package usecase

import (
	"context"
	"testing"

	"media-review/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(username, password, confirm string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	repo := newTestRepo()
	users := repo.User.(*fakeUserRepo)
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("alice", "secret", "different"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")

	// The mismatch is caught before any account is written.
	assert.Zero(t, users.createCalls)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newTestRepo()
	users := repo.User.(*fakeUserRepo)
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("alice", "secret", "secret"))
	require.NoError(t, err)

	_, err = service.Auth.Register(context.Background(), registerReq("alice", "other", "other"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.Equal(t, 1, users.createCalls)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newTestRepo()
	users := repo.User.(*fakeUserRepo)
	service := newTestService(repo)

	resp, err := service.Auth.Register(context.Background(), registerReq("bob", "secret", "secret"))
	require.NoError(t, err)

	assert.Equal(t, "bob", resp.Username)
	assert.Empty(t, resp.Token)

	user := users.users["bob"]
	require.NotNil(t, user)
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestLoginSuccessCreatesSession(t *testing.T) {
	repo := newTestRepo()
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("carol", "secret", "secret"))
	require.NoError(t, err)

	resp, err := service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "carol",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestLoginFailureIsUniform(t *testing.T) {
	repo := newTestRepo()
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("dave", "secret", "secret"))
	require.NoError(t, err)

	_, unknownErr := service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "secret",
	})
	_, wrongPassErr := service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "dave",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	// Same message either way, so the caller cannot probe for usernames.
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newTestRepo()
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("erin", "secret", "secret"))
	require.NoError(t, err)

	resp, err := service.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "erin",
		Password: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, service.Auth.Logout(context.Background(), resp.Token))

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutMalformedTokenIsNoop(t *testing.T) {
	service := newTestService(newTestRepo())

	assert.NoError(t, service.Auth.Logout(context.Background(), "not-a-uuid"))
	assert.NoError(t, service.Auth.Logout(context.Background(), ""))
}
