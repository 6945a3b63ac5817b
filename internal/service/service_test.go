package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogapi/blogapi-go/internal/crypto"
	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/repository"
)

const testSecret = "test-secret-test-secret-test-secret"

var errStoreDown = errors.New("store down")

// failingUserStore returns errStoreDown from every call.
type failingUserStore struct{}

func (failingUserStore) Create(context.Context, *model.User) error { return errStoreDown }
func (failingUserStore) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, errStoreDown
}
func (failingUserStore) GetByID(context.Context, int64) (*model.User, error) {
	return nil, errStoreDown
}

type testEnv struct {
	users  *repository.MemoryUserRepository
	blogs  *repository.MemoryBlogRepository
	hasher *crypto.Hasher
	tokens *crypto.TokenService
	auth   *AuthService
	user   *UserService
	blog   *BlogService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:  repository.NewMemoryUserRepository(),
		blogs:  repository.NewMemoryBlogRepository(),
		hasher: crypto.NewHasher(bcrypt.MinCost),
		tokens: crypto.NewTokenService(testSecret, time.Minute),
	}
	env.auth = NewAuthService(env.users, env.hasher, env.tokens)
	env.user = NewUserService(env.users, env.hasher)
	env.blog = NewBlogService(env.blogs)
	return env
}

// register creates a user and returns the stored record.
func (env *testEnv) register(t *testing.T, name, email, password string) *model.User {
	t.Helper()
	resp, err := env.user.Create(context.Background(), model.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	user, err := env.users.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	return user
}
