package fallback

import (
	"context"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/credstore"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authStore struct {
	users *userStore
	creds credstore.Store
}

// NewAuthService authenticates against the local user records so login keeps
// working without a reachable backend.
func NewAuthService(store *Store, creds credstore.Store) service.AuthService {
	return &authStore{users: &userStore{store: store}, creds: creds}
}

func (a *authStore) Login(ctx context.Context, email, password string) (*model.User, error) {
	record, err := a.users.findByEmail(email)
	if err != nil {
		if err == ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	user := record.User
	user.Normalize()

	if err := a.creds.Set(credstore.KeyToken, uuid.NewString()); err != nil {
		return nil, err
	}
	rawUser, err := json.Marshal(&user)
	if err != nil {
		return nil, err
	}
	if err := a.creds.Set(credstore.KeyUser, string(rawUser)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authStore) Logout(ctx context.Context) error {
	credstore.ClearAuth(a.creds)
	return nil
}

func (a *authStore) Profile(ctx context.Context) (*model.User, error) {
	return a.CurrentUser()
}

func (a *authStore) CurrentUser() (*model.User, error) {
	raw, err := a.creds.Get(credstore.KeyUser)
	if err != nil {
		return nil, service.ErrNotLoggedIn
	}
	user := &model.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, err
	}
	return user, nil
}
