package fallback

import (
	"context"
	"testing"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/credstore"
	"go-backoffice-client/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, store *Store) *model.User {
	t.Helper()
	users := NewUserService(store)
	user, err := users.Create(context.Background(), model.UserInput{
		FirstName: "Amina",
		LastName:  "Khan",
		Email:     "amina@example.com",
		Password:  "secret123",
		Permissions: map[string]bool{
			model.PermDashboard: true,
			model.PermProducts:  true,
			model.PermOrders:    true,
			model.PermCustomers: true,
		},
	})
	require.NoError(t, err)
	return user
}

func TestUserCreateDerivesRoleAndHidesPassword(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store)

	assert.Equal(t, "Amina Khan", user.Name)
	assert.Equal(t, string(model.RolePanelUser), user.Role)
	assert.Equal(t, "active", user.Status)
	assert.True(t, user.IsActive)
}

func TestUserCreateFromFullName(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)

	user, err := users.CreateFromFullName(context.Background(), "Jean Claude Van Damme", model.UserInput{
		Email:    "jc@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean", user.FirstName)
	assert.Equal(t, "Claude Van Damme", user.LastName)
	assert.Equal(t, "Jean Claude Van Damme", user.Name)
}

func TestUserCreateRequiresPassword(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)

	_, err := users.Create(context.Background(), model.UserInput{
		FirstName: "Amina",
		LastName:  "Khan",
		Email:     "amina@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")
}

func TestUserToggleStatus(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)
	user := seedUser(t, store)

	require.NoError(t, users.ToggleStatus(context.Background(), user.ID, "active"))

	page, err := users.List(context.Background(), model.ListFilter{})
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "inactive", page.Users[0].Status)
	assert.False(t, page.Users[0].IsActive)
}

func TestLoginStoresSession(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store)
	creds := credstore.NewMemory()
	auth := NewAuthService(store, creds)

	user, err := auth.Login(context.Background(), "amina@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", user.Email)

	token, err := creds.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	current, err := auth.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store)
	auth := NewAuthService(store, credstore.NewMemory())
	ctx := context.Background()

	_, err := auth.Login(ctx, "amina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store)
	creds := credstore.NewMemory()
	auth := NewAuthService(store, creds)
	ctx := context.Background()

	_, err := auth.Login(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	_, err = auth.CurrentUser()
	assert.Error(t, err)
	_, err = creds.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestValidatorRejectsBadEmail(t *testing.T) {
	errs := validator.ValidateStruct(&model.UserInput{
		FirstName: "Amina",
		LastName:  "Khan",
		Email:     "not-an-email",
		Password:  "secret123",
	})
	require.NotEmpty(t, errs)
	assert.Equal(t, "email", errs[0].Tag)
}
