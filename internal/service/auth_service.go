package service

import (
	"context"
	"errors"
	"time"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/credstore"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/jwtutil"
)

var (
	ErrBadLoginResponse = errors.New("login response is missing a token")
	ErrNotLoggedIn      = errors.New("no user is logged in")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*model.User, error)
	// CurrentUser returns the locally stored user snapshot without a network
	// round trip.
	CurrentUser() (*model.User, error)
}

type authService struct {
	client *httpclient.Client
	creds  credstore.Store
}

func NewAuthService(client *httpclient.Client, creds credstore.Store) AuthService {
	return &authService{client: client, creds: creds}
}

// Login exchanges credentials for a bearer token and persists both the token
// and the user snapshot under the shared storage keys.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	body := map[string]any{"email": email, "password": password}
	res, err := s.client.Post(ctx, endpoints.Auth.Login, body)
	if err != nil {
		return nil, err
	}

	payload, ok := res.Data.(map[string]any)
	if !ok {
		return nil, ErrBadLoginResponse
	}
	token, _ := payload["token"].(string)
	if token == "" {
		return nil, ErrBadLoginResponse
	}

	user := &model.User{}
	if rawUser, ok := payload["user"]; ok {
		if err := decodeItem(rawUser, user); err != nil {
			return nil, err
		}
	}
	user.Normalize()

	if err := s.creds.Set(credstore.KeyToken, token); err != nil {
		return nil, err
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.creds.Set(credstore.KeyUser, string(rawUser)); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout tells the server best-effort, then always clears local credentials.
func (s *authService) Logout(ctx context.Context) error {
	_, err := s.client.Post(ctx, endpoints.Auth.Logout, nil)
	credstore.ClearAuth(s.creds)
	return err
}

func (s *authService) Profile(ctx context.Context) (*model.User, error) {
	res, err := s.client.Get(ctx, endpoints.Auth.Profile, nil)
	if err != nil {
		return nil, err
	}
	user := &model.User{}
	if err := decodeItem(res.Data, user); err != nil {
		return nil, err
	}
	user.Normalize()
	return user, nil
}

func (s *authService) CurrentUser() (*model.User, error) {
	token, err := s.creds.Get(credstore.KeyToken)
	if err != nil {
		return nil, ErrNotLoggedIn
	}
	// Proactive expiry check; an expired token is treated the same as a 401.
	// Opaque tokens pass through, the server stays the authority for those.
	if claims, err := jwtutil.Decode(token); err == nil && claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		credstore.ClearAuth(s.creds)
		return nil, ErrNotLoggedIn
	}
	raw, err := s.creds.Get(credstore.KeyUser)
	if err != nil {
		return nil, ErrNotLoggedIn
	}
	user := &model.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, err
	}
	return user, nil
}
