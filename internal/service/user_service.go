package service

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/validator"
)

type UserService interface {
	List(ctx context.Context, filter model.ListFilter) (model.UserPage, error)
	Create(ctx context.Context, in model.UserInput) (*model.User, error)
	// CreateFromFullName serves the legacy add-user form that collects one
	// name field instead of first/last.
	CreateFromFullName(ctx context.Context, fullName string, in model.UserInput) (*model.User, error)
	Update(ctx context.Context, id string, in model.UserInput) (*model.User, error)
	Delete(ctx context.Context, id string) error
	// ToggleStatus flips between active and inactive through a partial update;
	// the backend has no dedicated toggle route for panel users.
	ToggleStatus(ctx context.Context, id, currentStatus string) error
}

type userService struct {
	client *httpclient.Client
}

func NewUserService(client *httpclient.Client) UserService {
	return &userService{client: client}
}

func (s *userService) List(ctx context.Context, filter model.ListFilter) (model.UserPage, error) {
	res, err := s.client.Get(ctx, endpoints.Users.List, filter.Query())
	if err != nil {
		return model.UserPage{}, err
	}
	items, total := decodePage(res.Data, "users")
	var users []model.User
	if err := decodeItems(items, &users); err != nil {
		return model.UserPage{}, err
	}
	for i := range users {
		users[i].Normalize()
	}
	return model.UserPage{Users: users, Total: total}, nil
}

func (s *userService) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("Validation failed: Field 'UserInput.Password' failed on tag 'required'")
	}
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	res, err := s.client.Post(ctx, endpoints.Users.Create, userPayload(in))
	if err != nil {
		return nil, err
	}
	return decodeUser(res)
}

func (s *userService) CreateFromFullName(ctx context.Context, fullName string, in model.UserInput) (*model.User, error) {
	in.FirstName, in.LastName = model.SplitFullName(fullName)
	return s.Create(ctx, in)
}

func (s *userService) Update(ctx context.Context, id string, in model.UserInput) (*model.User, error) {
	res, err := s.client.Put(ctx, endpoints.Build(endpoints.Users.Update, map[string]any{"id": id}), userPayload(in))
	if err != nil {
		return nil, err
	}
	return decodeUser(res)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, endpoints.Build(endpoints.Users.Delete, map[string]any{"id": id}))
	return err
}

func (s *userService) ToggleStatus(ctx context.Context, id, currentStatus string) error {
	isActive := currentStatus != "active"
	body := map[string]any{"isActive": isActive}
	_, err := s.client.Put(ctx, endpoints.Build(endpoints.Users.Update, map[string]any{"id": id}), body)
	return err
}

// userPayload shapes the wire body: the permission checkbox map collapses to
// the array of granted keys, and unset optional fields stay out of the JSON.
func userPayload(in model.UserInput) map[string]any {
	payload := map[string]any{}
	if in.FirstName != "" {
		payload["firstName"] = in.FirstName
	}
	if in.LastName != "" {
		payload["lastName"] = in.LastName
	}
	if in.Email != "" {
		payload["email"] = in.Email
	}
	if in.Phone != "" {
		payload["phone"] = in.Phone
	}
	if in.Password != "" {
		payload["password"] = in.Password
	}
	if in.Role != "" {
		payload["role"] = in.Role
	}
	if in.Permissions != nil {
		payload["permissions"] = in.GrantedPermissions()
	}
	if in.IsActive != nil {
		payload["isActive"] = *in.IsActive
	}
	return payload
}

func decodeUser(res *httpclient.Response) (*model.User, error) {
	if res.Data == nil {
		return nil, nil
	}
	user := &model.User{}
	if err := decodeItem(res.Data, user); err != nil {
		return nil, err
	}
	user.Normalize()
	return user, nil
}
