package fallback

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/validator"

	"golang.org/x/crypto/bcrypt"
)

// userRecord is the stored shape; the hash never leaves this package.
type userRecord struct {
	model.User
	PasswordHash string `json:"passwordHash"`
}

type userStore struct {
	store *Store
}

func NewUserService(store *Store) service.UserService {
	return &userStore{store: store}
}

func (u *userStore) List(ctx context.Context, filter model.ListFilter) (model.UserPage, error) {
	var matched []model.User
	err := u.store.forEach(bucketUsers, func(raw []byte) error {
		var record userRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		if !matchText(record.Name, filter.Search) && !matchText(record.Email, filter.Search) {
			return nil
		}
		if !matchExact(record.Status, filter.Status) {
			return nil
		}
		matched = append(matched, record.User)
		return nil
	})
	if err != nil {
		return model.UserPage{}, err
	}
	start, end := pageBounds(len(matched), filter.Page, filter.Limit)
	return model.UserPage{Users: matched[start:end], Total: len(matched)}, nil
}

func (u *userStore) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("Validation failed: Field 'UserInput.Password' failed on tag 'required'")
	}
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	record := userRecord{PasswordHash: string(hash)}
	record.ID = u.store.nextID()
	record.FirstName = in.FirstName
	record.LastName = in.LastName
	record.Email = in.Email
	record.Phone = in.Phone
	record.Permissions = in.GrantedPermissions()
	record.Role = in.Role
	record.IsActive = true
	record.Normalize()

	if err := u.store.putJSON(bucketUsers, record.ID, record); err != nil {
		return nil, err
	}
	user := record.User
	return &user, nil
}

func (u *userStore) CreateFromFullName(ctx context.Context, fullName string, in model.UserInput) (*model.User, error) {
	in.FirstName, in.LastName = model.SplitFullName(fullName)
	return u.Create(ctx, in)
}

func (u *userStore) Update(ctx context.Context, id string, in model.UserInput) (*model.User, error) {
	record := &userRecord{}
	if err := u.store.getJSON(bucketUsers, id, record); err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		record.FirstName = in.FirstName
	}
	if in.LastName != "" {
		record.LastName = in.LastName
	}
	if in.Email != "" {
		record.Email = in.Email
	}
	if in.Phone != "" {
		record.Phone = in.Phone
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		record.PasswordHash = string(hash)
	}
	if in.Permissions != nil {
		record.Permissions = in.GrantedPermissions()
		record.Role = string(model.RoleFromPermissions(record.Permissions))
	}
	if in.Role != "" {
		record.Role = in.Role
	}
	if in.IsActive != nil {
		record.IsActive = *in.IsActive
		record.Status = statusLabel(record.IsActive)
	}
	record.Name = ""
	record.Normalize()

	if err := u.store.putJSON(bucketUsers, id, record); err != nil {
		return nil, err
	}
	user := record.User
	return &user, nil
}

func (u *userStore) Delete(ctx context.Context, id string) error {
	return u.store.deleteRecord(bucketUsers, id)
}

func (u *userStore) ToggleStatus(ctx context.Context, id, currentStatus string) error {
	active := currentStatus != "active"
	in := model.UserInput{IsActive: &active}
	_, err := u.Update(ctx, id, in)
	return err
}

// findByEmail supports fallback-mode login.
func (u *userStore) findByEmail(email string) (*userRecord, error) {
	var found *userRecord
	err := u.store.forEach(bucketUsers, func(raw []byte) error {
		var record userRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		if record.Email == email {
			found = &record
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrRecordNotFound
	}
	return found, nil
}
