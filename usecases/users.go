package usecases

import (
	"fmt"

	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/repositories"
	"github.com/john-san/rest-api/sec"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// UpdateUserInput carries the whitelisted mutable user fields. EmailAddress
// and Password are optional; empty means "leave unchanged".
type UpdateUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// Register hashes the password and creates the user. The email pre-check is
// best-effort; the store's unique index is the actual guarantee.
func (uc *UserUseCase) Register(firstName, lastName, email, password string) (*entities.User, error) {
	existing, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Message: fmt.Sprintf("a user with the email %s already exists", email)}
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		PasswordHash: hash,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		if err == repositories.ErrDuplicateKey {
			return nil, &ConflictError{Message: fmt.Sprintf("a user with the email %s already exists", email)}
		}
		return nil, err
	}
	return user, nil
}

// Authenticate resolves a user from Basic-Auth credentials. Unknown email and
// wrong password produce the same error so the endpoint is not a
// user-existence oracle.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := sec.ComparePassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateUser applies the whitelisted fields to the user's own record.
func (uc *UserUseCase) UpdateUser(current *entities.User, id string, in UpdateUserInput) error {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.ID != current.ID {
		return ErrPermissionDenied
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName

	if in.EmailAddress != "" && in.EmailAddress != user.EmailAddress {
		existing, err := uc.UserRepo.GetByEmail(in.EmailAddress)
		if err != nil {
			return err
		}
		if existing != nil {
			return &ConflictError{Message: fmt.Sprintf("a user with the email %s already exists", in.EmailAddress)}
		}
		user.EmailAddress = in.EmailAddress
	}

	if in.Password != "" {
		hash, err := sec.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.UserRepo.Update(user); err != nil {
		if err == repositories.ErrDuplicateKey {
			return &ConflictError{Message: fmt.Sprintf("a user with the email %s already exists", in.EmailAddress)}
		}
		return err
	}
	return nil
}

// DeleteUser removes the user's own record.
func (uc *UserUseCase) DeleteUser(current *entities.User, id string) error {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.ID != current.ID {
		return ErrPermissionDenied
	}
	return uc.UserRepo.Delete(id)
}
