package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"markethub/internal/domain/entity"
	repo "markethub/internal/domain/repository"
	"markethub/pkg/apperr"
	"markethub/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type CreateUserInput struct {
	Email      string
	Password   string
	Name       string
	PictureURL string
}

type UpdateUserInput struct {
	Email      *string
	Password   *string
	Name       *string
	PictureURL *string
}

// CreateUser persists a new user after checking email uniqueness and
// hashing the password. The pre-check races with concurrent creates; the
// unique index on email is the backstop.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "user with this email already exists")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	u, err := s.Repo.Create(ctx, &entity.User{
		Email:      in.Email,
		Password:   hash,
		Name:       in.Name,
		PictureURL: in.PictureURL,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID.Hex()).Info("user created")
	}
	return u, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list users", err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return u, nil
}

// UpdateUser applies a partial update. An email change is re-checked for
// uniqueness against other users; updating to the user's own current email
// passes without a check. A supplied password is re-hashed before it is
// persisted.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	if current == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}

	if in.Email != nil && *in.Email != current.Email {
		taken, err := s.Repo.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to check email", err)
		}
		if taken != nil {
			return nil, apperr.New(apperr.Conflict, "email already in use")
		}
	}

	patch := entity.UserPatch{
		Email:      in.Email,
		Name:       in.Name,
		PictureURL: in.PictureURL,
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
		}
		patch.Password = &hash
	}

	updated, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update user", err)
	}
	if updated == nil {
		// the record vanished between the existence check and the read-back
		return nil, apperr.New(apperr.Internal, "failed to update user")
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user updated")
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to load user", err)
	}
	if u == nil {
		return apperr.New(apperr.NotFound, "user not found")
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete user", err)
	}
	if !deleted {
		return apperr.New(apperr.Internal, "failed to delete user")
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return nil
}
