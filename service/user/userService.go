package usersvc

import (
	"context"
	"errors"

	"github.com/VirakOTAKU/book-selling-platform/model"
	userrepo "github.com/VirakOTAKU/book-selling-platform/repository/user"
)

var ErrNotFound = errors.New("user not found")

type Service interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileReq) (*model.User, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) Profile(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileReq) (*model.User, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = req.Phone
	u.Bio = req.Bio

	if err := s.ur.Update(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
