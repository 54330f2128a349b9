package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/VirakOTAKU/book-selling-platform/model"
	userrepo "github.com/VirakOTAKU/book-selling-platform/repository/user"
	"github.com/VirakOTAKU/book-selling-platform/util/hash"
	jwtutil "github.com/VirakOTAKU/book-selling-platform/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrBadInput     = errors.New("bad input")
	ErrInvalidCreds = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || len(req.Password) < 6 {
		return nil, "", ErrBadInput
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	// Everyone registers as a customer. Role escalation is an admin
	// concern, not part of self-service signup.
	u := &model.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hashed,
		Role:         model.RoleCustomer,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u, jwtutil.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, err := s.ur.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}
	token, err := jwtutil.Issue(s.secret, u, jwtutil.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
