// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/VirakOTAKU/book-selling-platform/model"
	userrepo "github.com/VirakOTAKU/book-selling-platform/repository/user"
	"github.com/VirakOTAKU/book-selling-platform/util/hash"
	jwtutil "github.com/VirakOTAKU/book-selling-platform/util/jwt"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, userrepo.ErrNotFound
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, userrepo.ErrNotFound
}

func (m *mockRepo) Update(ctx context.Context, u *model.User) error { return nil }

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {

			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterReq{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "a@x.com",
		Password:  "secret1",
	}

	u, tok, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "a@x.com", u.Email)
	require.Equal(t, model.RoleCustomer, u.Role)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "secret1", u.PasswordHash)

	claims, err := jwtutil.Parse("test-secret", tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, model.RoleCustomer, claims.Role)
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Email:    " ",
		Password: "123",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return userrepo.ErrDuplicateEmail
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "A",
		LastName:  "B",
		Email:     "taken@example.com",
		Password:  "123456",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "A",
		LastName:  "B",
		Email:     "ok@example.com",
		Password:  "123456",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
	require.NotErrorIs(t, err, ErrBadInput)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           7,
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleSeller,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{
		Email:    "user@example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)

	claims, err := jwtutil.Parse("test-secret", tok)
	require.NoError(t, err)
	require.Equal(t, model.RoleSeller, claims.Role)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           101,
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleCustomer,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCreds)
}

// Register then login against the real in-memory store: the token
// issued on login carries the registered identity.
func TestRegisterLogin_Roundtrip(t *testing.T) {
	ctx := context.Background()
	svc := New(userrepo.NewMemory(), "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "a@x.com",
		Password:  "secret1",
	})
	require.NoError(t, err)

	// duplicate registration is rejected, no second user created
	_, _, err = svc.Register(ctx, model.RegisterReq{
		FirstName: "Eve",
		LastName:  "Intruder",
		Email:     "A@X.com",
		Password:  "secret2",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "a@x.com", u.Email)

	claims, err := jwtutil.Parse("test-secret", tok)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, u.ID, claims.UserID)

	_, _, err = svc.Login(ctx, model.LoginReq{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
