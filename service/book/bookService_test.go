// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"testing"

	"github.com/VirakOTAKU/book-selling-platform/catalog"
	"github.com/VirakOTAKU/book-selling-platform/model"
	bookrepo "github.com/VirakOTAKU/book-selling-platform/repository/book"
	booksvc "github.com/VirakOTAKU/book-selling-platform/service/book"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Book) error
	byIDFn   func(ctx context.Context, id int64) (*model.Book, error)
	updateFn func(ctx context.Context, b *model.Book) error
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context, p catalog.Params) ([]model.Book, int, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, b *model.Book) error { return m.updateFn(ctx, b) }
func (m *repoMock) Delete(ctx context.Context, id int64) error      { return m.deleteFn(ctx, id) }
func (m *repoMock) List(ctx context.Context, p catalog.Params) ([]model.Book, int, error) {
	return m.listFn(ctx, p)
}

type metaMock struct{ isbn string }

func (m *metaMock) LookupISBN(title, author string) (string, error) { return m.isbn, nil }

func ownedBook(sellerID int64) *model.Book {
	return &model.Book{
		ID:       5,
		Title:    "The Hobbit",
		Author:   "J.R.R. Tolkien",
		Category: "Fiction",
		Price:    12.5,
		SellerID: sellerID,
	}
}

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{}, nil)
	ctx := context.Background()

	cases := map[string]model.Book{
		"no title":       {Author: "a", Category: "Fiction", Price: 1},
		"no author":      {Title: "t", Category: "Fiction", Price: 1},
		"bad category":   {Title: "t", Author: "a", Category: "Cooking", Price: 1},
		"negative price": {Title: "t", Author: "a", Category: "Fiction", Price: -1},
	}
	for name, b := range cases {
		if err := s.Create(ctx, &b); err != booksvc.ErrBadInput {
			t.Fatalf("%s: got %v; want ErrBadInput", name, err)
		}
	}
}

func TestCreate_BackfillsISBN(t *testing.T) {
	var stored *model.Book
	m := &repoMock{createFn: func(ctx context.Context, b *model.Book) error {
		b.ID = 42
		stored = b
		return nil
	}}
	s := booksvc.New(m, &metaMock{isbn: "9780261103344"})

	b := ownedBook(1)
	b.ID = 0
	if err := s.Create(context.Background(), b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored.ISBN != "9780261103344" {
		t.Fatalf("isbn = %q; want backfilled", stored.ISBN)
	}
	if b.ID != 42 {
		t.Fatalf("id = %d; want 42", b.ID)
	}
}

func TestCanMutate(t *testing.T) {
	b := ownedBook(10)

	if !booksvc.CanMutate(10, model.RoleSeller, b) {
		t.Fatal("owner seller must be allowed")
	}
	if booksvc.CanMutate(11, model.RoleSeller, b) {
		t.Fatal("non-owner seller must be denied")
	}
	if !booksvc.CanMutate(11, model.RoleAdmin, b) {
		t.Fatal("admin must bypass ownership")
	}
	if booksvc.CanMutate(11, model.RoleCustomer, b) {
		t.Fatal("customer must be denied")
	}
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id int64) (*model.Book, error) { return ownedBook(10), nil },
		updateFn: func(ctx context.Context, b *model.Book) error { return nil },
	}
	s := booksvc.New(m, nil)
	ctx := context.Background()
	price := 20.0

	if _, err := s.Update(ctx, 11, model.RoleSeller, 5, booksvc.Update{Price: &price}); err != booksvc.ErrForbidden {
		t.Fatalf("non-owner update: got %v; want ErrForbidden", err)
	}

	row, err := s.Update(ctx, 11, model.RoleAdmin, 5, booksvc.Update{Price: &price})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if row.Price != 20.0 {
		t.Fatalf("price = %v; want 20", row.Price)
	}
	if row.Title != "The Hobbit" {
		t.Fatalf("untouched field changed: %q", row.Title)
	}
}

func TestUpdate_RejectsInvalidResult(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Book, error) { return ownedBook(10), nil },
	}
	s := booksvc.New(m, nil)

	bad := "Cooking"
	if _, err := s.Update(context.Background(), 10, model.RoleSeller, 5, booksvc.Update{Category: &bad}); err != booksvc.ErrBadInput {
		t.Fatalf("got %v; want ErrBadInput", err)
	}
}

func TestUpdateDelete_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Book, error) {
			return nil, bookrepo.ErrNotFound
		},
	}
	s := booksvc.New(m, nil)
	ctx := context.Background()

	if _, err := s.Update(ctx, 1, model.RoleAdmin, 99, booksvc.Update{}); err != booksvc.ErrNotFound {
		t.Fatalf("update: got %v; want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 1, model.RoleAdmin, 99); err != booksvc.ErrNotFound {
		t.Fatalf("delete: got %v; want ErrNotFound", err)
	}
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	deleted := false
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id int64) (*model.Book, error) { return ownedBook(10), nil },
		deleteFn: func(ctx context.Context, id int64) error { deleted = true; return nil },
	}
	s := booksvc.New(m, nil)
	ctx := context.Background()

	if err := s.Delete(ctx, 11, model.RoleSeller, 5); err != booksvc.ErrForbidden {
		t.Fatalf("non-owner delete: got %v; want ErrForbidden", err)
	}
	if deleted {
		t.Fatal("delete must not reach the repo on forbidden")
	}
	if err := s.Delete(ctx, 10, model.RoleSeller, 5); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if !deleted {
		t.Fatal("owner delete never reached the repo")
	}
}
