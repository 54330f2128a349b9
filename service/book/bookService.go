package booksvc

import (
	"context"
	"errors"

	"github.com/VirakOTAKU/book-selling-platform/catalog"
	"github.com/VirakOTAKU/book-selling-platform/model"
	bookrepo "github.com/VirakOTAKU/book-selling-platform/repository/book"
	metadatarepo "github.com/VirakOTAKU/book-selling-platform/repository/metadata"
)

var (
	ErrBadInput  = errors.New("invalid payload")
	ErrForbidden = errors.New("not authorized")
	ErrNotFound  = errors.New("book not found")
)

// Update carries the mutable fields of a book; nil means "leave as is".
type Update struct {
	Title       *string
	Author      *string
	Description *string
	Category    *string
	Price       *float64
	Discount    *float64
	Stock       *int64
	Image       *string
}

type Service interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, p catalog.Params) ([]model.Book, int, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, actorID int64, actorRole model.Role, id int64, upd Update) (*model.Book, error)
	Delete(ctx context.Context, actorID int64, actorRole model.Role, id int64) error
}

type service struct {
	br bookrepo.Repo
	mr metadatarepo.Repo
}

func New(br bookrepo.Repo, mr metadatarepo.Repo) Service { return &service{br: br, mr: mr} }

// CanMutate is the ownership rule for book mutations: the owning
// seller, or an admin. Role checks alone cannot express it, the target
// record must already be loaded.
func CanMutate(actorID int64, actorRole model.Role, b *model.Book) bool {
	return b.SellerID == actorID || actorRole == model.RoleAdmin
}

func (s *service) Create(ctx context.Context, b *model.Book) error {
	if b.Title == "" || b.Author == "" || b.Price < 0 || !model.ValidCategory(b.Category) {
		return ErrBadInput
	}
	if b.ISBN == "" && s.mr != nil {
		// Best effort: a provider miss or outage never blocks the create.
		if isbn, err := s.mr.LookupISBN(b.Title, b.Author); err == nil {
			b.ISBN = isbn
		}
	}
	return s.br.Create(ctx, b)
}

func (s *service) List(ctx context.Context, p catalog.Params) ([]model.Book, int, error) {
	return s.br.List(ctx, p)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.br.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, actorID int64, actorRole model.Role, id int64, upd Update) (*model.Book, error) {
	b, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actorID, actorRole, b) {
		return nil, ErrForbidden
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	if upd.Category != nil {
		b.Category = *upd.Category
	}
	if upd.Price != nil {
		b.Price = *upd.Price
	}
	if upd.Discount != nil {
		b.Discount = *upd.Discount
	}
	if upd.Stock != nil {
		b.Stock = *upd.Stock
	}
	if upd.Image != nil {
		b.Image = *upd.Image
	}

	if b.Title == "" || b.Author == "" || b.Price < 0 || !model.ValidCategory(b.Category) {
		return nil, ErrBadInput
	}

	if err := s.br.Update(ctx, b); err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, actorID int64, actorRole model.Role, id int64) error {
	b, err := s.Detail(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(actorID, actorRole, b) {
		return ErrForbidden
	}
	if err := s.br.Delete(ctx, id); err != nil {
		if errors.Is(err, bookrepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
