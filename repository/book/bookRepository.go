package bookrepo

import (
	"context"
	"errors"

	"github.com/VirakOTAKU/book-selling-platform/catalog"
	"github.com/VirakOTAKU/book-selling-platform/model"
	"github.com/VirakOTAKU/book-selling-platform/util/database"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
	// List returns one page plus the pre-pagination filtered total.
	List(ctx context.Context, p catalog.Params) ([]model.Book, int, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const bookCols = `id, title, author, COALESCE(isbn,''), description, category,
	price, discount, image, stock, rating, seller_id, created_at, updated_at`

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Description, &b.Category,
		&b.Price, &b.Discount, &b.Image, &b.Stock, &b.Rating, &b.SellerID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO books (title, author, isbn, description, category, price, discount, image, stock, seller_id)
		VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, rating, created_at, updated_at`,
		b.Title, b.Author, b.ISBN, b.Description, b.Category, b.Price, b.Discount, b.Image, b.Stock, b.SellerID,
	).Scan(&b.ID, &b.Rating, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	b := &model.Book{}
	err := scanBook(r.db.Pool.QueryRow(ctx, `SELECT `+bookCols+` FROM books WHERE id=$1`, id), b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *repo) Update(ctx context.Context, b *model.Book) error {
	err := r.db.Pool.QueryRow(ctx, `
		UPDATE books
		SET title=$2, author=$3, isbn=NULLIF($4,''), description=$5, category=$6,
		    price=$7, discount=$8, image=$9, stock=$10, updated_at=now()
		WHERE id=$1
		RETURNING updated_at`,
		b.ID, b.Title, b.Author, b.ISBN, b.Description, b.Category, b.Price, b.Discount, b.Image, b.Stock,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List reproduces catalog.Query semantics in SQL: category filter with
// the "all" sentinel, case-insensitive title/author/isbn substring
// search (NULL isbn never matches), newest-first with id as the
// tie-break, offset/limit paging.
func (r *repo) List(ctx context.Context, p catalog.Params) ([]model.Book, int, error) {
	p = p.Normalize()

	where := ` WHERE ($1 = '' OR $1 = 'all' OR category = $1)
		AND ($2 = '' OR title ILIKE '%'||$2||'%' OR author ILIKE '%'||$2||'%' OR isbn ILIKE '%'||$2||'%')`

	var total int
	if err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM books`+where, p.Category, p.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Pool.Query(ctx, `SELECT `+bookCols+` FROM books`+where+`
		ORDER BY created_at DESC, id ASC
		OFFSET $3 LIMIT $4`,
		p.Category, p.Search, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}
