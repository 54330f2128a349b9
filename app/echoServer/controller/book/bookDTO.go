package book

type CreateBookReq struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	ISBN        string  `json:"isbn"`
	Image       string  `json:"image"`
	Stock       int64   `json:"stock" validate:"gte=0"`
}

// UpdateBookReq: nil fields are untouched, so a partial PUT never
// clobbers what the client did not send.
type UpdateBookReq struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	Stock       *int64   `json:"stock"`
	Image       *string  `json:"image"`
}

type ListQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Category string `query:"category"`
	Search   string `query:"search"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}
