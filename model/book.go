// model/book.go
package model

import "time"

type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn,omitempty"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	Image       string    `json:"image"`
	Stock       int64     `json:"stock"`
	Rating      float64   `json:"rating"`
	SellerID    int64     `json:"sellerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Categories is the closed set a book may belong to. "all" is a query
// sentinel, never a stored value.
var Categories = []string{
	"Fiction",
	"Non-fiction",
	"Children",
	"Science",
	"Biographies",
	"Self-help",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
