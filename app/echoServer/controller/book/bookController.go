package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/jwtx"
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/validation"
	"github.com/VirakOTAKU/book-selling-platform/catalog"
	"github.com/VirakOTAKU/book-selling-platform/model"
	booksvc "github.com/VirakOTAKU/book-selling-platform/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /books
func (h *Controller) List(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	return h.list(c, catalog.Params{
		Category: q.Category,
		Search:   q.Search,
		Page:     q.Page,
		Limit:    q.Limit,
	})
}

// GET /books/category/:category
func (h *Controller) ListByCategory(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	return h.list(c, catalog.Params{
		Category: c.Param("category"),
		Search:   q.Search,
		Page:     q.Page,
		Limit:    q.Limit,
	})
}

func (h *Controller) list(c echo.Context, p catalog.Params) error {
	p = p.Normalize()
	rows, total, err := h.Svc.List(c.Request().Context(), p)
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"books": rows,
		"pagination": Pagination{
			Total: total,
			Page:  p.Page,
			Limit: p.Limit,
			Pages: catalog.Pages(total, p.Limit),
		},
	})
}

// GET /books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, booksvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /books  (seller/admin)
func (h *Controller) Create(c echo.Context) error {
	claims, err := jwtx.Claims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	b := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		SellerID:    claims.UserID,
	}
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		if errors.Is(err, booksvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "validation error",
				"errors":  echo.Map{"category": "must be a known category", "price": "gte 0"},
			})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /books/:id  (owner seller or admin)
func (h *Controller) Update(c echo.Context) error {
	claims, err := jwtx.Claims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}

	row, err := h.Svc.Update(c.Request().Context(), claims.UserID, claims.Role, id, booksvc.Update{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		return h.mutErr(c, "book update error", err)
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /books/:id  (owner seller or admin)
func (h *Controller) Delete(c echo.Context) error {
	claims, err := jwtx.Claims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), claims.UserID, claims.Role, id); err != nil {
		return h.mutErr(c, "book delete error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted"})
}

func (h *Controller) mutErr(c echo.Context, logMsg string, err error) error {
	switch {
	case errors.Is(err, booksvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	case errors.Is(err, booksvc.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Not authorized"})
	case errors.Is(err, booksvc.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	default:
		h.Log.Error(logMsg, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
