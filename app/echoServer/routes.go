package echoServer

import (
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/auth"
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/book"
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/user"
	"github.com/VirakOTAKU/book-selling-platform/model"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth *auth.Controller
	Book *book.Controller
	User *user.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/auth/register", c.Auth.Register)
	e.POST("/auth/login", c.Auth.Login)

	e.GET("/books", c.Book.List)
	e.GET("/books/category/:category", c.Book.ListByCategory)
	e.GET("/books/:id", c.Book.Detail)

	// Book mutations: coarse role gate here, ownership checked in the
	// service once the record is loaded.
	sellers := e.Group("/books", JWTAuth(c.JWTSecret), RequireRole(model.RoleSeller, model.RoleAdmin))
	sellers.POST("", c.Book.Create)
	sellers.PUT("/:id", c.Book.Update)
	sellers.DELETE("/:id", c.Book.Delete)

	// Any authenticated user
	users := e.Group("/users", JWTAuth(c.JWTSecret))
	users.GET("/profile", c.User.Profile)
	users.PUT("/profile", c.User.UpdateProfile)
}
