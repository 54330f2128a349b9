// app/echoServer/controller/user/userController.go
package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/jwtx"
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/validation"
	"github.com/VirakOTAKU/book-selling-platform/model"
	usersvc "github.com/VirakOTAKU/book-selling-platform/service/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Profile
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /users/profile [get]
func (ct *Controller) Profile(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	u, err := ct.Svc.Profile(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, usersvc.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		ct.Log.Error("profile fetch failed", "err", err, "user_id", uid)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateProfile
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  model.UpdateProfileReq  true  "Profile payload"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /users/profile [put]
func (ct *Controller) UpdateProfile(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req model.UpdateProfileReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	u, err := ct.Svc.UpdateProfile(c.Request().Context(), uid, req)
	if err != nil {
		if errors.Is(err, usersvc.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		ct.Log.Error("profile update failed", "err", err, "user_id", uid)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, u)
}
