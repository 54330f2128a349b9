// app/echoServer/jwtx/claims.go
package jwtx

import (
	"errors"

	"github.com/VirakOTAKU/book-selling-platform/model"
	jwtutil "github.com/VirakOTAKU/book-selling-platform/util/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func Claims(c echo.Context) (*jwtutil.Claims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(*jwtutil.Claims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return claims, nil
}

func UserIDFromContext(c echo.Context) (int64, error) {
	claims, err := Claims(c)
	if err != nil {
		return 0, err
	}
	if claims.UserID == 0 {
		return 0, errors.New("sub missing in claims")
	}
	return claims.UserID, nil
}

func RoleFromContext(c echo.Context) (model.Role, error) {
	claims, err := Claims(c)
	if err != nil {
		return "", err
	}
	if claims.Role == "" {
		return "", errors.New("role missing in claims")
	}
	return claims.Role, nil
}
