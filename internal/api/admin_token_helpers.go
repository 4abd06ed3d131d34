package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const adminTokenPurpose = "admin"

func (handler *Handler) setAdminCookie(c *fiber.Ctx) error {
	token, err := handler.buildAdminToken(adminTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(adminTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAdminCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildAdminToken(ttl time.Duration) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Purpose: adminTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminTokenPurpose,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseAdminToken(tokenString string) error {
	claims := adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Purpose != adminTokenPurpose {
		return errors.New("invalid token purpose")
	}
	return nil
}
