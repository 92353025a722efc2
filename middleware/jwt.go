package middleware

import (
	"fmt"
	"strings"
	"time"

	"carmart/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed token for the authenticated user
func GenerateJWT(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(config.AppConfig.JWTExpire).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Access Denied. No token provided", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid Authorization header format", nil)
	}

	// Extract the token part
	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		detail := ""
		if err != nil {
			detail = err.Error()
		}
		return ErrorResponse(c, fiber.StatusUnauthorized,
			"Authentication failed. Please provide a valid token", detail)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload", nil)
	}
	username, ok := claims["username"].(string)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload", nil)
	}

	c.Locals("username", username)

	return c.Next()
}
