package authController

import (
	"crypto/subtle"
	"log"

	"carmart/config"
	"carmart/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the configured admin credentials and issues a bearer token.
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if reqData.Username != config.AppConfig.AdminUsername || !passwordMatches(reqData.Password) {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized,
			"Invalid credentials. Login failed.", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Username)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError,
			"Some error occured while Log In.", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Login Successfull",
		"security": "JWT",
		"expiry":   config.AppConfig.JWTExpire.String(),
		"token":    token,
	})
}

func passwordMatches(password string) bool {
	if hash := config.AppConfig.AdminPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare(
		[]byte(config.AppConfig.AdminPassword), []byte(password)) == 1
}
