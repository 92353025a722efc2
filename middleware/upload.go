package middleware

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"carmart/config"

	"github.com/gofiber/fiber/v2"
)

// MaxImageSize is the upload limit for car images.
const MaxImageSize = 500 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// ImageUpload saves the multipart "image" file to the upload directory as
// <timestamp>-<originalName> and stashes the stored filename in Locals for
// the controller. A request without a file passes through untouched: create
// enforces image presence at the store layer, update keeps the stored image.
func ImageUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Next()
		}

		if file.Size > MaxImageSize {
			return ErrorResponse(c, fiber.StatusBadRequest, "Image size limit exceeds 500 KB", nil)
		}
		if !allowedImageTypes[file.Header.Get("Content-Type")] {
			return ErrorResponse(c, fiber.StatusBadRequest,
				"Invalid Image. Only images with .png, .jpg are allowed!", nil)
		}

		destDir := config.AppConfig.UploadDir
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return ErrorResponse(c, fiber.StatusInternalServerError,
				"Some error occured while uploading image", nil)
		}

		filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
		if err := c.SaveFile(file, filepath.Join(destDir, filename)); err != nil {
			return ErrorResponse(c, fiber.StatusInternalServerError,
				"Some error occured while uploading image", nil)
		}

		c.Locals("imageFilename", filename)
		return c.Next()
	}
}
