package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/service"
)

type ImageHTTP struct {
	Svc *service.ImageService
}

func (h *ImageHTTP) UploadPicture(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.upload_picture")

	productID, err := uuid.Parse(c.FormValue("productId"))
	if err != nil {
		l.Warn("upload_picture_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Product not found.")
	}

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn("upload_picture_error", "status", 400, "reason", "missing file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	src, err := file.Open()
	if err != nil {
		l.Warn("upload_picture_error", "status", 400, "reason", "unreadable file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	defer src.Close()

	url, err := h.Svc.Upload(ctx, productID, file.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("upload_picture_error", "status", 400, "reason", "product missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Product not found.")
		case errors.Is(err, service.ErrConflict):
			l.Warn("upload_picture_error", "status", 400, "reason", "image exists", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "An image already exists for this product.")
		case errors.Is(err, service.ErrValidation):
			l.Warn("upload_picture_error", "status", 400, "reason", "bad extension", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Only .jpg, .jpeg and .png images are allowed")
		}
		l.Error("upload_picture_error", "status", 400, "reason", "store failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to upload the image")
	}

	l.Info("upload_picture_success", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]string{"image_url": url})
}

func (h *ImageHTTP) UpdatePicture(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.update_picture")

	productID, err := uuid.Parse(c.FormValue("productId"))
	if err != nil {
		l.Warn("update_picture_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Product not found.")
	}

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn("update_picture_error", "status", 400, "reason", "missing file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	src, err := file.Open()
	if err != nil {
		l.Warn("update_picture_error", "status", 400, "reason", "unreadable file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	defer src.Close()

	url, err := h.Svc.Replace(ctx, productID, file.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_picture_error", "status", 400, "reason", "product missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Product not found.")
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_picture_error", "status", 400, "reason", "bad extension", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Only .jpg, .jpeg and .png images are allowed")
		}
		l.Error("update_picture_error", "status", 400, "reason", "store failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to upload the image")
	}

	l.Info("update_picture_success", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]string{"image_url": url})
}

func (h *ImageHTTP) GetPicture(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.get_picture")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("get_picture_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Image not found")
	}

	url, err := h.Svc.GetURL(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_picture_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Image not found")
		}
		l.Error("get_picture_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, map[string]string{"image_url": url})
}

func (h *ImageHTTP) DeletePicture(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.delete_picture")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("delete_picture_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Image not found")
	}

	removed, err := h.Svc.Delete(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_picture_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Image not found")
		}
		l.Error("delete_picture_error", "status", 400, "reason", "delete failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to delete the image")
	}

	l.Info("delete_picture_success", "product_id", productID, "blob_removed", removed)
	return c.JSON(http.StatusOK, map[string]bool{"deleted": removed})
}
