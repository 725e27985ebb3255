package storage

import (
	"net/http"

	"github.com/askarthikey/sellerPro/internal/api"
	"github.com/askarthikey/sellerPro/internal/service"

	"github.com/labstack/echo/v4"
)

// UploadURLHandler issues a presigned PUT URL for a product image. The
// client uploads directly to the object store and submits the returned
// imageUrl with its product.
// @Summary     Get a presigned image upload URL
// @Tags        storage
// @Produce     json
// @Success     200 {object} api.UploadURLResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /storageApi/uploadUrl [post]
func UploadURLHandler(st *service.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, uploadURL, imageURL, err := st.PresignUpload(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to presign upload"})
		}
		return c.JSON(http.StatusOK, api.UploadURLResponse{
			Key:       key,
			UploadURL: uploadURL,
			ImageURL:  imageURL,
		})
	}
}
