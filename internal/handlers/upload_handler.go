package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucUpload "github.com/BruksfildServices01/flatmate-finder/internal/usecase/upload"
)

const MessageMissingFile = "An image file is required in the \"file\" field"

type UploadHandler struct {
	maxBytes int64
	image    *ucUpload.Image
}

func NewUploadHandler(maxBytes int64, image *ucUpload.Image) *UploadHandler {
	return &UploadHandler{
		maxBytes: maxBytes,
		image:    image,
	}
}

func (h *UploadHandler) Image(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, httperr.TooLarge(httperr.MessageTooLarge))
			return
		}
		httperr.Respond(c, httperr.BadRequest(MessageMissingFile))
		return
	}

	if fh.Size > h.maxBytes {
		httperr.Respond(c, httperr.TooLarge(httperr.MessageTooLarge))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if int64(len(data)) > h.maxBytes {
		httperr.Respond(c, httperr.TooLarge(httperr.MessageTooLarge))
		return
	}

	url, err := h.image.Execute(c.Request.Context(), ucUpload.ImageInput{
		UserID: middleware.CurrentUser(c).ID,
		Data:   data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Image uploaded successfully", dto.UploadResult{URL: url})
}
