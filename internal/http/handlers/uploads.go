package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/shared/apperr"
	"matajer.app/internal/storage"
)

const maxUploadBytes = 5 << 20 // 5 MiB

type UploadsHandler struct {
	store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Upload receives one multipart image and returns its public URL. The
// dashboard then saves that URL on the store or product record.
func (h *UploadsHandler) Upload(c *gin.Context) {
	if _, ok := middleware.CurrentStore(c); !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("أرفق ملفاً واحداً باسم file.", nil))
		return
	}
	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("حجم الملف يتجاوز الحد المسموح (5MB).", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.store.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": res.Key, "url": res.URL})
}
