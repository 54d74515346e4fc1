package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/modules/stores"
)

const ctxKeyStore = "store"

// RequireStore resolves the authenticated user's store and puts it in
// context. Dashboard routes cannot run without one; the SPA sends users
// without a store to the setup screen on 409.
func RequireStore(db *gorm.DB) gin.HandlerFunc {
	repo := stores.NewRepo(db)
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		s, err := repo.GetByOwner(c.Request.Context(), u.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":      "store setup required",
				"code":       "store_setup_required",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Set(ctxKeyStore, &s)
		c.Next()
	}
}

// CurrentStore returns the tenant loaded by RequireStore.
func CurrentStore(c *gin.Context) (*stores.Store, bool) {
	v, ok := c.Get(ctxKeyStore)
	if !ok {
		return nil, false
	}
	s, ok := v.(*stores.Store)
	return s, ok
}
