package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"A human readable error message"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, nil)
}
