package posters

import (
	"errors"
	"net/http"

	"tamilsangam-app/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches on method for the single /api/posters route.
// Reads are public; mutations require the admin role claim set by the
// optional-auth middleware.
func (h *Handler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.list(c)
	case http.MethodPost:
		if !requireAdmin(c) {
			return
		}
		h.create(c)
	case http.MethodPut:
		if !requireAdmin(c) {
			return
		}
		h.update(c)
	case http.MethodDelete:
		if !requireAdmin(c) {
			return
		}
		h.delete(c)
	default:
		c.Header("Allow", "GET, POST, PUT, DELETE")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	}
}

func requireAdmin(c *gin.Context) bool {
	if c.GetString("role") != "admin" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin access required"})
		return false
	}
	return true
}

func (h *Handler) list(c *gin.Context) {
	params := listParamsFromQuery(c)

	res, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       res.Items,
		"pagination": res.Pagination,
		"filters":    res.Facets,
	})
}

func (h *Handler) create(c *gin.Context) {
	input, image, err := parseCreateRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if image != nil {
		if err := validateImage(image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	view, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Error()})
			return
		}
		serverError(c, err)
		return
	}

	if image != nil {
		asset, err := saveImage(c, image, view.ID)
		if err != nil {
			serverError(c, err)
			return
		}
		view, err = h.svc.Update(c.Request.Context(), view.ID, catalog.UpdateInput{File: &asset})
		if err != nil {
			serverError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    view,
		"message": "Poster created successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Poster ID is required"})
		return
	}

	var input catalog.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	view, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		var nferr *catalog.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": nferr.Error()})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
		"message": "Poster updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Poster ID is required"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		var nferr *catalog.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": nferr.Error()})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Poster deleted successfully"})
}

func serverError(c *gin.Context, err error) {
	msg := "Internal server error"
	if gin.Mode() == gin.DebugMode {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
}
