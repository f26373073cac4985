package preferences

import (
	"net/http"

	"tamilsangam-app/internal/content"
	"tamilsangam-app/internal/prefs"

	"github.com/gin-gonic/gin"
)

// Handler serves the persisted language and accessibility preferences,
// read at startup and written on toggle.
type Handler struct {
	Prefs    *prefs.Store
	Resolver *content.Resolver
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"language":     h.Prefs.Get(prefs.KeyLanguage, content.LangEnglish),
		"highContrast": h.Prefs.Get(prefs.KeyHighContrast, "false") == "true",
		"fontSize":     h.Prefs.Get(prefs.KeyFontSize, "normal"),
	})
}

func (h *Handler) Update(c *gin.Context) {
	var input struct {
		Language     *string `json:"language"`
		HighContrast *bool   `json:"highContrast"`
		FontSize     *string `json:"fontSize"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Language != nil {
		if *input.Language != content.LangEnglish && *input.Language != content.LangTamil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "language must be english or tamil"})
			return
		}
		// persists through the resolver so lookups switch immediately
		h.Resolver.SetLanguage(*input.Language)
	}
	if input.HighContrast != nil {
		value := "false"
		if *input.HighContrast {
			value = "true"
		}
		if err := h.Prefs.Set(prefs.KeyHighContrast, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
			return
		}
	}
	if input.FontSize != nil {
		if err := h.Prefs.Set(prefs.KeyFontSize, *input.FontSize); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
			return
		}
	}

	h.Get(c)
}
