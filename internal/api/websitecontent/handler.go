package websitecontent

import (
	"net/http"

	"tamilsangam-app/database"
	content "tamilsangam-app/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GET /api/website-content/sections/:page
func GetSectionRecords(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Content store disabled"})
		return
	}

	var records []content.Record
	err := database.DB.
		Where("page = ?", c.Param("page")).
		Order("section_key ASC").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// GET /api/website-content/global
func GetGlobalRecords(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Content store disabled"})
		return
	}

	var records []content.Record
	err := database.DB.
		Where("page = ?", content.GlobalPage).
		Order("section_key ASC").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// POST /api/admin/website-content — create or replace one record,
// keyed by its dotted section key.
func UpsertRecord(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Content store disabled"})
		return
	}

	var input struct {
		SectionKey string       `json:"sectionKey" binding:"required"`
		Content    content.Text `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.Content.English == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "content.english is required"})
		return
	}

	page, section, ok := content.SplitKey(input.SectionKey)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "sectionKey must be of the form page.section"})
		return
	}

	record := content.Record{
		SectionKey: input.SectionKey,
		Page:       page,
		Section:    section,
		Content:    input.Content,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_english", "content_tamil", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record, "message": "Content saved"})
}
