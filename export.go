package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/models"
	"github.com/volttrack/mis_backend/models/reports"
)

// GET /api/records/export — xlsx of the whole collection.
func exportRecordsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := reports.RecordsWorkbook(recordStore.Load().All())
		if err != nil {
			config.LogError(config.GetLogger(), "export.go", "exportRecordsHandler", "build workbook", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename="+reports.ExportFilename(models.Today()))
		if err := f.Write(c.Writer); err != nil {
			config.LogError(config.GetLogger(), "export.go", "exportRecordsHandler", "write workbook", nil, err)
		}
	}
}
