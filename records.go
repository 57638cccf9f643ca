package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/models"
	"github.com/volttrack/mis_backend/models/reports"
	"github.com/volttrack/mis_backend/utils"
)

// GET /api/records?search=&status=&commissioning_due_from=&commissioning_due_to=&pbg_due_from=&pbg_due_to=
//
// Active filter dimensions are ANDed; empty params impose no constraint.
// Output preserves the collection's most-recent-first order.
func listRecordsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.RecordFilter{
			SearchText:           c.Query("search"),
			Status:               c.Query("status"),
			CommissioningDueFrom: c.Query("commissioning_due_from"),
			CommissioningDueTo:   c.Query("commissioning_due_to"),
			PBGDueFrom:           c.Query("pbg_due_from"),
			PBGDueTo:             c.Query("pbg_due_to"),
		}

		store := recordStore.Load()
		records := filter.Apply(store.All())
		c.JSON(http.StatusOK, gin.H{
			"records": records,
			"total":   store.Count(),
		})
	}
}

// POST /api/records
func createRecordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewTransformerRecord
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		rec, err := recordStore.Load().Create(c.Request.Context(), &input)
		if err != nil {
			writeStoreError(c, "createRecordHandler", err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// PUT /api/records/:id
func updateRecordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewTransformerRecord
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		rec, err := recordStore.Load().Update(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			writeStoreError(c, "updateRecordHandler", err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DELETE /api/records/:id
//
// An unknown id is a 404 no-op, not a server failure.
func deleteRecordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := recordStore.Load().Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeStoreError(c, "deleteRecordHandler", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /api/dashboard
func dashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard := reports.BuildDashboard(recordStore.Load().All(), models.Today())
		c.JSON(http.StatusOK, dashboard)
	}
}

// map store errors to HTTP: validation 400 (with the offending fields),
// unknown id 404, persist failure 500 (in-memory state is already updated;
// the next successful mutation rewrites the whole snapshot).
func writeStoreError(c *gin.Context, funcName string, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		return
	}
	if errors.Is(err, utils.ErrorRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	config.LogError(config.GetLogger(), "records.go", funcName, "record store", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save records"})
}
