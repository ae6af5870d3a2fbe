package handlers

import (
	"net/http"

	catalogRepo "labport/database/repository/catalog"
	"labport/middleware"

	"github.com/gin-gonic/gin"
)

var CatalogRepo catalogRepo.CatalogRepository

// ListTests returns the test packages in the request language.
func ListTests(c *gin.Context) {
	lang := middleware.RequestLanguage(c)
	tests, err := CatalogRepo.GetTests(c.Request.Context(), lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

// ListLabs returns the partner labs in the request language.
func ListLabs(c *gin.Context) {
	lang := middleware.RequestLanguage(c)
	labs, err := CatalogRepo.GetLabs(c.Request.Context(), lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load labs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"labs": labs})
}

// GetTest returns a single test package by id.
func GetTest(c *gin.Context) {
	lang := middleware.RequestLanguage(c)
	test, err := CatalogRepo.GetTestByID(c.Request.Context(), lang, c.Param("testID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "test not found"})
		return
	}
	c.JSON(http.StatusOK, test)
}
