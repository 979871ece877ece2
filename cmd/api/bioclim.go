package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"easy-bioclim/internal/export"
	"easy-bioclim/internal/points"
	"easy-bioclim/internal/types"

	"github.com/gin-gonic/gin"
)

// VariablesResponse describes the 19 bioclimatic variables served by the API
type VariablesResponse struct {
	Variables        []types.BioVariable `json:"variables"`
	ResolutionMeters float64             `json:"resolutionMeters" example:"927.67"`
}

// collectPoints reads the uploaded GeoJSON file and the names form field and
// decodes them into an ordered point list. On failure it writes the HTTP
// error response itself and returns ok=false.
func (app *App) collectPoints(c *gin.Context) ([]types.Point, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing GeoJSON upload in form field 'file'"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		app.logger.Error("failed to open upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return nil, false
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		app.logger.Error("failed to read upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return nil, false
	}

	names := points.ParseNames(c.PostForm("names"))

	pts, err := points.Collect(data, names)
	if err != nil {
		if errors.Is(err, points.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}

		app.logger.Error("failed to collect points", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect points"})
		return nil, false
	}

	return pts, true
}

// handleBuildTable godoc
// @Summary Build a bioclim result table
// @Description Decode uploaded GeoJSON points plus a comma-separated name list, fetch the 19 WorldClim bioclimatic variables per point, and return one row per point in upload order. Points whose fetch failed keep their row with all variables missing and are listed in warnings.
// @Tags bioclim
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "GeoJSON feature collection of point geometries"
// @Param names formData string true "Comma-separated point names, one per feature, in feature order"
// @Success 200 {object} bioclim.ResultTable
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bioclim/table [post]
func (app *App) handleBuildTable(c *gin.Context) {
	pts, ok := app.collectPoints(c)
	if !ok {
		return
	}

	table, err := app.bioclimService.BuildTable(c.Request.Context(), pts)
	if err != nil {
		app.logger.Error("failed to build result table", "points", len(pts), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build result table"})
		return
	}

	c.JSON(http.StatusOK, table)
}

// handleExportTableCSV godoc
// @Summary Build and download a bioclim result table as CSV
// @Description Same pipeline as /bioclim/table, serialized as delimited text: header row of name, longitude, latitude, BIO1..BIO19, one data row per point, missing values as empty fields.
// @Tags bioclim
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "GeoJSON feature collection of point geometries"
// @Param names formData string true "Comma-separated point names, one per feature, in feature order"
// @Success 200 {string} string "CSV attachment"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bioclim/table/csv [post]
func (app *App) handleExportTableCSV(c *gin.Context) {
	pts, ok := app.collectPoints(c)
	if !ok {
		return
	}

	table, err := app.bioclimService.BuildTable(c.Request.Context(), pts)
	if err != nil {
		app.logger.Error("failed to build result table", "points", len(pts), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build result table"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table, app.cfg.ExportDelimiter()); err != nil {
		app.logger.Error("failed to serialize result table", "points", len(pts), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize result table"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bioclim.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// handleListVariables godoc
// @Summary List the bioclimatic variables
// @Description Reference table for the 19 WorldClim bioclimatic variables: code, description, unit, and raster storage scale, plus the dataset ground resolution.
// @Tags bioclim
// @Produce json
// @Success 200 {object} VariablesResponse
// @Router /bioclim/variables [get]
func (app *App) handleListVariables(c *gin.Context) {
	c.JSON(http.StatusOK, VariablesResponse{
		Variables:        types.BioVariables,
		ResolutionMeters: types.DatasetResolutionMeters,
	})
}
