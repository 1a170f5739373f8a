package v1

import (
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportBudgetItems)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file with the key "file" after
// verifying its suffix.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Import budget items
// @Description	Imports budget items from a CSV file with the columns name, owner, amount, isRepeating, endDate. The import is all or nothing, a single invalid row rejects the whole file.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	BudgetItemCreateResponse
// @Failure		400		{object}	BudgetItemCreateResponse
// @Failure		500		{object}	BudgetItemCreateResponse
// @Param			file	formData	file	true	"CSV file to import"
// @Router			/v1/import [post]
func ImportBudgetItems(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	items, err := parseItemCSV(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetItemCreateResponse{
			Error: &s,
		})
		return
	}

	r := BudgetItemCreateResponse{}

	// All items are created in a single transaction so that an invalid
	// row does not leave a partial import behind
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for i := range items {
			err := tx.Create(&items[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &s,
		})
		return
	}

	for _, item := range items {
		data := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &data})
	}

	c.JSON(http.StatusCreated, r)
}

// parseItemCSV parses a CSV file with a header row into budget items.
func parseItemCSV(f multipart.File) ([]models.BudgetItem, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 5

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse the CSV file: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("the CSV file needs a header row and at least one budget item")
	}

	header := []string{"name", "owner", "amount", "isRepeating", "endDate"}
	for i, field := range records[0] {
		if !strings.EqualFold(strings.TrimSpace(field), header[i]) {
			return nil, fmt.Errorf("unexpected header %q in column %d, expected %q", field, i+1, header[i])
		}
	}

	var items []models.BudgetItem
	for line, record := range records[1:] {
		amount, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("could not parse the amount in line %d: %w", line+2, err)
		}

		isRepeating := false
		if v := strings.TrimSpace(record[3]); v != "" {
			isRepeating, err = strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("could not parse isRepeating in line %d: %w", line+2, err)
			}
		}

		var endDate *time.Time
		if v := strings.TrimSpace(record[4]); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return nil, fmt.Errorf("could not parse the end date in line %d: %w", line+2, err)
			}
			endDate = &t
		}

		items = append(items, models.BudgetItem{
			Name:        record[0],
			Owner:       record[1],
			Amount:      amount,
			IsRepeating: isRepeating,
			EndDate:     endDate,
		})
	}

	return items, nil
}
