package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/budget-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetItemsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetItemsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudgetItem(t, v1.BudgetItemEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budget-items", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BudgetItemListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBudgetItemsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetItemsOptions() {
	tests := []struct {
		name   string
		id     string // path at the budget items endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No budget item with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget item exists", createTestBudgetItem(suite.T(), v1.BudgetItemEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budget-items", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestBudgetItemsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestBudgetItemsGetSingle() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing budget item", item.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No budget item with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budget-items/%s", tt.id), "")

			var response v1.BudgetItemResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                              // expected HTTP status
		testFunc func(t *testing.T, r v1.BudgetItemCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field BudgetItemEditable.name of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"No name",
			[]v1.BudgetItemEditable{{Owner: "Jane Doe", Amount: decimal.NewFromFloat(10)}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, models.ErrBudgetItemNameEmpty.Error(), *r.Data[0].Error)
			},
		},
		{
			"No owner",
			[]v1.BudgetItemEditable{{Name: "Rent", Amount: decimal.NewFromFloat(10)}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, models.ErrBudgetItemOwnerEmpty.Error(), *r.Data[0].Error)
			},
		},
		{
			"Amount too small",
			[]v1.BudgetItemEditable{{Name: "Rent", Owner: "Jane Doe", Amount: decimal.NewFromFloat(-10)}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, models.ErrBudgetItemAmountTooSmall.Error(), *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-items", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetItemCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsGetFilter() {
	endDate2024 := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	endDate2025 := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		Name:        "Monthly Rent",
		Owner:       "Jane Doe",
		IsRepeating: true,
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		Name:        "Car insurance",
		Owner:       "Jane Doe",
		IsRepeating: true,
		EndDate:     &endDate2025,
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		Name:    "Roof repair",
		Owner:   "John Doe",
		EndDate: &endDate2024,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Owner", "owner=Jane Doe", 2},
		{"Owner not existing", "owner=Nobody", 0},
		{"Repeating", "isRepeating=true", 2},
		{"Not repeating", "isRepeating=false", 1},
		{"Name substring", "name=insurance", 1},
		{"Name substring, no match", "name=Groceries", 0},
		{"Empty name", "name=", 0},
		{"Search in name", "search=rent", 1},
		{"Search in owner", "search=john", 1},
		{"Search across fields", "search=Doe", 3},
		{"End date until 2025-01-01", "endDateUntil=2025-01-01T00:00:00Z", 1},
		{"End date until 2025-12-31", "endDateUntil=2025-12-31T00:00:00Z", 2},
		{"End date until, both filters", "endDateUntil=2025-12-31T00:00:00Z&owner=Jane Doe", 1},
		{"Created from today", fmt.Sprintf("fromDate=%s", time.Now().UTC().Format(time.RFC3339)), 3},
		{"Created from tomorrow", fmt.Sprintf("fromDate=%s", time.Now().UTC().AddDate(0, 0, 1).Format(time.RFC3339)), 0},
		{"Created until today", fmt.Sprintf("untilDate=%s", time.Now().UTC().Format(time.RFC3339)), 3},
		{"Created until a week ago", fmt.Sprintf("untilDate=%s", time.Now().UTC().AddDate(0, 0, -7).Format(time.RFC3339)), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.BudgetItemListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/budget-items?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestBudgetItemsGetSorted verifies that budget items are sorted by
// creation time, newest first.
func (suite *TestSuiteStandard) TestBudgetItemsGetSorted() {
	first := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: "First"})
	second := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: "Second"})
	third := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: "Third"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget-items", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var items v1.BudgetItemListResponse
	test.DecodeResponse(suite.T(), &r, &items)

	require.Len(suite.T(), items.Data, 3, "Budget item list has wrong length")

	assert.Equal(suite.T(), third.Data.Name, items.Data[0].Name)
	assert.Equal(suite.T(), second.Data.Name, items.Data[1].Name)
	assert.Equal(suite.T(), first.Data.Name, items.Data[2].Name)
}

func (suite *TestSuiteStandard) TestBudgetItemsPagination() {
	for i := 0; i < 10; i++ {
		createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: fmt.Sprint(i)})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-items?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var items v1.BudgetItemListResponse
			test.DecodeResponse(t, &r, &items)

			assert.Equal(suite.T(), tt.offset, items.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, items.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, items.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, items.Pagination.Total)
		})
	}
}

// Verify that updating budget items works as desired
func (suite *TestSuiteStandard) TestBudgetItemsUpdate() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Name: "Name of the item"})

	tests := []struct {
		name     string                                      // name of the test
		update   map[string]any                              // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.BudgetItemResponse) // tests to perform against the updated resource
	}{
		{
			"Name, Owner",
			map[string]any{
				"name":  "Another name",
				"owner": "John Doe",
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.Equal(t, "Another name", r.Data.Name)
				assert.Equal(t, "John Doe", r.Data.Owner)
			},
		},
		{
			"Amount",
			map[string]any{
				"amount": "1300.50",
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.True(t, r.Data.Amount.Equal(decimal.NewFromFloat(1300.50)))
			},
		},
		{
			"IsRepeating",
			map[string]any{
				"isRepeating": true,
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.True(t, r.Data.IsRepeating)
			},
		},
		{
			"End date set to null",
			map[string]any{
				"endDate": nil,
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.Nil(t, r.Data.EndDate)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, item.Data.Links.Self, tt.update)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetItemResponse
			test.DecodeResponse(t, &r, &response)

			// The creation timestamp is not changed by updates
			assert.Equal(t, item.Data.CreatedAt, response.Data.CreatedAt)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsUpdateRefreshesUpdatedAt() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})

	r := test.Request(suite.T(), http.MethodPatch, item.Data.Links.Self, map[string]any{"name": "Updated"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetItemResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.UpdatedAt.After(item.Data.UpdatedAt), "UpdatedAt was not refreshed")
}

func (suite *TestSuiteStandard) TestBudgetItemsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing budget item", uuid.New().String(), `{"name": "Does not exist"}`, http.StatusNotFound},
		{"Set name to empty", "", map[string]any{"name": ""}, http.StatusBadRequest},
		{"Set amount to zero", "", map[string]any{"amount": "0"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})
				tt.id = item.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/budget-items/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestBudgetItemsDelete verifies all cases for budget item deletions.
func (suite *TestSuiteStandard) TestBudgetItemsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing budget item", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				item := createTestBudgetItem(t, v1.BudgetItemEditable{})
				tt.id = item.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budget-items/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// A second deletion of the same budget item returns a 404 since the
// deletion is permanent.
func (suite *TestSuiteStandard) TestBudgetItemsDeleteTwice() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})

	r := test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
