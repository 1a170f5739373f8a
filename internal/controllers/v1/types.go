package v1

import (
	bt_uuid "github.com/budget-tracker/backend/internal/uuid"
)

type URIID struct {
	ID bt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination of list responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of records to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of records matching the query
}
