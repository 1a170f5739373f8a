package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the name and search filters to a budget item query.
//
// The name filter matches substrings of the name. The search filter matches
// substrings in either the name or the owner, mirroring the search fields
// of the admin surface.
func stringFilters(db, query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("owner LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
