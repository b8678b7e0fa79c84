package filter

import (
	"strings"

	"gorm.io/gorm"
)

// Orderable fields per entity, keyed by the name callers pass in orderBy.
var (
	CustomerOrdering = map[string]string{
		"name":       "customers.name",
		"email":      "customers.email",
		"phone":      "customers.phone",
		"created_at": "customers.created_at",
	}
	ProductOrdering = map[string]string{
		"name":       "products.name",
		"price":      "products.price",
		"stock":      "products.stock",
		"created_at": "products.created_at",
	}
	OrderOrdering = map[string]string{
		"order_date":   "orders.order_date",
		"total_amount": "orders.total_amount",
		"created_at":   "orders.created_at",
	}
)

// OrderClause maps orderBy ("field" or "-field") onto a whitelisted column.
// Anything not in allowed yields the default ordering.
func OrderClause(orderBy string, allowed map[string]string, table string) string {
	fallback := table + ".created_at ASC, " + table + ".id ASC"
	key := strings.TrimSpace(orderBy)
	dir := "ASC"
	if strings.HasPrefix(key, "-") {
		key = strings.TrimPrefix(key, "-")
		dir = "DESC"
	}
	col, ok := allowed[key]
	if !ok || key == "" {
		return fallback
	}
	return col + " " + dir + ", " + table + ".id ASC"
}

func OrderBy(orderBy string, allowed map[string]string, table string) Scope {
	clause := OrderClause(orderBy, allowed, table)
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause)
	}
}
