// Package crm holds the persisted CRM entities: customers, products and the
// orders that tie them together.
package crm
