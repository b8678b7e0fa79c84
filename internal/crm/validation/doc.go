// Package validation holds the field rules shared by every CRM write path.
package validation
