// Package models holds the shared server-side data types.
package models

// Owner is the {name, email} pair identifying a user across stores.
type Owner struct {
	Name  string
	Email string
}
