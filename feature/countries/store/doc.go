// Package store is the gorm backed record store for countries and metadata.
//
// Names are unique case-insensitively through the name_key column, which holds
// the folded form of the display name. Every upsert runs in its own transaction
// so a failing record never rolls back the ones written before it.
package store
