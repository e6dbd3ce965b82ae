// Package models contains GORM persistence models for the catalog.
// Models carry all ORM tags and column mappings; the domain layer stays free
// of them. Each model converts to and from its aggregate:
//
//   - product.go: products table and the Product aggregate
//   - outbox.go: outbox_events table for transactional event delivery
//
// Column types are chosen so the same models migrate on PostgreSQL and on the
// in-memory SQLite databases used by repository tests.
package models
