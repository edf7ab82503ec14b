// Package postgres provides the PostgreSQL-backed implementation of the
// key-value store.Store interface. It handles the details of database
// connections and query execution; the schema is a single kv_entries
// table managed by goose migrations.
package postgres
