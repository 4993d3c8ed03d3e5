// Package postgres implements the repository ports on PostgreSQL.
//
// Every repository issues exactly one INSERT ... RETURNING id statement per
// Create call through a db.Executor, so each row is committed on its own and
// its generated id is written back to the entity. Values are always passed as
// bind parameters.
package postgres
