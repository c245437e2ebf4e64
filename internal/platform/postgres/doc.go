// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces. Driver errors never escape this package: unique and foreign
// key violations and missing rows are translated to the store sentinels.
package postgres
