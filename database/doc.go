// Package database manages database connections for the mapper: dialect
// selection, pooling, health checks, query logging hooks, and YAML-driven
// configuration.
package database
