// Package descriptor defines the static mapping between a record type and a
// relational table: column names, required flags, value accessors, and the
// identifier contract consumed by the repository layer.
package descriptor
