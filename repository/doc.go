// Package repository performs descriptor-driven CRUD against a relational
// store: it synthesizes parameterized SQL from a table descriptor, binds
// record values through the descriptor's accessors, and marshals result
// rows back into records.
package repository
