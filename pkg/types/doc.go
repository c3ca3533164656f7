// Package types defines the menu entity types, the Store interface, the
// filter and summary values, and the standard error types shared by the
// menu core and its collaborators.
package types
