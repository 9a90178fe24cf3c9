// Package registry provides a generic, type-safe registry system
// used for template helpers and artifact generators. It supports
// both strict registration (duplicate names are an error) and
// last-registration-wins replacement via Put.
package registry
