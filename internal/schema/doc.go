// Package schema declares the shape groups, conditional rules and variant
// registries of each API version. The endpoint clients run every request
// and response through the Set returned by ForVersion.
package schema
