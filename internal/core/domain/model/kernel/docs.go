// Package kernel contains shared building blocks for the domain model:
// the UUID identity value object used by every aggregate and entity.
package kernel
