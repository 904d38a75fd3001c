// Package carrier models delivery drivers and their partially updatable
// profiles.
package carrier
