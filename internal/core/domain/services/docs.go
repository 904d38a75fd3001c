// Package services contains stateless domain services: the pricing engine
// that turns measurements and province rates into delivery quotes, and the
// route stop planner that lays out a parcel's path through the warehouse
// network.
package services
