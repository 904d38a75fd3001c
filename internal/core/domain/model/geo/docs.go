// Package geo models deduplicated physical locations and the user address
// book built on top of them. Locations are shared rows referenced by user
// addresses, parcel endpoints, warehouses, and route stops; deletion is
// reference-counted across all four.
package geo
