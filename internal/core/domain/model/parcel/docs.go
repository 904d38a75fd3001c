// Package parcel contains the shipment aggregate and its satellites: the
// parcel lifecycle with its one-way status machine, the single claimable
// carrier assignment, write-once pickup measurements and the append-only
// tracking event history.
package parcel
