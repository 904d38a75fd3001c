// Package route models the planned path of a parcel as an ordered list of
// stops. Warehouse stops gate parcel status updates until visited.
package route
