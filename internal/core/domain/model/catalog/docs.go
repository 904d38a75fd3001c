// Package catalog holds operator-managed reference data: provinces and
// province-pair rates, delivery plans, optional services, package types,
// banks and warehouses. These rows are read-only from the application's
// point of view, so they are plain structs rather than guarded aggregates.
package catalog
