// Package service holds the bookkeeping workflows, grouped by domain area.
//
// Domain files:
// - units: collection listings and the plate detail resolver
// - intake: service record plus derived transaction
// - sale: workshop point-of-sale transactions and part stock
package service
