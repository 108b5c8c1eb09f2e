// Package services contains domain services: operations that coordinate more
// than one aggregate and therefore belong to no single one. The stock ledger
// changes product quantities and emits the matching inventory entries so the
// two can never drift apart.
package services
