// Package load implements the Load aggregate: a single shipment moving between
// a pickup and a delivery date.
//
// Key business rules:
//   - A load is created pending with no resources assigned.
//   - Pickup date is never after delivery date.
//   - Status only moves along the table in status.go; dispatched is entered
//     exclusively through Assign, which binds a driver and a truck (trailer optional).
//   - Dispatched, in transit, delivered and completed loads always carry an assignment.
//   - Revenue, cost and profit margin are derived from the customer and carrier rates.
//   - Every persisted write is guarded by the version the load was read with.
package load
