// Package services holds domain logic that spans several aggregates.
//
//   - EligibilityChecker: may a driver, truck and trailer be dispatched on a load
//   - FinancialAggregator: revenue, cost, profit and miles of billable loads
//
// Both are pure: they read aggregates that were already loaded and never
// touch persistence.
package services
