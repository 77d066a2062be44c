// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
//   - UUID: identifiers of aggregates and tenants
//   - GeoPoint: a WGS84 latitude/longitude pair
//   - Date and DateRange: calendar days and inclusive day windows used for
//     pickup/delivery scheduling and reporting periods
//
// All values are immutable and must be created through their constructors;
// a zero value fails Validate.
package kernel
