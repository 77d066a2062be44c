// Package driver implements the Driver aggregate.
//
// A driver can be dispatched only while employed (active) and either
// available or off duty. Position reports overwrite the last known location
// and duty status and never touch loads.
package driver
