// Package vehicle contains the Vehicle aggregate of the fleet.
package vehicle
