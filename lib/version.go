// Package lib holds project-wide constants.
package lib

// Name is the canonical project name.
const Name = "gnark-fibonacci"

// Version is the current semantic version of the examples.
const Version = "0.1.0"
