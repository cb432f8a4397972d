// Package model provides the data structures shared by the phase package and its observers.
// It defines the handler buckets, the read-only description of a phase handed to run hooks,
// and the RunOption interface implemented by measure and drawer.
package model
