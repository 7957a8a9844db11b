//go:build release

package core

// Release builds skip invariant checks on hot paths
const assertionsEnabled = false
