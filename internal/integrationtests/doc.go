// Package integration_tests exercises the load, build and resolve pipeline
// end to end against real input files.
package integration_tests
