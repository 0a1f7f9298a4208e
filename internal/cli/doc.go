// Package cli parses the cmakedeps command line. It validates flags and
// input paths, maps usage errors to exit codes, and produces the
// application's Config.
package cli
