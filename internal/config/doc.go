// Package config defines the format-agnostic component model produced by
// every loader, along with the Loader interface that loaders implement.
//
// A Model is a flat, ordered list of components, each with the ordered names
// of the components it depends on. It is the only thing the graph builder
// consumes, so supporting a new input format only means writing a Loader.
package config
