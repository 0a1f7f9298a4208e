// Package hclmanifest loads component declarations written in HCL:
//
//	component "app" {
//	  depends_on = ["core", "io"]
//	  attributes = { kind = "executable" }
//	}
//
// It is an alternative to CMake caches for projects that describe their
// component graph by hand. Every block becomes one config.Component.
package hclmanifest
