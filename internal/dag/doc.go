// Package dag is the dependency model at the centre of the resolver. It holds
// uniquely named components (nodes) connected by "depends-on" edges and
// provides the two traversals the rest of the application is built on:
//
//   - Resolve walks dependencies depth-first and returns a build order in
//     which every dependency precedes the components that need it.
//   - FindRoots walks the reverse edges and returns the top-level consumers
//     of a component, i.e. the nodes nothing else depends on.
//
// Both traversals use an explicit stack, so recursion depth never limits the
// length of a dependency chain, and both allocate fresh visitation state on
// every call.
//
// The package does no I/O and no locking. A Graph is built once by a loader
// and is read-only afterwards; callers sharing one across goroutines must
// finish construction before any traversal starts.
package dag
