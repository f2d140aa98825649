// Package graph holds the in-memory adventure graph: a mapping from node
// identifier to node content.
//
// # Why Graph Package Exists
//
// The store is deliberately dumb. It performs no validation, so a graph may
// transiently hold dangling choice targets or lack an entry node while it is
// being edited. Integrity is checked on demand by the validator package, and
// traversal-time checks are done by the engine package.
//
// # Interfaces
//
//   - **Reader**: lookup-only view used by the validator, the run engine and
//     the persistence layer.
//   - **Graph**: Reader plus Put, used by the editor, the only component that
//     mutates a graph.
//
// # Lifecycle
//
//  1. **Created** empty by the shell, or in full by a storage codec on load
//  2. **Mutated** by the editor, one node replaced wholesale at a time
//  3. **Discarded** when the shell loads another graph or exits
//
// # Thread-Safety
//
// None. A graph is owned by one interactive session and handed by reference
// to whichever component is active.
package graph
