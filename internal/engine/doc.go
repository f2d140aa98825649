// Package engine is the run engine of the application. It walks an
// adventure graph from a starting node, presenting each node's prompt and
// numbered choices and following the operator's selection until a terminal
// node is reached or the operator returns to the menu.
//
// # States
//
// The engine is a state machine whose states are node identifiers plus two
// terminal pseudo-states:
//
//	Ended    a node without choices was displayed ("THE END")
//	Aborted  the operator entered the return token, or the run hit a
//	         structural problem (corrupt node, missing target node)
//
// Structural problems are returned as *NodeError and end only the current
// run. Invalid selections never change state; the engine re-prompts until a
// valid selection or the return token is entered.
//
// The walk keeps no path history and is an explicit loop, so cycles in the
// graph are legal and revisit the same node without growing the stack.
package engine
