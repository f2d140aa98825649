// internal/nodeid/doc.go

/*
Package nodeid provides the identifier type for nodes of an adventure graph.

An identifier is any non-empty string. It is case-sensitive and is used both
as the key of the graph and as the reference typed by an operator when
choosing a choice target, so no further restrictions are imposed here.

One identifier is reserved as the entry point of a run. It is `start` by
default and can be overridden by configuration.
*/
package nodeid
