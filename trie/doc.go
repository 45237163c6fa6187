// Package trie implements a generic ordered lookup trie: a rooted
// tree keyed by sequences of a comparable element type E, carrying
// optional values of type V at any node along the way (a node may
// hold a value and still have children, for the prefix-of-longer-key
// case).
//
// The default walk is maximal-prefix-greedy: Match consumes elements
// from a stream and yields every value seen along the path, in
// ascending depth order, stopping at the first element with no
// matching child. MatchPaths additionally reports the input length at
// every value point along the way, for callers that need to explore
// more than the single greedy path. The text encoder does its own
// branching with Cursor values instead.
package trie
