// Package document models the subset of the Atlassian Document Format this
// module emits: a doc root holding paragraph and codeBlock blocks, text
// inlines, and a single link mark. The node vocabulary is deliberately closed;
// builders are the only way conversion code grows a tree, so every document
// the package produces satisfies the structural invariants by construction.
package document
