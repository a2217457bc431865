// Package retrieve answers semantic queries against the artifacts the
// corpus indexer produces. It embeds the query, searches the flat
// vector index, and joins results with the chunk metadata table.
package retrieve
