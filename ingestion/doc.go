// Package ingestion turns a corpus of source documents into the flat
// vector index, chunk metadata table, and document registry used by the
// retrieval layer. It walks a labelled directory tree, extracts plain
// text, splits it into overlapping chunks, and embeds the chunks in
// fixed-size batches.
package ingestion
