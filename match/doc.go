// Package match implements fuzzy template matching over category-scoped
// directories of markdown candidates.
//
// A Matcher scores every candidate in its category directory by blending
// three signals:
//   - partial-ratio similarity between the normalized file name and query
//   - token-set similarity between the query and the full candidate content
//   - a flat keyword reinforcement bonus from the category's keyword table
//
// The final score is 0.40*name + 0.50*content + bonus. Content relevance is
// weighted above filename similarity, with keyword reinforcement as a
// tie-breaking nudge rather than a dominant signal. The single best candidate
// is returned only if its final score clears a fixed confidence threshold;
// otherwise the matcher reports no match, which is an absence, not an error.
//
// All seven categories share the same scoring math; they differ only in
// their directory and keyword table, both supplied by the Registry.
package match
