package match

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/poiesic/lexindex/core"
)

const (
	// templateExtension is the only file extension considered a candidate.
	templateExtension = ".md"

	nameWeight    = 0.40
	contentWeight = 0.50
	keywordBonus  = 10.0

	// matchThreshold is the minimum final score for a match to be returned.
	matchThreshold = 65.0
)

// Matcher scores the markdown candidates of a single category directory
// against a free-text domain description. Matchers are read-only over the
// filesystem and safe for concurrent use.
type Matcher struct {
	category Category
	dir      string
	logger   *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// NewMatcher creates a matcher for one category. The category's template
// directory is resolved relative to templatesRoot.
func NewMatcher(templatesRoot string, category Category, opts ...Option) *Matcher {
	m := &Matcher{
		category: category,
		dir:      filepath.Join(templatesRoot, category.Dir),
		logger:   slog.Default().With("category", category.Name),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BestMatch scores every candidate in the category directory and returns
// the single highest-scoring one, if it clears the confidence threshold.
// The boolean reports whether a match was found; no-match is not an error.
//
// Candidates are visited in file-name order, and a later candidate
// replaces an earlier one only on a strictly greater score, so ties go to
// the first name in sorted order. Unreadable candidates are skipped.
func (m *Matcher) BestMatch(domain string) (*core.TemplateMatch, bool, error) {
	domainNorm := normalizeDomain(domain)
	if domainNorm == "" {
		return nil, false, ErrEmptyDomain
	}

	candidates, err := m.listCandidates()
	if err != nil || len(candidates) == 0 {
		m.logger.Warn("no template files found", "dir", m.dir)
		return nil, false, nil
	}

	bestScore := -1.0
	var best *core.TemplateMatch

	for _, name := range candidates {
		path := filepath.Join(m.dir, name)
		fileName := normalizeFileName(name)

		content, err := os.ReadFile(path)
		if err != nil {
			m.logger.Warn("error reading template file", "path", path, "err", err)
			continue
		}
		contentNorm := strings.ToLower(string(content))

		score := m.scoreCandidate(fileName, contentNorm, domainNorm)

		m.logger.Debug("scored template",
			"template", fileName,
			"final", score.Final,
			"name", score.NameScore,
			"content", score.ContentScore)

		if score.Final > bestScore {
			bestScore = score.Final
			best = &core.TemplateMatch{
				Name:    fileName,
				Source:  path,
				Content: string(content),
				Score:   score,
			}
		}
	}

	if best == nil || best.Score.Final < matchThreshold {
		return nil, false, nil
	}
	return best, true, nil
}

// scoreCandidate computes the weighted score blend for one candidate.
func (m *Matcher) scoreCandidate(fileName, contentNorm, domainNorm string) core.ScoreBreakdown {
	// A. File name match: is the domain a good partial match to the name itself
	nameScore := fuzzy.PartialRatio(fileName, domainNorm)

	// B. Content match: token-set similarity is order-independent and
	// robust to the extra words surrounding the domain keywords
	contentScore := fuzzy.TokenSetRatio(domainNorm, contentNorm)

	// C. Keyword reinforcement from the category table
	bonus := 0.0
	for _, rule := range m.category.Rules {
		if strings.Contains(fileName, strings.ToLower(rule.Label)) || containsAny(contentNorm, rule.Keywords) {
			bonus = keywordBonus
			break // one matching rule is enough
		}
	}

	return core.ScoreBreakdown{
		NameScore:    nameScore,
		ContentScore: contentScore,
		KeywordBonus: bonus,
		Final:        nameWeight*float64(nameScore) + contentWeight*float64(contentScore) + bonus,
	}
}

// listCandidates returns the category directory's template file names in
// sorted order. A missing directory is treated the same as an empty one.
func (m *Matcher) listCandidates() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), templateExtension) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// normalizeDomain lowercases the query, replaces hyphens with spaces, and
// strips surrounding whitespace.
func normalizeDomain(domain string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(domain), "-", " "))
}

// normalizeFileName lowercases a candidate file name, strips the template
// extension, replaces underscores with spaces, and strips whitespace.
func normalizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, templateExtension)
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
