package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func contractsCategory(t *testing.T) Category {
	t.Helper()
	for _, c := range Categories() {
		if c.Name == "contracts" {
			return c
		}
	}
	t.Fatal("contracts category missing")
	return Category{}
}

func writeTemplate(t *testing.T, root, dir, name, content string) {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(full, name), []byte(content), 0644))
}

func TestBestMatch_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "contract_templates"), 0755))

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch("non disclosure agreement")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, result)
}

func TestBestMatch_MissingDirectory(t *testing.T) {
	m := NewMatcher(t.TempDir(), contractsCategory(t))
	_, found, err := m.BestMatch("non disclosure agreement")
	require.NoError(t, err)
	require.False(t, found)
}

func TestBestMatch_EmptyDomain(t *testing.T) {
	m := NewMatcher(t.TempDir(), contractsCategory(t))
	_, _, err := m.BestMatch("   ")
	require.ErrorIs(t, err, ErrEmptyDomain)
}

func TestBestMatch_ExactContentQuery(t *testing.T) {
	root := t.TempDir()
	content := "affiliate agreement between the parties"
	writeTemplate(t, root, "contract_templates", "Affiliate_Agreement.md", content)

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch(content)
	require.NoError(t, err)
	require.True(t, found)
	// A query identical to the candidate's content is a perfect token-set match
	require.Equal(t, 100, result.Score.ContentScore)
	require.GreaterOrEqual(t, result.Score.Final, 65.0)
	require.Equal(t, content, result.Content)
}

func TestBestMatch_BelowThreshold(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "contract_templates", "Lease_Agreement.md",
		"rental property lease terms for residential tenancy")

	m := NewMatcher(root, contractsCategory(t))
	_, found, err := m.BestMatch("zzzz qqqq xxxx")
	require.NoError(t, err)
	require.False(t, found)
}

func TestBestMatch_WeightingBeatsNameOnlyCandidate(t *testing.T) {
	root := t.TempDir()
	// First in sorted order: name matches the query well, content does not
	writeTemplate(t, root, "contract_templates", "A_confidentiality_agreement_software.md",
		"unrelated boilerplate text about shipping logistics and invoices")
	// Second in sorted order: full content match
	writeTemplate(t, root, "contract_templates", "Z_nda.md",
		"confidentiality agreement for software developer engagements")

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch("confidentiality agreement for software developer")
	require.NoError(t, err)
	require.True(t, found)
	// The weighted blend must prefer the content-matching candidate even
	// though the name-only candidate is visited first with a higher name score
	require.Equal(t, "z nda", result.Name)
}

func TestBestMatch_KeywordBonus_FromContent(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "contract_templates", "Partner_Terms.md",
		"this joint venture agreement sets out the obligations of the partners")

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch("joint venture agreement")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 10.0, result.Score.KeywordBonus)
}

func TestBestMatch_KeywordBonus_FromFileName(t *testing.T) {
	root := t.TempDir()
	var family Category
	for _, c := range Categories() {
		if c.Name == "family" {
			family = c
		}
	}
	// Content carries none of the category keywords; the bonus can only
	// come from the "Divorce" label contained in the file name
	content := "petition before the honourable court seeking dissolution"
	writeTemplate(t, root, "family_law_templates", "Divorce_Petition.md", content)

	m := NewMatcher(root, family)
	result, found, err := m.BestMatch(content)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 10.0, result.Score.KeywordBonus)
}

func TestBestMatch_NoBonusAccumulation(t *testing.T) {
	root := t.TempDir()
	// Content matches keywords of more than one rule
	writeTemplate(t, root, "contract_templates", "Combined.md",
		"affiliate agreement with a joint venture agreement annex and confidentiality terms")

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch("affiliate agreement")
	require.NoError(t, err)
	require.True(t, found)
	// Flat bonus regardless of how many rules matched
	require.Equal(t, 10.0, result.Score.KeywordBonus)
}

func TestBestMatch_SkipsUnreadableCandidate(t *testing.T) {
	root := t.TempDir()
	content := "affiliate agreement between the parties"
	writeTemplate(t, root, "contract_templates", "Affiliate_Agreement.md", content)
	// A dangling symlink is listed as a candidate but fails to read
	require.NoError(t, os.Symlink(
		filepath.Join(root, "missing"),
		filepath.Join(root, "contract_templates", "Broken.md")))

	m := NewMatcher(root, contractsCategory(t))
	result, found, err := m.BestMatch(content)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "affiliate agreement", result.Name)
}

func TestBestMatch_IgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "contract_templates", "notes.txt",
		"affiliate agreement between the parties")

	m := NewMatcher(root, contractsCategory(t))
	_, found, err := m.BestMatch("affiliate agreement between the parties")
	require.NoError(t, err)
	require.False(t, found)
}

func TestNormalizeDomain(t *testing.T) {
	require.Equal(t, "co branding agreement", normalizeDomain("  Co-Branding Agreement "))
}

func TestNormalizeFileName(t *testing.T) {
	require.Equal(t, "joint venture agreement", normalizeFileName("Joint_Venture_Agreement.md"))
	// An upper-case extension is stripped too, not folded into the name
	require.Equal(t, "nda", normalizeFileName("NDA.MD"))
}
