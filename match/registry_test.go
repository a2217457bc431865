package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_KnownCategories(t *testing.T) {
	registry := NewRegistry(t.TempDir())
	require.Equal(t,
		[]string{"civil", "commercial", "common", "contracts", "criminal", "family", "writs"},
		registry.CategoryNames())

	for _, name := range registry.CategoryNames() {
		m, err := registry.Matcher(name)
		require.NoError(t, err)
		require.NotNil(t, m)
	}
}

func TestRegistry_UnknownCategory(t *testing.T) {
	registry := NewRegistry(t.TempDir())
	_, err := registry.Matcher("maritime")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRegistry_CategoryDirectoriesDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range Categories() {
		require.False(t, seen[category.Dir], "duplicate dir %s", category.Dir)
		seen[category.Dir] = true
		require.NotEmpty(t, category.Rules)
	}
}

// End-to-end scenario: an NDA and a lease template under contracts, an
// empty criminal directory, one query routed to each category.
func TestRegistry_MatchScenario(t *testing.T) {
	root := t.TempDir()
	ndaContent := "this confidentiality agreement protects disclosures between a company and a software developer"
	writeTemplate(t, root, "contract_templates", "NDA_template.md", ndaContent)
	writeTemplate(t, root, "contract_templates", "Lease_template.md",
		"this lease concerns a rental property and the obligations of the tenant")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "criminal_litigation_templates"), 0755))

	registry := NewRegistry(root)

	contracts, err := registry.Matcher("contracts")
	require.NoError(t, err)
	result, found, err := contracts.BestMatch("confidentiality agreement for software developer")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, ndaContent, result.Content)

	criminal, err := registry.Matcher("criminal")
	require.NoError(t, err)
	_, found, err = criminal.BestMatch("confidentiality agreement for software developer")
	require.NoError(t, err)
	require.False(t, found)
}
