package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterTemplatesByCategory(t *testing.T) {
	result := FilterTemplates(Templates(), "Employment", "")

	names := make([]string, 0, len(result))
	for _, tmpl := range result {
		names = append(names, tmpl.Name)
	}
	assert.Equal(t, []string{"Employment Contract", "Freelance Contract"}, names)
}

func TestFilterTemplatesAllCategory(t *testing.T) {
	result := FilterTemplates(Templates(), "All", "")
	assert.Len(t, result, 8)

	// Empty selector behaves like "All"
	result = FilterTemplates(Templates(), "", "")
	assert.Len(t, result, 8)
}

func TestFilterTemplatesQueryIsCaseInsensitive(t *testing.T) {
	result := FilterTemplates(Templates(), "All", "LEASE")
	assert.Len(t, result, 1)
	assert.Equal(t, "Lease Agreement", result[0].Name)

	// Description fields are searchable too
	result = FilterTemplates(Templates(), "All", "contractors")
	assert.Len(t, result, 1)
	assert.Equal(t, "Service Agreement", result[0].Name)
}

func TestFilterTemplatesIsIdempotent(t *testing.T) {
	once := FilterTemplates(Templates(), "Business", "agreement")
	twice := FilterTemplates(once, "Business", "agreement")
	assert.Equal(t, once, twice)
}

func TestFilterTemplatesEmptyResultIsNotNil(t *testing.T) {
	result := FilterTemplates(Templates(), "Employment", "zzz-no-match")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterLawyers(t *testing.T) {
	result := FilterLawyers(Lawyers(), "Tax Law", "")
	assert.Len(t, result, 1)
	assert.Equal(t, "Adv. Suresh Menon", result[0].Name)

	// Location substring match
	result = FilterLawyers(Lawyers(), "All", "mumbai")
	assert.Len(t, result, 1)
	assert.Equal(t, "Adv. Priya Sharma", result[0].Name)

	// Specialty AND query must both match
	result = FilterLawyers(Lawyers(), "Criminal Law", "mumbai")
	assert.Empty(t, result)
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "Employment_Contract.txt", DownloadFilename("Employment Contract"))
	assert.Equal(t, "Non-Disclosure_Agreement_(NDA).txt", DownloadFilename("Non-Disclosure Agreement (NDA)"))
	assert.Equal(t, "A_B.txt", DownloadFilename("A \t B"))
}

func TestTemplateByID(t *testing.T) {
	tmpl, ok := TemplateByID(2)
	assert.True(t, ok)
	assert.Equal(t, "Non-Disclosure Agreement (NDA)", tmpl.Name)
	assert.NotEmpty(t, tmpl.Content)

	_, ok = TemplateByID(99)
	assert.False(t, ok)
}

func TestLawyerRateAmountMatchesDisplay(t *testing.T) {
	for _, lawyer := range Lawyers() {
		digits := strings.TrimFunc(lawyer.HourlyRate, func(r rune) bool {
			return r < '0' || r > '9'
		})
		assert.Equal(t, digits, strconv.Itoa(lawyer.HourlyRateAmount), lawyer.Name)
		assert.Positive(t, lawyer.HourlyRateAmount, lawyer.Name)
	}
}
