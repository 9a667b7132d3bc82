package algorithm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/model"
)

func TestDefaultLookupSelectsTableByMeetingCount(t *testing.T) {
	p := Default()
	for _, age := range model.AgeGroups {
		for _, n := range []int{-1, 0, 1, 5, 8} {
			c, err := p.Lookup(age, n)
			require.NoError(t, err)
			assert.Equal(t, ShortTerm, c.Term, "age %s meetings %d", age, n)
			assert.Equal(t, 6, c.FlattenMeeting)
			assert.Equal(t, 8, c.MaxMeetings)
		}
		for _, n := range []int{9, 12, 18, 40} {
			c, err := p.Lookup(age, n)
			require.NoError(t, err)
			assert.Equal(t, LongTerm, c.Term, "age %s meetings %d", age, n)
			assert.Equal(t, 10, c.FlattenMeeting)
			assert.Equal(t, 9, c.MinMeetings)
			assert.Equal(t, 18, c.MaxMeetings)
		}
	}
}

func TestDefaultLookupShortTermMatchesSentinel(t *testing.T) {
	p := Default()
	for _, age := range model.AgeGroups {
		st, err := p.LookupShortTerm(age)
		require.NoError(t, err)
		zero, err := p.Lookup(age, 0)
		require.NoError(t, err)
		assert.Equal(t, st, zero)
	}
}

func TestDefaultTablesCutoffs(t *testing.T) {
	p := Default()
	want := map[model.AgeGroup]float64{
		model.Adolescent: 28.0,
		model.Adult:      25.0,
		model.Child:      32.0,
	}
	for age, cutoff := range want {
		c, err := p.Lookup(age, 3)
		require.NoError(t, err)
		assert.Equal(t, cutoff, c.ClinicalCutoff)
		assert.Equal(t, age, c.AgeGroup)
		assert.NotEmpty(t, c.Version)
		assert.Positive(t, c.StandardDeviation)
	}
	assert.Len(t, p.Tables(), 6)
}

func TestLookupUnknownAgeGroup(t *testing.T) {
	_, err := Default().Lookup(model.AgeGroup(7), 3)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = Default().LookupShortTerm(model.AgeGroup(0))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestNewTableProviderRequiresBothTerms(t *testing.T) {
	tables := Default().Tables()
	_, err := NewTableProvider(tables[:5])
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	dup := append(append([]Coefficients{}, tables...), tables[0])
	_, err = NewTableProvider(dup)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	bad := append([]Coefficients{}, tables...)
	bad[2].StandardDeviation = 0
	_, err = NewTableProvider(bad)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLoadProviderFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.toml")
	var content string
	for _, c := range Default().Tables() {
		term := "short"
		if c.Term == LongTerm {
			term = "long"
		}
		content += tomlEntry(c.AgeGroup.String(), term, c)
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadProvider(path)
	require.NoError(t, err)
	c, err := p.Lookup(model.Adult, 12)
	require.NoError(t, err)
	assert.Equal(t, LongTerm, c.Term)
	assert.Equal(t, 25.0, c.ClinicalCutoff)
	assert.InDelta(t, 1.701087, c.LinearMean, 1e-12)
	assert.Equal(t, "custom LT Adult", c.Version)
}

func TestLoadProviderEmptyPathUsesDefault(t *testing.T) {
	p, err := LoadProvider("")
	require.NoError(t, err)
	assert.Same(t, Default(), p)
}

func TestLoadTablesRejectsUnknownTerm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[table]]\nage-group = \"adult\"\nterm = \"medium\"\n"), 0o644))
	_, err := LoadTables(path)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func tomlEntry(age, term string, c Coefficients) string {
	return "[[table]]\n" +
		"age-group = \"" + age + "\"\n" +
		"term = \"" + term + "\"\n" +
		"clinical-cutoff = " + ftoa(c.ClinicalCutoff) + "\n" +
		"reliable-change-index = " + ftoa(c.ReliableChangeIndex) + "\n" +
		"standard-deviation = " + ftoa(c.StandardDeviation) + "\n" +
		"min-meetings = " + itoa(c.MinMeetings) + "\n" +
		"max-meetings = " + itoa(c.MaxMeetings) + "\n" +
		"flatten-meeting = " + itoa(c.FlattenMeeting) + "\n" +
		"intercept-mean = " + ftoa(c.InterceptMean) + "\n" +
		"linear-mean = " + ftoa(c.LinearMean) + "\n" +
		"quadratic-mean = " + ftoa(c.QuadraticMean) + "\n" +
		"cubic-mean = " + ftoa(c.CubicMean) + "\n" +
		"intake = " + ftoa(c.Intake) + "\n" +
		"linear-by-intake = " + ftoa(c.LinearByIntake) + "\n" +
		"quadratic-by-intake = " + ftoa(c.QuadraticByIntake) + "\n" +
		"cubic-by-intake = " + ftoa(c.CubicByIntake) + "\n\n"
}

func TestLoadTablesRejectsMisspelledKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.toml")
	var content string
	for _, c := range Default().Tables() {
		content += tomlEntry(c.AgeGroup.String(), c.Term.String(), c)
	}
	content = strings.ReplaceAll(content, "intercept-mean", "intercept_mean")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadProvider(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "intercept_mean")
}

func TestValidateRejectsFlattenPastMaxMeetings(t *testing.T) {
	c, err := Default().LookupShortTerm(model.Adult)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	c.FlattenMeeting = c.MaxMeetings + 1
	assert.ErrorIs(t, c.Validate(), model.ErrInvalidInput)
}

func TestNewTableProviderRejectsOverlappingTerms(t *testing.T) {
	tables := Default().Tables()
	for i := range tables {
		if tables[i].AgeGroup == model.Child && tables[i].Term == LongTerm {
			tables[i].MinMeetings = tables[i-1].MaxMeetings
		}
	}
	_, err := NewTableProvider(tables)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "overlaps")

	_, err = NewTableProvider(Default().Tables())
	assert.NoError(t, err)
}
