package ratingfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/orsprogress/internal/model"
)

func TestParseMixedLines(t *testing.T) {
	input := `# intake
12.1

2,2024-01-09,3.2
3,,9.7
,2024-01-23,6.7
`
	items, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Nil(t, items[0].ID)
	assert.Equal(t, 12.1, items[0].Score)

	require.NotNil(t, items[1].ID)
	assert.Equal(t, int64(2), *items[1].ID)
	require.NotNil(t, items[1].DateCompleted)
	assert.Equal(t, "2024-01-09", *items[1].DateCompleted)

	assert.Nil(t, items[2].DateCompleted)
	assert.Nil(t, items[3].ID)
	assert.Equal(t, 6.7, items[3].Score)
}

func TestParseErrorsCarryLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("10\n\n41\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 3")

	_, err = Parse(strings.NewReader("10\nabc\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = Parse(strings.NewReader("1,2\n"))
	assert.ErrorContains(t, err, "line 1")

	_, err = Parse(strings.NewReader("x,2024-01-01,10\n"))
	assert.ErrorContains(t, err, "invalid id")
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing\n\n"))
	assert.ErrorContains(t, err, "empty")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.txt")
	require.NoError(t, os.WriteFile(path, []byte("20.1\n22.2\n"), 0o644))
	items, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParseScores(t *testing.T) {
	scores, err := ParseScores("12.1, 3.2 9.7;6.7")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.1, 3.2, 9.7, 6.7}, scores)

	_, err = ParseScores("")
	assert.Error(t, err)
	_, err = ParseScores("10,50")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = ParseScores("10,ten")
	assert.Error(t, err)
}
