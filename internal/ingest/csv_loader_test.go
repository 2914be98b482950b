package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comments.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVFileNotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, ""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "Review Text\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadCSVNoCommentColumn(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "id,price\n1,9.99\n"))
	assert.ErrorIs(t, err, ErrNoCommentColumn)
}

func TestLoadCSVMalformed(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "Review Text\n\"unterminated\n"))
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestLoadCSVCommentColumnKeywords(t *testing.T) {
	for _, header := range []string{"comment", "Customer Feedback", "Review Text", "free_text", "Survey Response"} {
		comments, err := LoadCSV(writeCSV(t, header+"\nhello there\n"))
		require.NoError(t, err, "header %q", header)
		require.Len(t, comments, 1)
		assert.Equal(t, "hello there", comments[0].Text)
	}
}

func TestLoadCSVOptionalColumns(t *testing.T) {
	csv := "Product,Review Text,Rating,Date\nScale,works great,4.5,2024-01-01\nScale,meh,,2024-01-02\n"
	comments, err := LoadCSV(writeCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "Scale", comments[0].Product)
	require.NotNil(t, comments[0].Rating)
	assert.Equal(t, 4.5, *comments[0].Rating)
	assert.Equal(t, "2024-01-01", comments[0].Date)
	assert.Nil(t, comments[1].Rating)
}

func TestPreprocessDropsEmptyAndAssignsIDs(t *testing.T) {
	comments := []models.Comment{
		{Text: "Great product, love it!"},
		{Text: "Terrible, broke immediately"},
		{Text: ""},
		{Text: "<p></p>"},
	}

	processed := Preprocess(comments)

	require.Len(t, processed, 2)
	assert.Equal(t, "great product, love it!", processed[0].CleanedText)
	assert.Equal(t, "terrible, broke immediately", processed[1].CleanedText)
	for _, c := range processed {
		assert.NotEmpty(t, c.ID)
	}
}
