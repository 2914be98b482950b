// Package ingest turns uploaded CSV files and scraped product pages into
// comment records ready for classification.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
	"github.com/DEVILXD31/Sentibuddy/internal/preprocess"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrEmptyFile       = errors.New("the CSV file is empty")
	ErrBadFormat       = errors.New("error parsing the CSV file")
	ErrNoCommentColumn = errors.New("the CSV file must contain a column with comments/feedback/reviews")
)

// commentKeywords identify the column holding free-text feedback. Matching is
// case-insensitive and substring-based, so headers like "Review Text" work.
var commentKeywords = []string{"comment", "feedback", "review", "text", "response"}

var (
	productKeywords = []string{"product", "item"}
	ratingKeywords  = []string{"rating", "score", "stars"}
	dateKeywords    = []string{"date", "time"}
)

// LoadCSV reads a CSV file into comment records. It fails with a distinct
// error when the file is missing, empty, unparsable, or has no recognizable
// comment column.
func LoadCSV(path string) ([]models.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	commentIdx := findColumn(header, commentKeywords)
	if commentIdx < 0 {
		return nil, ErrNoCommentColumn
	}
	productIdx := findColumn(header, productKeywords)
	ratingIdx := findColumn(header, ratingKeywords)
	dateIdx := findColumn(header, dateKeywords)

	var comments []models.Comment
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}

		comment := models.Comment{Text: field(record, commentIdx)}
		comment.Product = field(record, productIdx)
		comment.Date = field(record, dateIdx)
		if raw := field(record, ratingIdx); raw != "" {
			if rating, err := strconv.ParseFloat(raw, 64); err == nil {
				comment.Rating = &rating
			}
		}
		comments = append(comments, comment)
	}

	if len(comments) == 0 {
		return nil, ErrEmptyFile
	}

	slog.Info("[CSVLoader] Loaded comments from file",
		slog.String("path", path),
		slog.Int("rows", len(comments)))

	return comments, nil
}

// Preprocess derives the cleaned text for every record, assigns record IDs,
// and drops rows that are empty after cleaning.
func Preprocess(comments []models.Comment) []models.Comment {
	processed := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		cleaned := preprocess.CleanText(c.Text)
		if cleaned == "" {
			continue
		}
		c.ID = uuid.NewString()
		c.CleanedText = cleaned
		processed = append(processed, c)
	}
	return processed
}

// findColumn returns the index of the first header containing any of the
// keywords, or -1.
func findColumn(header []string, keywords []string) int {
	for i, col := range header {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
