// Package csvimport parses the spreadsheet-export format the application
// accepts for bulk catalog additions. The parser fails closed: when the
// header row is missing any of the required columns the whole file yields
// zero rows, and the caller reports an import count of zero.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"medialog/internal/store"
)

// Required header columns, matched case-insensitively by substring.
const (
	headerName      = "name"
	headerMediaType = "media type"
	headerNotes     = "notes"
	headerThumbnail = "thumbnail"
)

var (
	parenURLPattern = regexp.MustCompile(`\((https?://[^)]+)\)`)
	bareURLPattern  = regexp.MustCompile(`https?://\S+`)
)

// Parse converts CSV data into prospective catalog entries. The now argument
// feeds the generated ids (imported-<unix-millis>-<row-index>), so two
// imports of the same file at different instants produce distinct ids and
// both land in the catalog; only imports within the same millisecond dedupe
// against each other.
func Parse(data string, now time.Time) []store.Content {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}

	nameIdx := findColumn(header, headerName)
	typeIdx := findColumn(header, headerMediaType)
	notesIdx := findColumn(header, headerNotes)
	thumbIdx := findColumn(header, headerThumbnail)
	if nameIdx < 0 || typeIdx < 0 || notesIdx < 0 || thumbIdx < 0 {
		return nil
	}

	millis := now.UnixMilli()
	var items []store.Content
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Lenient parse: a malformed row is skipped, not fatal.
			continue
		}
		items = append(items, store.Content{
			ID:           fmt.Sprintf("imported-%d-%d", millis, i),
			Title:        strings.TrimSpace(field(record, nameIdx)),
			Type:         NormalizeType(field(record, typeIdx)),
			Description:  strings.TrimSpace(field(record, notesIdx)),
			ThumbnailURL: ExtractThumbnailURL(field(record, thumbIdx)),
		})
	}
	return items
}

// NormalizeType maps free-form media type labels onto catalog types via a
// fixed synonym table; anything unrecognized falls back to the default type.
func NormalizeType(value string) store.ContentType {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "movie", "film":
		return store.TypeMovie
	case "tv", "tv show", "tv-show", "show", "series":
		return store.TypeTVShow
	case "book", "novel":
		return store.TypeBook
	case "game", "video game", "video-game", "videogame":
		return store.TypeVideoGame
	default:
		return store.DefaultType
	}
}

// ExtractThumbnailURL pulls a usable URL out of a thumbnail cell. Cells may
// wrap the URL in a parenthetical after a filename ("cover.jpg (https://…)")
// or carry a bare http(s) token; anything else yields an empty string.
func ExtractThumbnailURL(cell string) string {
	clean := strings.Trim(strings.TrimSpace(cell), `"'`)
	if clean == "" {
		return ""
	}
	if m := parenURLPattern.FindStringSubmatch(clean); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareURLPattern.FindString(clean); m != "" {
		return strings.TrimSpace(strings.TrimRight(m, ")],"))
	}
	return ""
}

func findColumn(header []string, substr string) int {
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), substr) {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
