package export

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddict/dictation-app/cli/internal/record"
)

func TestMarkdownSkipsEmptyFields(t *testing.T) {
	md := Markdown(Document{Title: "Progress Notes", Record: note()})
	assert.Equal(t, "# Progress Notes\n\n## Vitals\n\n- **Bp:** 120/80\n", md)
}

func TestMarkdownNestedAndTopLevelFields(t *testing.T) {
	rec := record.NewBranch().
		Set("chief_complaint", "headache").
		Set("plan", record.NewBranch().
			Set("follow_up", record.NewBranch().Set("in_days", 7)).
			Set("notes", "line one\nline two"))

	md := Markdown(Document{Title: "SOAP Notes", Record: rec})
	want := strings.Join([]string{
		"# SOAP Notes",
		"",
		"- **Chief Complaint:** headache",
		"",
		"## Plan",
		"",
		"### Follow Up",
		"",
		"- **In Days:** 7",
		"- **Notes:** line one",
		"  line two",
		"",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestMarkdownEmptyRecordIsTitleOnly(t *testing.T) {
	assert.Equal(t, "# Empty\n", Markdown(Document{Title: "Empty", Record: record.NewBranch()}))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Progress Notes", "progress-notes"},
		{"  SOAP   Notes!! ", "soap-notes"},
		{"Visit #3 / 2026", "visit-3-2026"},
		{"", "document"},
		{"???", "document"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), tt.in)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"the quick", "brown fox"}, wrap("the quick brown fox", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4))
	assert.Equal(t, []string{"a", "", "b"}, wrap("a\n\nb", 10))
	assert.Equal(t, []string{"anything goes"}, wrap("anything goes", 0))
}

func TestNormalizeFormat(t *testing.T) {
	for in, want := range map[string]string{
		"":         "svg",
		"SVG":      "svg",
		".md":      "md",
		"markdown": "md",
		"json":     "json",
		" png ":    "png",
	} {
		got, err := NormalizeFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := NormalizeFormat("docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFileExporterWritesEachFormat(t *testing.T) {
	dir := t.TempDir()
	doc := Document{Title: "Progress Notes", Record: note()}

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			res, err := FileExporter{Dir: dir, Format: format}.Export(context.Background(), doc)
			require.NoError(t, err)
			assert.Equal(t, format, res.Format)
			assert.Equal(t, filepath.Join(dir, "progress-notes."+format), res.Location)

			data, err := os.ReadFile(res.Location)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			switch format {
			case "json":
				var got struct {
					Title  string         `json:"title"`
					Record map[string]any `json:"record"`
				}
				require.NoError(t, json.Unmarshal(data, &got))
				assert.Equal(t, "Progress Notes", got.Title)
				assert.Equal(t, map[string]any{"bp": "120/80", "temp": nil}, got.Record["vitals"])
			case "md":
				assert.Contains(t, string(data), "- **Bp:** 120/80")
			case "svg":
				assert.Contains(t, string(data), "<svg")
				assert.Contains(t, string(data), "Progress Notes")
				assert.Contains(t, string(data), "120/80")
				assert.NotContains(t, string(data), "Temp")
			case "png":
				f, err := os.Open(res.Location)
				require.NoError(t, err)
				defer f.Close()
				img, err := png.Decode(f)
				require.NoError(t, err)
				assert.Equal(t, pageWidth, img.Bounds().Dx())
			}
		})
	}
}

func TestFileExporterCreatesDirAndRejectsUnknownFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	res, err := FileExporter{Dir: dir, Format: "md"}.Export(context.Background(), Document{Title: "x", Record: note()})
	require.NoError(t, err)
	assert.FileExists(t, res.Location)

	_, err = FileExporter{Dir: dir, Format: "docx"}.Export(context.Background(), Document{Title: "x", Record: note()})
	assert.Error(t, err)
}

func TestFileExporterHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FileExporter{Dir: t.TempDir(), Format: "md"}.Export(ctx, Document{Title: "x", Record: note()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileExporterRejectsCyclicJSON(t *testing.T) {
	rec := record.NewBranch()
	rec.Set("self", rec)
	_, err := FileExporter{Dir: t.TempDir(), Format: "json"}.Export(context.Background(), Document{Title: "x", Record: rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), record.ErrCyclic.Error())
}

func TestPageHeightGrowsWithContent(t *testing.T) {
	short := buildPage(Document{Title: "x", Record: note()})
	long := buildPage(Document{Title: "x", Record: note().Set("plan", strings.Repeat("word ", 200))})
	assert.Greater(t, long.height, short.height)
	for _, r := range long.rows {
		assert.LessOrEqual(t, r.x+len(r.text)*charWidth, pageWidth-pageMargin+depthIndent)
	}
}
