package canvasrenderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByLCY/cvpress/layout"
)

var sansFont = layout.FontRef{Family: layout.FamilySans}

func TestLayoutLinesWrapsAtWhitespace(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 12 * layout.PtToMm

	lines, err := r.LayoutLines("hello world again", 10, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
	// 只允许在空白处断行：拼回去应当得到原词序列
	var words []string
	for _, line := range lines {
		words = append(words, strings.Fields(line.Content)...)
	}
	if got := strings.Join(words, " "); got != "hello world again" {
		t.Fatalf("words were split mid-token: %q", got)
	}
}

func TestLayoutLinesHonorsNewlines(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 12 * layout.PtToMm

	lines, err := r.LayoutLines("foo\n\nbar", 100, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines including blank, got %d", len(lines))
	}
	if lines[1].Content != "" {
		t.Fatalf("expected middle line to be blank, got %q", lines[1].Content)
	}
}

// 超宽词不做词内拆分：独占一行，宽度允许越过限制。
func TestOverlongWordKeepsSingleLine(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 12 * layout.PtToMm
	word := "Supercalifragilisticexpialidocious"

	lines, err := r.LayoutLines("a "+word+" b", 8, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, line := range lines {
		if strings.Contains(line.Content, word) {
			found = true
			if line.Width <= 8 {
				t.Fatalf("overlong line should exceed the limit, width=%g", line.Width)
			}
		}
	}
	if !found {
		t.Fatalf("word was split across lines: %+v", lines)
	}
}

// 输入起始处的空白与折行处的空白一样丢弃，首行不被缩进。
func TestLeadingWhitespaceNotKeptOnFirstLine(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 12 * layout.PtToMm

	lines, err := r.LayoutLines("   hello", 100, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0].Content != "hello" {
		t.Fatalf("unexpected lines: %+v", lines)
	}

	plain, err := r.LayoutLines("hello", 100, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0].Width != plain[0].Width {
		t.Fatalf("leading whitespace counted toward width: %g vs %g", lines[0].Width, plain[0].Width)
	}
}

func TestLayoutLinesStaysWithinLimit(t *testing.T) {
	r := NewRenderer()
	fontSizeMM := 10 * layout.PtToMm
	content := "Developed a pipeline for data processing achieving a twenty percent improvement over current benchmarks"

	limit := 60.0
	lines, err := r.LayoutLines(content, limit, sansFont, fontSizeMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if strings.Contains(line.Content, " ") && line.Width > limit {
			t.Fatalf("line %d exceeds limit: width=%g content=%q", i, line.Width, line.Content)
		}
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer()
	result := &layout.Result{
		Meta: layout.DocumentMeta{Title: "test", Creator: "cvpress"},
		Pages: []layout.Page{{
			Width: 210, Height: 297, Margin: 10,
			Texts: []layout.TextBox{{
				X: 10, Y: 10, Width: 190,
				FontSize: 10 * layout.PtToMm, LineSpacing: 10 * layout.PtToMm * 1.3,
				Font:  sansFont,
				Lines: []layout.TextLine{{Content: "hello"}},
			}},
			Rects: []layout.Rect{{X: 10, Y: 20, Width: 190, Height: 6, Fill: layout.Color{R: 74, G: 85, B: 104}}},
			Lines: []layout.Line{{X1: 10, Y1: 30, X2: 200, Y2: 30, Width: 0.4}},
		}},
	}

	data, err := r.Render(result)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:4])
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	r := NewRenderer()
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatal("expected error for result without pages")
	}
}

// 1x1 的 PNG。
const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestDecodeDataURI(t *testing.T) {
	img, err := decodeDataURI(tinyPNG)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}

	if _, err := decodeDataURI("https://example.com/logo.png"); err == nil {
		t.Fatal("expected error for non data URI")
	}
	if _, err := decodeDataURI("data:image/png;base64,not-base64!"); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
}
