package pdfwriter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T, opts ...Option) *Document {
	t.Helper()
	d, err := New(opts...)
	require.NoError(t, err)
	return d
}

const helloContent = "BT\n/F1 14 Tf\n108 734 Td\n(Hello World from Go!) Tj\nET\n" +
	"q\n1 w\n0 j\n0 J\n0.5 0 1 RG\n100 200 m\n200 500 l\n10 200 l\n" +
	"40 250 100 300 150 200 c\n0 0 l\nS\nQ\n"

// buildHelloWorld writes an A4 page with a link annotation, a line of
// Helvetica text and a stroked path, then finishes d.
func buildHelloWorld(t *testing.T, d *Document) []byte {
	t.Helper()
	catalogID := d.Alloc()
	treeID := d.Alloc()
	pageID := d.Alloc()
	fontID := d.Alloc()
	contentID := d.Alloc()

	require.NoError(t, d.Catalog(catalogID).Pages(treeID).Finish())
	require.NoError(t, d.PageTree(treeID).Kids(pageID).Finish())

	page := d.Page(pageID).MediaBox(A4).Parent(treeID).Contents(contentID)
	annots := page.Annotations()
	link := annots.Push().
		Subtype(AnnotLink).
		Rect(NewRect(215, 730, 251, 748)).
		Contents("Link to the Rust project web page").
		ColorRGB(0, 0, 1).
		Action(Action{Type: ActionURI, URI: "https://www.rust-lang.org/"}).
		BorderStyle(BorderStyle{Width: 2, Style: BorderUnderline})
	require.NoError(t, link.Finish())
	require.NoError(t, annots.Finish())
	require.NoError(t, page.Resources().Font("F1", fontID).Finish())
	require.NoError(t, page.Finish())

	require.NoError(t, d.Type1Font(fontID).BaseFont("Helvetica").Finish())

	c := NewContent().
		BeginText().
		SetFont("F1", 14).
		MoveText(108, 734).
		Show("Hello World from Go!").
		EndText()
	c.SaveState().
		SetLineWidth(1).
		SetLineJoin(MiterJoin).
		SetLineCap(ButtCap).
		SetStrokeRGB(0.5, 0, 1).
		MoveTo(100, 200).
		LineTo(200, 500).
		LineTo(10, 200).
		CubicTo(40, 250, 100, 300, 150, 200).
		LineTo(0, 0).
		Stroke().
		RestoreState()
	require.NoError(t, d.ContentStream(contentID, c))

	out, err := d.Finish()
	require.NoError(t, err)
	return out
}

// buildPages writes a catalog and a single page tree holding n empty pages.
func buildPages(t *testing.T, d *Document, n int) (tree Ref, pages []Ref) {
	t.Helper()
	catalogID := d.Alloc()
	tree = d.Alloc()
	for i := 0; i < n; i++ {
		pages = append(pages, d.Alloc())
	}
	require.NoError(t, d.Catalog(catalogID).Pages(tree).Finish())
	require.NoError(t, d.PageTree(tree).Kids(pages...).Finish())
	for _, p := range pages {
		require.NoError(t, d.Page(p).MediaBox(A4).Parent(tree).Finish())
	}
	return tree, pages
}

type xrefEntry struct {
	offset int
	gen    int
	inUse  bool
}

// parseXRef follows startxref and decodes the cross-reference table.
func parseXRef(t *testing.T, out []byte) []xrefEntry {
	t.Helper()
	i := bytes.LastIndex(out, []byte("startxref\n"))
	require.NotEqual(t, -1, i, "no startxref")
	var start int
	_, err := fmt.Sscanf(string(out[i+len("startxref\n"):]), "%d", &start)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out[start:], []byte("xref\n")), "startxref does not point at xref")

	lines := strings.Split(string(out[start:]), "\n")
	var first, n int
	_, err = fmt.Sscanf(lines[1], "%d %d", &first, &n)
	require.NoError(t, err)
	require.Zero(t, first)

	entries := make([]xrefEntry, n)
	for j := range entries {
		line := lines[2+j]
		require.Len(t, line+"\n", 20, "xref entry %d", j)
		var kind string
		_, err := fmt.Sscanf(line, "%d %d %s", &entries[j].offset, &entries[j].gen, &kind)
		require.NoError(t, err)
		entries[j].inUse = kind == "n"
	}
	return entries
}

// objectBody returns the text between "N 0 obj\n" and "\nendobj".
func objectBody(t *testing.T, out []byte, r Ref) string {
	t.Helper()
	entries := parseXRef(t, out)
	require.Greater(t, len(entries), int(r))
	e := entries[r]
	require.True(t, e.inUse)
	rest := out[e.offset:]
	header := fmt.Sprintf("%d 0 obj\n", r)
	require.True(t, bytes.HasPrefix(rest, []byte(header)))
	rest = rest[len(header):]
	end := bytes.Index(rest, []byte("\nendobj\n"))
	require.NotEqual(t, -1, end)
	return string(rest[:end])
}
