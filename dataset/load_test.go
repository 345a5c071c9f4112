package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/rtree"
	"github.com/npillmayer/rtree/geom"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxes.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRecord(t *testing.T) {
	rec, err := parseRecord("0 0 15 20 first rectangle")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Start.Equal(geom.Point[float64]{0, 0}) || !rec.End.Equal(geom.Point[float64]{15, 20}) {
		t.Fatalf("unexpected corners %v %v", rec.Start, rec.End)
	}
	if rec.Tag != "first rectangle" {
		t.Fatalf("unexpected tag %q", rec.Tag)
	}
	if _, err := parseRecord("1 2 3"); err == nil {
		t.Errorf("expected an error for a record with too few fields")
	}
	if _, err := parseRecord("a b c d"); err == nil {
		t.Errorf("expected an error for non-numeric coordinates")
	}
}

func TestPopulateInsertsAllRecords(t *testing.T) {
	path := writeDataset(t, `# sample dataset
0 0 15 20 a
-2 -1 1 2 b

-1 -1 1 3 c
5 6 5 6 d
`)
	feed, err := Open(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := rtree.New[float64, string](rtree.Config{})
	if err != nil {
		t.Fatal(err)
	}
	n, err := Populate(tree, feed)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || tree.Size() != 4 {
		t.Fatalf("expected 4 inserted records, got %d (tree size %d)", n, tree.Size())
	}
	res, err := tree.Search(geom.Point[float64]{6, 6})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 2 {
		t.Fatalf("expected 2 matches at (6, 6), got %d", res.Len())
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt"), 0); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoaderRecordsParseErrors(t *testing.T) {
	path := writeDataset(t, "0 0 1 1 good\nbroken line\n2 2 3 3 also good\n")
	feed, err := Open(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := rtree.New[float64, string](rtree.Config{})
	if err != nil {
		t.Fatal(err)
	}
	n, err := Populate(tree, feed)
	if err == nil {
		t.Fatalf("expected the parse error to surface")
	}
	if n != 2 {
		t.Fatalf("expected the 2 good records to be inserted, got %d", n)
	}
}
