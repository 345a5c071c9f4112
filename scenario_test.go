package rtree

import (
	"fmt"
	"sort"
	"testing"

	"github.com/npillmayer/rtree/geom"
	"github.com/stretchr/testify/require"
)

// End-to-end scenarios over the default 2-dimensional configuration.

func defaultTree(t *testing.T) *Tree[float64, string] {
	t.Helper()
	tree, err := New[float64, string](Config{})
	require.NoError(t, err)
	return tree
}

func TestScenarioPointQuery(t *testing.T) {
	tree := defaultTree(t)
	require.NoError(t, tree.Insert(geom.Point[float64]{0, 0}, geom.Point[float64]{15, 20}, "a"))
	require.NoError(t, tree.Insert(geom.Point[float64]{-2, -1}, geom.Point[float64]{1, 2}, "b"))
	require.NoError(t, tree.Insert(geom.Point[float64]{-1, -1}, geom.Point[float64]{1, 3}, "c"))
	require.NoError(t, tree.Insert(geom.Point[float64]{5, 6}, geom.Point[float64]{5, 6}, "d"))

	res, err := tree.Search(geom.Point[float64]{6, 6})
	require.NoError(t, err)
	var tags []string
	for _, v := range res.Range() {
		tags = append(tags, v)
	}
	sort.Strings(tags)
	require.Equal(t, []string{"a", "d"}, tags)

	// The root extent tightly encloses all four boxes.
	want := geom.NewRect(geom.Point[float64]{-2, -1}, geom.Point[float64]{15, 20})
	require.True(t, tree.Extent().Equal(want), "extent is %v", tree.Extent())
}

func TestScenarioGridInsertAndSplit(t *testing.T) {
	tree := defaultTree(t)
	for i := 0; i < 200; i++ {
		x := float64(i)
		err := tree.Insert(geom.Point[float64]{x, x}, geom.Point[float64]{x + 1, x + 1},
			fmt.Sprintf("sq%d", i))
		require.NoError(t, err)
		require.NoError(t, tree.CheckIntegrity(IntegritySilent, nil))
	}
	require.Equal(t, 200, tree.Size())
	require.LessOrEqual(t, tree.Height(), 3)

	// An interior point hits exactly its own square.
	res, err := tree.Search(geom.Point[float64]{100.5, 100.5})
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	cur := res.Cursor()
	require.True(t, cur.Next())
	require.Equal(t, "sq100", cur.Value())

	// A lattice point lies on the shared corner of two squares; corner
	// containment is inclusive on both ends.
	res, err = tree.Search(geom.Point[float64]{100, 100})
	require.NoError(t, err)
	var tags []string
	for _, v := range res.Range() {
		tags = append(tags, v)
	}
	sort.Strings(tags)
	require.Equal(t, []string{"sq100", "sq99"}, tags)
}

func TestScenarioEraseFromGrid(t *testing.T) {
	tree := defaultTree(t)
	for i := 0; i < 200; i++ {
		x := float64(i)
		err := tree.Insert(geom.Point[float64]{x, x}, geom.Point[float64]{x + 1, x + 1},
			fmt.Sprintf("sq%d", i))
		require.NoError(t, err)
	}

	res, err := tree.Search(geom.Point[float64]{50.5, 50.5})
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	cur := res.Cursor()
	require.True(t, cur.Next())
	require.NoError(t, tree.Erase(cur))

	require.NoError(t, tree.CheckIntegrity(IntegritySilent, nil))
	require.Equal(t, 199, tree.Size())

	for i := 0; i < 200; i++ {
		res, err := tree.Search(geom.Point[float64]{float64(i) + 0.5, float64(i) + 0.5})
		require.NoError(t, err)
		if i == 50 {
			require.Equal(t, 0, res.Len(), "erased square still findable")
		} else {
			require.Equal(t, 1, res.Len(), "square %d lost", i)
		}
	}
}

func TestScenarioSplitAxisWithDefaults(t *testing.T) {
	tree := defaultTree(t)
	// MaxFanout+1 rectangles sharing start.x = 0 with monotonically
	// striding start.y, inserted in y order: the split must separate them
	// by y, leaving two leaves with contiguous, non-interleaved y ranges.
	for i := 0; i <= DefaultMaxFanout; i++ {
		y := float64(i * 10)
		err := tree.Insert(geom.Point[float64]{0, y}, geom.Point[float64]{20, y + 5},
			fmt.Sprintf("r%d", i))
		require.NoError(t, err)
	}
	require.Equal(t, DirectoryNonleaf, tree.root.typ)
	require.Equal(t, 2, tree.root.count)
	leaf1 := &tree.root.dir.children[0]
	leaf2 := &tree.root.dir.children[1]
	require.Less(t, leaf1.box.End[1], leaf2.box.Start[1],
		"leaves must cover disjoint y ranges, got %v and %v", leaf1.box, leaf2.box)
	require.Equal(t, leaf1.box.Start[0], leaf2.box.Start[0],
		"a y split keeps the shared x range")
	require.NoError(t, tree.CheckIntegrity(IntegritySilent, nil))
}

func TestScenarioDimensionMismatchLeavesTreeUnchanged(t *testing.T) {
	tree := defaultTree(t)
	err := tree.Insert(geom.Point[float64]{0}, geom.Point[float64]{0}, "a")
	require.ErrorIs(t, err, geom.ErrDimensionMismatch)
	require.True(t, tree.Empty())
	require.NoError(t, tree.CheckIntegrity(IntegritySilent, nil))
}
