package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cimnet/core"
	"github.com/katalvlaran/cimnet/export"
)

// pathWithIsolated builds 0-1, 1-2 plus the isolated node 3.
func pathWithIsolated() *core.Network {
	g := core.NewNetwork()
	g.Link(1, 0)
	g.Link(1, 2)
	g.EnsureNode(3)

	return g
}

func TestWriteEdgeList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList[core.ID](&buf, pathWithIsolated(), export.WithSortedNodes()))
	require.Equal(t, "0,1\n1,2\n", buf.String())

	buf.Reset()
	require.NoError(t, export.WriteEdgeList[core.ID](&buf, pathWithIsolated(),
		export.WithSortedNodes(), export.WithDelimiter(" ")))
	require.Equal(t, "0 1\n1 2\n", buf.String())
}

func TestWriteEdgeList_Directed(t *testing.T) {
	d := core.NewDirectedNetwork()
	d.Link(2, 0)
	d.Link(0, 2)
	d.Link(1, 0)

	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList[core.ID](&buf, d, export.WithSortedNodes()))
	require.Equal(t, "0,2\n1,0\n2,0\n", buf.String())
}

func TestWriteAdjacencyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyList[core.ID](&buf, pathWithIsolated(), export.WithSortedNodes()))
	require.Equal(t, "0,1\n1,0,2\n2,1\n3,\n", buf.String())
}

func TestWriteAdjacencyList_Directed(t *testing.T) {
	d := core.NewDirectedNetwork()
	d.Link(0, 1)
	d.Link(0, 2)
	d.EnsureNode(3)

	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyList[core.ID](&buf, d, export.WithSortedNodes()))
	require.Equal(t, "0,1,2\n1\n2\n3,\n", buf.String())
}

func TestWriteAdjacencyMatrix(t *testing.T) {
	g := pathWithIsolated()

	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyMatrix[core.ID](&buf, g, nil, export.WithSortedNodes()))
	require.Equal(t, ""+
		",0,1,2,3\n"+
		"0,0,1,0,0\n"+
		"1,1,0,1,0\n"+
		"2,0,1,0,0\n"+
		"3,0,0,0,0\n", buf.String())

	buf.Reset()
	require.NoError(t, export.WriteAdjacencyMatrix[core.ID](&buf, g, []core.ID{2, 1}, export.WithoutHeaders()))
	require.Equal(t, "0,1\n1,0\n", buf.String())
}

func TestWriteAdjacencyMatrix_Directed(t *testing.T) {
	d := core.NewDirectedNetwork()
	d.Link(0, 1)

	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyMatrix[core.ID](&buf, d, []core.ID{0, 1}))
	require.Equal(t, ",0,1\n0,0,1\n1,0,0\n", buf.String())
}

func TestWriteStringKeys(t *testing.T) {
	g := core.NewUndirected[string, core.None, float64]()
	g.AddEdge("b", "a", 1.5)

	var buf bytes.Buffer
	require.NoError(t, export.WriteEdgeList[string](&buf, g, export.WithDelimiter("\t")))
	require.Equal(t, "a\tb\n", buf.String())
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteErrorsPropagate(t *testing.T) {
	err := export.WriteEdgeList[core.ID](failingWriter{}, pathWithIsolated())
	require.ErrorIs(t, err, errDiskFull)
	require.ErrorContains(t, err, "export: WriteEdgeList")
}

func TestSaveEdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.csv")
	require.NoError(t, export.SaveEdgeList[core.ID](path, pathWithIsolated(), export.WithSortedNodes()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0,1\n1,2\n", string(data))

	err = export.SaveEdgeList[core.ID](filepath.Join(t.TempDir(), "missing", "x.csv"), pathWithIsolated())
	require.Error(t, err)
}

func TestWithDelimiterPanics(t *testing.T) {
	require.Panics(t, func() { export.WithDelimiter("") })
}
