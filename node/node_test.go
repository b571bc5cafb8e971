package node_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tricks/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Construction covers defaults, partial overrides and option order.
func TestNew_Construction(t *testing.T) {
	tests := []struct {
		name  string
		build func() *node.Node
		p, q  int
	}{
		{"defaults", func() *node.Node { return node.New() }, 1, 4},
		{"first only", func() *node.Node { return node.New(node.WithP(9)) }, 9, 4},
		{"positional zeros", func() *node.Node { return node.Of(0, 0) }, 0, 0},
		{"named reversed", func() *node.Node { return node.New(node.WithQ(5), node.WithP(4)) }, 4, 5},
		{"second only", func() *node.Node { return node.New(node.WithQ(99)) }, 1, 99},
		{"later wins", func() *node.Node { return node.New(node.WithP(2), node.WithP(3)) }, 3, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.build()
			assert.Equal(t, tc.p, n.P, "P")
			assert.Equal(t, tc.q, n.Q, "Q")
		})
	}
}

// TestNode_String checks the human-readable rendering.
func TestNode_String(t *testing.T) {
	assert.Equal(t, "Node object with p=1, and q=4", node.New().String())
	assert.Equal(t, "Node object with p=-3, and q=0", fmt.Sprint(node.Of(-3, 0)))
}

// TestNode_Call verifies (a+P, b+Q) through both Call and Func.
func TestNode_Call(t *testing.T) {
	n := node.New()

	p, q := n.Call(7, 8)
	assert.Equal(t, 8, p)
	assert.Equal(t, 12, q)

	f := n.Func()
	p, q = f(7, 8)
	assert.Equal(t, 8, p)
	assert.Equal(t, 12, q)

	var c node.Caller = n
	p, q = c.Call(0, 0)
	assert.Equal(t, 1, p)
	assert.Equal(t, 4, q)
}

// TestNode_FuncTable stores closures from several nodes in one table.
func TestNode_FuncTable(t *testing.T) {
	table := []node.Binary{node.New().Func(), node.Of(10, 20).Func()}
	want := [][2]int{{2, 5}, {11, 21}}
	for i, f := range table {
		p, q := f(1, 1)
		assert.Equal(t, want[i], [2]int{p, q}, "entry %d", i)
	}
}

// TestWithOnCreate checks hook order and that hooks see final fields.
func TestWithOnCreate(t *testing.T) {
	var seen []string
	n := node.New(
		node.WithOnCreate(func(n *node.Node) { seen = append(seen, "first:"+n.String()) }),
		node.WithP(7),
		node.WithOnCreate(func(*node.Node) { seen = append(seen, "second") }),
	)
	require.NotNil(t, n)
	assert.Equal(t, []string{"first:Node object with p=7, and q=4", "second"}, seen)

	assert.Panics(t, func() { node.WithOnCreate(nil) }, "nil hook must panic")
}

// TestNewDumb prints through fmt's default struct formatting.
func TestNewDumb(t *testing.T) {
	d := node.NewDumb()
	require.NotNil(t, d)
	assert.Equal(t, "&{}", fmt.Sprint(d))
}
