package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGraph() *ActionGraph {
	return &ActionGraph{
		URL: "https://example.com",
		Nodes: []ElementNode{
			{
				ID:   "e0",
				Type: TypeOther,
				Tag:  "body",
				Children: []ElementNode{
					{ID: "e0.0", Type: TypeButton, Tag: "button", Score: 0.8},
					{ID: "e0.1", Type: TypeLink, Tag: "a", Score: 0.7},
				},
			},
		},
		Edges: []Action{
			{Type: ActionClick, ElementID: "e0.0", Description: "Click button", Confidence: 0.9},
			{Type: ActionNavigate, ElementID: "e0.1", Description: "Navigate", Confidence: 0.9},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *ActionGraph)
		wantErr string
	}{
		{
			name:   "well-formed graph",
			mutate: func(g *ActionGraph) {},
		},
		{
			name: "duplicate node id",
			mutate: func(g *ActionGraph) {
				g.Nodes[0].Children[1].ID = "e0.0"
			},
			wantErr: "duplicate node id",
		},
		{
			name: "empty node id",
			mutate: func(g *ActionGraph) {
				g.Nodes[0].Children[0].ID = ""
			},
			wantErr: "empty id",
		},
		{
			name: "edge references unknown node",
			mutate: func(g *ActionGraph) {
				g.Edges[0].ElementID = "missing"
			},
			wantErr: "unknown element id",
		},
		{
			name: "score out of range",
			mutate: func(g *ActionGraph) {
				g.Nodes[0].Children[0].Score = 1.5
			},
			wantErr: "outside [0,1]",
		},
		{
			name: "confidence out of range",
			mutate: func(g *ActionGraph) {
				g.Edges[1].Confidence = -0.1
			},
			wantErr: "outside [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGraph()
			tt.mutate(g)
			err := g.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNodeByID(t *testing.T) {
	g := validGraph()

	n := g.NodeByID("e0.1")
	require.NotNil(t, n)
	assert.Equal(t, TypeLink, n.Type)

	assert.Nil(t, g.NodeByID("nope"))
}

func TestWalkNodesOrder(t *testing.T) {
	g := validGraph()

	var order []string
	g.WalkNodes(func(n *ElementNode) bool {
		order = append(order, n.ID)
		return true
	})
	assert.Equal(t, []string{"e0", "e0.0", "e0.1"}, order)

	// Early termination stops the walk.
	var count int
	g.WalkNodes(func(n *ElementNode) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
