package graph

import "fmt"

// Validate checks the mechanically verifiable graph invariants: unique node
// ids, every edge referencing an existing node, and scores/confidences inside
// [0, 1]. It returns the first violation found, or nil for a well-formed
// graph.
func (g *ActionGraph) Validate() error {
	ids := make(map[string]bool)

	var collect func(nodes []ElementNode) error
	collect = func(nodes []ElementNode) error {
		for i := range nodes {
			n := &nodes[i]
			if n.ID == "" {
				return fmt.Errorf("node with empty id (tag %q)", n.Tag)
			}
			if ids[n.ID] {
				return fmt.Errorf("duplicate node id %q", n.ID)
			}
			ids[n.ID] = true
			if n.Score < 0 || n.Score > 1 {
				return fmt.Errorf("node %q score %v outside [0,1]", n.ID, n.Score)
			}
			if err := collect(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := collect(g.Nodes); err != nil {
		return err
	}

	for i := range g.Edges {
		e := &g.Edges[i]
		if !ids[e.ElementID] {
			return fmt.Errorf("edge %d (%s) references unknown element id %q", i, e.Type, e.ElementID)
		}
		if e.Confidence < 0 || e.Confidence > 1 {
			return fmt.Errorf("edge %d (%s) confidence %v outside [0,1]", i, e.Type, e.Confidence)
		}
	}
	return nil
}

// NodeByID returns the node with the given id, searching the tree depth
// first, or nil if no such node exists.
func (g *ActionGraph) NodeByID(id string) *ElementNode {
	var find func(nodes []ElementNode) *ElementNode
	find = func(nodes []ElementNode) *ElementNode {
		for i := range nodes {
			if nodes[i].ID == id {
				return &nodes[i]
			}
			if n := find(nodes[i].Children); n != nil {
				return n
			}
		}
		return nil
	}
	return find(g.Nodes)
}

// WalkNodes calls fn for every node in the graph in document order. If fn
// returns false the walk stops early.
func (g *ActionGraph) WalkNodes(fn func(n *ElementNode) bool) {
	var walk func(nodes []ElementNode) bool
	walk = func(nodes []ElementNode) bool {
		for i := range nodes {
			if !fn(&nodes[i]) {
				return false
			}
			if !walk(nodes[i].Children) {
				return false
			}
		}
		return true
	}
	walk(g.Nodes)
}
