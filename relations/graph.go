package relations

import "qsieve/bigint"

// sentinel is the reserved vertex id representing the resolved value 1.
const sentinel = 0

// graph is an undirected, union-find-backed multigraph over large-prime
// cofactors: the sentinel vertex represents the value 1, and every
// other vertex is a distinct large prime seen as a partial relation's
// cofactor. Inserting an edge either grows the spanning forest or, when
// it reconnects a vertex to its own component, closes a cycle and
// yields a combined full relation.
//
// Union does not reparent at component roots, which would require an
// inverse of the accumulated relation; instead the vertex being
// attached is re-rooted in place so the new edge's relation labels it
// directly. This keeps combine a plain, non-invertible multiplicative
// accumulation.
type graph struct {
	n       *bigint.Int
	index   map[uint64]int // cofactor prime -> vertex id
	parent  []int
	edgeRel []*Relation // relation labeling the edge from vertex i to parent[i]; nil at a root
}

func newGraph(n *bigint.Int) *graph {
	g := &graph{
		n:       bigint.Copy(n),
		index:   map[uint64]int{1: sentinel},
		parent:  []int{sentinel},
		edgeRel: []*Relation{nil},
	}
	return g
}

func (g *graph) vertex(cofactor uint64) int {
	if id, ok := g.index[cofactor]; ok {
		return id
	}
	id := len(g.parent)
	g.index[cofactor] = id
	g.parent = append(g.parent, id)
	g.edgeRel = append(g.edgeRel, nil)
	return id
}

// root walks v's parent chain to its component root, without mutating
// the structure.
func (g *graph) root(v int) int {
	for g.parent[v] != v {
		v = g.parent[v]
	}
	return v
}

// pathRelation returns the combined relation along v's tree path to its
// component root (nil if v is already the root).
func (g *graph) pathRelation(v int) *Relation {
	var acc *Relation
	for g.parent[v] != v {
		if acc == nil {
			acc = g.edgeRel[v]
		} else {
			acc = combine(acc, g.edgeRel[v], g.n)
		}
		v = g.parent[v]
	}
	return acc
}

// reRoot makes v the root of its component, reversing parent pointers
// and edge labels along its former path to the root. The edge labels
// themselves are unchanged in value (combination is direction-agnostic
// for this multiplicative structure); only which endpoint is "parent"
// flips.
func (g *graph) reRoot(v int) {
	var chain []int
	cur := v
	for g.parent[cur] != cur {
		chain = append(chain, cur)
		cur = g.parent[cur]
	}
	chain = append(chain, cur) // ends with the old root

	for i := len(chain) - 1; i > 0; i-- {
		child, parentNode := chain[i], chain[i-1]
		g.parent[child] = parentNode
		g.edgeRel[child] = g.edgeRel[parentNode]
	}
	g.parent[v] = v
	g.edgeRel[v] = nil
}

// insert adds an edge between the vertices for cofactorA and cofactorB,
// labeled rel. If the endpoints were already connected, the edge closes
// a cycle and insert returns the combined relation for that cycle and
// true; otherwise it extends the spanning forest and returns (nil,
// false).
func (g *graph) insert(cofactorA, cofactorB uint64, rel *Relation) (*Relation, bool) {
	u := g.vertex(cofactorA)
	v := g.vertex(cofactorB)

	ru, rv := g.root(u), g.root(v)
	if ru == rv {
		relU := g.pathRelation(u)
		relV := g.pathRelation(v)
		combined := rel
		if relU != nil {
			combined = combine(relU, combined, g.n)
		}
		if relV != nil {
			combined = combine(relV, combined, g.n)
		}
		return combined, true
	}

	g.reRoot(u)
	g.parent[u] = v
	g.edgeRel[u] = rel
	return nil, false
}
