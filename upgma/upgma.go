// Package upgma builds rooted, ultrametric trees from distance matrices with
// the Unweighted Pair Group Method with Arithmetic mean.
//
// Clustering is deterministic. When several pairs of clusters are tied for
// the smallest distance, the first pair found in a row-major scan (i outer,
// j inner, i < j) of the active clusters wins. A merged cluster takes the
// place of the first cluster of its pair, and the second is removed, so the
// relative order of every other cluster is preserved between iterations.
package upgma

import (
	"github.com/TuftsBCB/phylo/distance"
	"github.com/TuftsBCB/phylo/newick"
)

type cluster struct {
	node   newick.Node
	height float64
	size   int
}

// Cluster builds a UPGMA tree from `m`. Leaves are named after m.IDs and
// every internal node has exactly two children, in the order they were
// selected. The root has a branch length of 0.
//
// A matrix with a single sequence yields a single leaf. An empty or
// malformed matrix results in a *distance.InputError.
func Cluster(m *distance.Matrix) (newick.Node, error) {
	if m == nil || m.Len() == 0 {
		return nil, &distance.InputError{Reason: "no sequences"}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := m.Len()
	clusters := make([]cluster, n)
	dist := make([][]float64, n)
	for i := range clusters {
		clusters[i] = cluster{node: &newick.Leaf{Name: m.IDs[i]}, size: 1}
		dist[i] = append([]float64(nil), m.D[i]...)
	}

	for len(clusters) > 1 {
		i, j := closest(dist)
		ci, cj := clusters[i], clusters[j]
		height := dist[i][j] / 2

		merged := cluster{
			node: &newick.Internal{
				Children: []newick.Node{
					newick.WithLength(ci.node, branch(height, ci.height)),
					newick.WithLength(cj.node, branch(height, cj.height)),
				},
				Height: height,
			},
			height: height,
			size:   ci.size + cj.size,
		}

		// Average linkage, weighted by the number of leaves in each cluster.
		for k := range dist {
			if k == i || k == j {
				continue
			}
			d := (float64(ci.size)*dist[i][k] + float64(cj.size)*dist[j][k]) /
				float64(merged.size)
			dist[i][k], dist[k][i] = d, d
		}
		clusters[i] = merged
		clusters = remove(clusters, j)
		dist = removeRowCol(dist, j)
	}
	return clusters[0].node, nil
}

// closest returns the first pair (i, j), i < j, with the smallest distance.
// Later pairs replace it only when they are strictly closer.
func closest(dist [][]float64) (int, int) {
	bi, bj := 0, 1
	for i := 0; i < len(dist); i++ {
		for j := i + 1; j < len(dist); j++ {
			if dist[i][j] < dist[bi][bj] {
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// branch is the length of the edge from a child at height `child` to its
// parent at height `parent`. Rounding can make it fall just below zero.
func branch(parent, child float64) float64 {
	if parent < child {
		return 0
	}
	return parent - child
}

func remove(clusters []cluster, j int) []cluster {
	return append(clusters[:j], clusters[j+1:]...)
}

func removeRowCol(dist [][]float64, j int) [][]float64 {
	dist = append(dist[:j], dist[j+1:]...)
	for k := range dist {
		dist[k] = append(dist[k][:j], dist[k][j+1:]...)
	}
	return dist
}
