package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/roach88/soldict/internal/lang"
)

// CycleWarning represents a chain of sound changes that rewrites a segment
// back into itself.
//
// Cycles are warnings, not errors, because they may be intentional:
//   - Mergers (a -> b, then b -> a) collapse two segments
//   - Temporary placeholders swapped in and out around other rules
type CycleWarning struct {
	Path    []string `json:"path"`    // Segment path: ["a", "b", "a"]
	Rules   []int    `json:"rules"`   // Indices of the rules along the path
	Message string   `json:"message"` // Human-readable description
	Level   string   `json:"level"`   // "warning" or "info"
}

// AnalyzeCycles performs static cycle analysis on literal sound changes.
//
// The algorithm:
//  1. Build a segment graph with an edge From -> To for every rule whose
//     patterns are plain text (no classes, groups or placeholders)
//  2. Use Tarjan's algorithm to find strongly connected components
//  3. Report each SCC with size > 1 as a potential cycle warning
//
// Rules with regex syntax are skipped; their rewrites cannot be read
// statically. An acyclic rule list returns an empty warning list.
func AnalyzeCycles(changes []lang.Change) []CycleWarning {
	warnings := []CycleWarning{}
	if len(changes) == 0 {
		return warnings
	}

	graph := buildRewriteGraph(changes)
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 {
			warnings = append(warnings, cycleSCCToWarning(scc, graph))
		}
	}

	sort.Slice(warnings, func(i, j int) bool {
		return strings.Join(warnings[i].Path, "\x00") < strings.Join(warnings[j].Path, "\x00")
	})
	return warnings
}

type edge struct {
	to   string
	rule int
}

// rewriteGraph maps a segment to the segments rules rewrite it into.
type rewriteGraph map[string][]edge

func buildRewriteGraph(changes []lang.Change) rewriteGraph {
	graph := make(rewriteGraph)

	for i, c := range changes {
		if !isLiteral(c.From) || !isLiteral(c.To) || c.From == "" || c.To == "" || c.From == c.To {
			continue
		}
		graph[c.From] = append(graph[c.From], edge{to: c.To, rule: i})
		if graph[c.To] == nil {
			graph[c.To] = []edge{}
		}
	}

	return graph
}

// isLiteral reports whether s has no pattern syntax.
func isLiteral(s string) bool {
	return regexp2.Escape(s) == s && !strings.ContainsAny(s, "{}$")
}

// tarjanSCC finds strongly connected components using Tarjan's algorithm.
// Nodes are visited in sorted order so the output is deterministic.
func tarjanSCC(graph rewriteGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range graph[v] {
			w := e.to
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// If v is a root node, pop the stack and create an SCC
		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	nodes := make([]string, 0, len(graph))
	for node := range graph {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	for _, node := range nodes {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// cycleSCCToWarning converts an SCC to a CycleWarning, starting the path at
// the segment of the earliest rule in the component.
func cycleSCCToWarning(scc []string, graph rewriteGraph) CycleWarning {
	start := scc[0]
	first := -1
	for _, node := range scc {
		for _, e := range graph[node] {
			if first == -1 || e.rule < first {
				first = e.rule
				start = node
			}
		}
	}

	path, rules := reconstructCyclePath(start, scc, graph)
	return CycleWarning{
		Path:    path,
		Rules:   rules,
		Message: fmt.Sprintf("Rules rewrite a segment back into itself: %s", strings.Join(path, " → ")),
		Level:   "warning",
	}
}

// reconstructCyclePath follows edges within the SCC from start until it
// returns to start.
func reconstructCyclePath(start string, scc []string, graph rewriteGraph) ([]string, []int) {
	sccSet := make(map[string]bool)
	for _, node := range scc {
		sccSet[node] = true
	}

	current := start
	path := []string{current}
	rules := []int{}
	visited := make(map[string]bool)

	for {
		visited[current] = true

		var next *edge
		for i, e := range graph[current] {
			if sccSet[e.to] && (!visited[e.to] || e.to == start) {
				next = &graph[current][i]
				break
			}
		}
		if next == nil {
			break
		}

		path = append(path, next.to)
		rules = append(rules, next.rule)
		if next.to == start {
			break
		}
		current = next.to
	}

	return path, rules
}
