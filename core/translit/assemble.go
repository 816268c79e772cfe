package translit

// assemble picks the best tiling of [0, n) from the lattice by dynamic
// programming over rune positions. With PreferLongest the path with the
// fewest edges wins and total priority breaks ties; otherwise total
// priority wins and fewer edges break ties. Remaining ties fall to the
// higher-priority, longer, lower-rule-ID final edge, which makes assembly
// deterministic for any candidate order.
func assemble(lattice [][]Edge, n int, cfg Config) []Edge {
	type state struct {
		reached bool
		count   int
		prio    int
		edge    Edge
	}
	dp := make([]state, n+1)
	dp[0].reached = true

	better := func(count, prio int, edge Edge, cur state) bool {
		if !cur.reached {
			return true
		}
		if cfg.PreferLongest {
			if count != cur.count {
				return count < cur.count
			}
			if prio != cur.prio {
				return prio > cur.prio
			}
		} else {
			if prio != cur.prio {
				return prio > cur.prio
			}
			if count != cur.count {
				return count < cur.count
			}
		}
		if edge.Priority != cur.edge.Priority {
			return edge.Priority > cur.edge.Priority
		}
		if edge.Span() != cur.edge.Span() {
			return edge.Span() > cur.edge.Span()
		}
		return edge.RuleID >= 0 && (cur.edge.RuleID < 0 || edge.RuleID < cur.edge.RuleID)
	}

	for i := 0; i < n; i++ {
		if !dp[i].reached {
			continue
		}
		for _, e := range lattice[i] {
			count := dp[i].count + 1
			prio := dp[i].prio + e.Priority
			if better(count, prio, e, dp[e.End]) {
				dp[e.End] = state{reached: true, count: count, prio: prio, edge: e}
			}
		}
	}

	// The identity fallback guarantees dp[n] is reachable.
	path := make([]Edge, 0, dp[n].count)
	for i := n; i > 0; i = dp[i].edge.Start {
		path = append(path, dp[i].edge)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
