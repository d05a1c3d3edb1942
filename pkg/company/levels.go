package company

// AssignLevels returns a copy of records with Level set to the number of
// parent hops from each record to the first ancestor whose parent is empty
// or unknown. A record caught in a parent cycle gets the number of hops
// taken before the cycle closes.
//
// When names are duplicated the last record with a name wins the lookup,
// matching the behaviour of a name-keyed map.
func AssignLevels(records []Record) []Record {
	byName := make(map[string]Record, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	out := Clone(records)
	for i := range out {
		out[i].Level = depthOf(out[i], byName)
	}
	return out
}

// LevelUnder returns the level of a record placed under parent: one more
// than the parent's stored Level, or 0 when parent is empty or unknown.
// Other records are not consulted or changed.
func LevelUnder(records []Record, parent string) int {
	if parent == "" {
		return 0
	}
	for _, r := range records {
		if r.Name == parent {
			return r.Level + 1
		}
	}
	return 0
}

// MaxLevel returns the highest Level in records, or 0 for an empty set.
func MaxLevel(records []Record) int {
	m := 0
	for _, r := range records {
		m = max(m, r.Level)
	}
	return m
}

func depthOf(r Record, byName map[string]Record) int {
	level := 0
	visited := map[string]bool{}
	cur := r
	for cur.Parent != "" {
		parent, ok := byName[cur.Parent]
		if !ok || visited[cur.Name] {
			break
		}
		visited[cur.Name] = true
		cur = parent
		level++
	}
	return level
}
