package coxeter

// Coset enumeration for finitely presented groups with self-inverse
// generators. The tables fill in one unknown product at a time, scanning the
// relation tables from both ends to deduce forced products and merging cosets
// when a deduction collides with an existing entry.

// Tables holds the in-progress state of one enumeration.
type Tables struct {
	cosets *cosetTable
	rels   []*relationTable
	words  []Word
}

// NewTables initialises an enumeration over gens generators with the given
// relations, relative to the subgroup generated by the listed generators.
// Subgroup generators must be group generators.
func NewTables(gens int, rels [][]uint8, subgroup []uint8) *Tables {
	t := &Tables{
		cosets: newCosetTable(gens),
		words:  []Word{{}},
	}
	t.rels = make([]*relationTable, len(rels))
	for i, rel := range rels {
		t.rels[i] = newRelationTable(rel)
	}
	for _, g := range subgroup {
		t.deduce(0, g, 0)
	}
	return t
}

type fact struct {
	coset  int32
	gen    uint8
	result int32
}

// deduce records coset*gen = result and cascades everything that follows
// from it, resolving coincidences along the way.
func (t *Tables) deduce(coset int32, gen uint8, result int32) {
	queue := []fact{{coset, gen, result}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		c := t.cosets.redirect(f.coset)
		r := t.cosets.redirect(f.result)
		if prev := t.cosets.get(c, int(f.gen)); prev != Unknown && prev != r {
			// Coincidence: the smaller index survives.
			keep, replace := prev, r
			if keep > replace {
				keep, replace = replace, keep
			}
			r = keep
			t.resolveCoincidence(keep, replace)
		}

		t.cosets.set(c, int(f.gen), t.cosets.redirect(r))
		t.cosets.set(r, int(f.gen), t.cosets.redirect(c)) // generators are involutions

		for _, rel := range t.rels {
			rel.update(t.cosets, &queue)
		}
	}
}

// resolveCoincidence merges the coset replace into keep.
func (t *Tables) resolveCoincidence(keep, replace int32) {
	t.cosets.tombstones[replace] = keep

	remap := func(c int32) int32 {
		if c == replace {
			return keep
		}
		return c
	}
	for i, v := range t.cosets.tombstones {
		if v != noTombstone {
			t.cosets.tombstones[i] = remap(v)
		}
	}
	for i, v := range t.cosets.entries {
		if v != Unknown {
			t.cosets.entries[i] = remap(v)
		}
	}
	for _, rel := range t.rels {
		for i := range rel.rows {
			rel.rows[i].left = remap(rel.rows[i].left)
			rel.rows[i].right = remap(rel.rows[i].right)
		}
	}

	for g := 0; g < t.cosets.gens; g++ {
		if res := t.cosets.get(replace, g); res != Unknown {
			t.deduce(keep, uint8(g), res)
		}
	}
}

// DiscoverNextUnknown fills the first empty coset-table slot with a fresh
// coset, cascades the consequences and compacts merged rows. It reports
// false once the table is complete.
func (t *Tables) DiscoverNextUnknown() bool {
	idx := -1
	for i, v := range t.cosets.entries {
		if v == Unknown {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	coset := int32(idx / t.cosets.gens)
	gen := uint8(idx % t.cosets.gens)

	result := t.addRow()
	t.words = append(t.words, t.words[coset].Append(gen))
	t.deduce(coset, gen, result)

	// Reindex live rows down over the merged ones.
	rows := t.cosets.rowCount()
	replacements := make([]int32, rows)
	next := int32(0)
	for i := 0; i < rows; i++ {
		if t.cosets.tombstones[i] == noTombstone {
			replacements[i] = next
			next++
		}
	}
	for i := 0; i < rows; i++ {
		if t.cosets.tombstones[i] != noTombstone {
			replacements[i] = replacements[t.cosets.redirect(int32(i))]
		}
	}
	replace := func(c int32) int32 { return replacements[c] }

	for i, v := range t.cosets.entries {
		if v != Unknown {
			t.cosets.entries[i] = replace(v)
		}
	}
	for _, rel := range t.rels {
		for i := range rel.rows {
			rel.rows[i].left = replace(rel.rows[i].left)
			rel.rows[i].right = replace(rel.rows[i].right)
		}
		rel.removeRedirected(t.cosets.tombstones)
	}
	t.words = removeRedirectedWords(t.words, t.cosets.tombstones)
	t.cosets.removeRedirected()
	return true
}

// addRow creates a fresh coset row in the coset table and every relation
// table, returning the new coset's index.
func (t *Tables) addRow() int32 {
	index := t.cosets.addRow()
	for _, rel := range t.rels {
		rel.addRow(index)
	}
	return index
}

// Group freezes the current tables into a flat multiplication table.
func (t *Tables) Group() *Group {
	rows := t.cosets.rowCount()
	table := make([]int32, len(t.cosets.entries))
	copy(table, t.cosets.entries)
	words := make([]Word, len(t.words))
	for i, w := range t.words {
		words[i] = w.Clone()
	}
	return &Group{
		points:     rows,
		generators: t.cosets.gens,
		table:      table,
		words:      words,
	}
}

// ElementTable enumerates the group itself, up to limit discovery steps.
func ElementTable(gens int, rels [][]uint8, limit int) *Group {
	return EnumerateCosets(gens, rels, nil, limit)
}

// EnumerateCosets enumerates cosets of the subgroup generated by the listed
// generators, up to limit discovery steps. A limit that cuts the enumeration
// short leaves Unknown holes in the resulting table.
func EnumerateCosets(gens int, rels [][]uint8, subgroup []uint8, limit int) *Group {
	t := NewTables(gens, rels, subgroup)
	for i := 0; i < limit && t.DiscoverNextUnknown(); i++ {
	}
	return t.Group()
}

const noTombstone int32 = -1

// cosetTable stores one row per coset with one column per generator.
// Unknown marks unresolved products; tombstones redirect merged rows until
// the next compaction.
type cosetTable struct {
	entries    []int32
	tombstones []int32
	gens       int
}

func newCosetTable(gens int) *cosetTable {
	entries := make([]int32, gens)
	for i := range entries {
		entries[i] = Unknown
	}
	return &cosetTable{entries: entries, tombstones: []int32{noTombstone}, gens: gens}
}

func (ct *cosetTable) rowCount() int { return len(ct.entries) / ct.gens }

func (ct *cosetTable) addRow() int32 {
	for i := 0; i < ct.gens; i++ {
		ct.entries = append(ct.entries, Unknown)
	}
	ct.tombstones = append(ct.tombstones, noTombstone)
	return int32(ct.rowCount() - 1)
}

// redirect cascades a coset index through any pending merges.
func (ct *cosetTable) redirect(index int32) int32 {
	for ct.tombstones[index] != noTombstone {
		index = ct.tombstones[index]
	}
	return index
}

func (ct *cosetTable) get(coset int32, gen int) int32 {
	return ct.entries[int(ct.redirect(coset))*ct.gens+gen]
}

func (ct *cosetTable) set(coset int32, gen int, v int32) {
	ct.entries[int(ct.redirect(coset))*ct.gens+gen] = v
}

// removeRedirected drops the rows of merged cosets and clears tombstones.
func (ct *cosetTable) removeRedirected() {
	rows := ct.rowCount()
	for r := rows - 1; r >= 0; r-- {
		if ct.tombstones[r] != noTombstone {
			i := r * ct.gens
			ct.entries = append(ct.entries[:i], ct.entries[i+ct.gens:]...)
		}
	}
	live := ct.tombstones[:0]
	for _, v := range ct.tombstones {
		if v == noTombstone {
			live = append(live, v)
		}
	}
	ct.tombstones = live
}

// relationTable tracks, per coset, how far a relation has been traced from
// each end. When the two scans meet, the middle product is forced.
type relationTable struct {
	relation []uint8
	rows     []relationRow
}

type relationRow struct {
	left     int32
	right    int32
	leftIdx  int
	rightIdx int
}

func (r *relationRow) full() bool { return r.leftIdx >= r.rightIdx }

func newRelationTable(relation []uint8) *relationTable {
	rel := &relationTable{relation: relation}
	rel.addRow(0)
	return rel
}

func (rt *relationTable) addRow(coset int32) {
	rt.rows = append(rt.rows, relationRow{
		left:     coset,
		right:    coset,
		leftIdx:  0,
		rightIdx: len(rt.relation) - 1,
	})
}

// update advances every open row as far as the coset table allows, queueing
// the forced product whenever a row closes.
func (rt *relationTable) update(ct *cosetTable, queue *[]fact) {
	for i := range rt.rows {
		row := &rt.rows[i]
		if row.full() {
			continue
		}
		for !row.full() {
			res := ct.get(row.left, int(rt.relation[row.leftIdx]))
			if res == Unknown {
				break
			}
			row.left = ct.redirect(res)
			row.leftIdx++
		}
		for !row.full() {
			res := ct.get(row.right, int(rt.relation[row.rightIdx]))
			if res == Unknown {
				break
			}
			row.right = ct.redirect(res)
			row.rightIdx--
		}
		if row.full() {
			*queue = append(*queue, fact{row.left, rt.relation[row.leftIdx], row.right})
		}
	}
}

func (rt *relationTable) removeRedirected(tombstones []int32) {
	for t := len(tombstones) - 1; t >= 0; t-- {
		if tombstones[t] != noTombstone {
			rt.rows = append(rt.rows[:t], rt.rows[t+1:]...)
		}
	}
}

func removeRedirectedWords(words []Word, tombstones []int32) []Word {
	for t := len(tombstones) - 1; t >= 0; t-- {
		if tombstones[t] != noTombstone {
			words = append(words[:t], words[t+1:]...)
		}
	}
	return words
}
