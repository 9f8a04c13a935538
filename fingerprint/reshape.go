/*
 * reshape.go, part of gomlpot
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * gomlpot is developed at the Universidad de Santiago de Chile (USACH)
 *
*/

package fingerprint

import (
	"fmt"

	mlpot "github.com/rmera/gomlpot"
)

// AtomVec is the fingerprint of one atom, tagged with its element
// symbol.
type AtomVec struct {
	Symbol string
	Vec    []float64
}

// FeatureSpace holds the fingerprints of a set of structures, grouped
// per structure, each group in the structure's own atom order.
type FeatureSpace struct {
	ids  []string
	data map[string][]AtomVec
}

// IDs returns the structure identifiers, in the order of the set the
// space was computed from.
func (F *FeatureSpace) IDs() []string {
	ids := make([]string, len(F.ids))
	copy(ids, F.ids)
	return ids
}

// Len returns the number of structures in the space.
func (F *FeatureSpace) Len() int { return len(F.ids) }

// Atoms returns the fingerprints of the structure with the given
// identifier, nil if the space doesn't contain it.
func (F *FeatureSpace) Atoms(id string) []AtomVec { return F.data[id] }

// TotalAtoms returns the number of fingerprints over all structures.
func (F *FeatureSpace) TotalAtoms() int {
	n := 0
	for _, id := range F.ids {
		n += len(F.data[id])
	}
	return n
}

// Select returns a new space holding only the given structures, in the
// given order. Asking for a structure the space doesn't hold is an
// error. The fingerprints themselves are shared, not copied.
func (F *FeatureSpace) Select(ids []string) (*FeatureSpace, error) {
	sel := &FeatureSpace{ids: make([]string, 0, len(ids)), data: make(map[string][]AtomVec, len(ids))}
	for _, id := range ids {
		atoms, ok := F.data[id]
		if !ok {
			return nil, Error{fmt.Sprintf("structure %s is not in the feature space", id), []string{"Select"}}
		}
		sel.ids = append(sel.ids, id)
		sel.data[id] = atoms
	}
	return sel, nil
}

// Flatten returns the reference space of the feature space: every
// fingerprint of every structure in one flat list, structures in the
// space's order and atoms in their structure's order.
func (F *FeatureSpace) Flatten() *ReferenceSpace {
	return F.flatten(Computed)
}

func (F *FeatureSpace) flatten(origin Origin) *ReferenceSpace {
	rs := &ReferenceSpace{origin: origin}
	for _, id := range F.ids {
		rs.atoms = append(rs.atoms, F.data[id]...)
	}
	return rs
}

// Origin tells how a ReferenceSpace was obtained.
type Origin int

const (
	Computed Origin = iota
	FromCache
)

func (o Origin) String() string {
	switch o {
	case Computed:
		return "computed"
	case FromCache:
		return "from cache"
	}
	return fmt.Sprintf("origin(%d)", int(o))
}

// ReferenceSpace is the flat view of a feature space, used to build the
// support set of kernel models.
type ReferenceSpace struct {
	origin Origin
	atoms  []AtomVec
}

// Origin tells whether the space was computed in this run or served
// from a cache file.
func (R *ReferenceSpace) Origin() Origin { return R.origin }

// Len returns the number of fingerprints in the space.
func (R *ReferenceSpace) Len() int { return len(R.atoms) }

// Atoms returns the fingerprints, in order. The slice is the space's
// own, not a copy.
func (R *ReferenceSpace) Atoms() []AtomVec { return R.atoms }

// Restack groups a flat list of fingerprint rows, one per atom in the
// global order of the set (structures in set order, atoms in structure
// order), back into a per-structure FeatureSpace. A row count that
// disagrees with the set's atom count, or a missing row, is an error.
func Restack(rows [][]float64, set *mlpot.StructureSet) (*FeatureSpace, error) {
	if set == nil {
		return nil, Error{"nil structure set given", []string{"Restack"}}
	}
	if len(rows) != set.TotalAtoms() {
		return nil, Error{fmt.Sprintf("got %d fingerprint rows for %d atoms", len(rows), set.TotalAtoms()), []string{"Restack"}}
	}
	fs := &FeatureSpace{ids: set.IDs(), data: make(map[string][]AtomVec, set.Len())}
	n := 0
	for _, id := range fs.ids {
		st := set.Get(id)
		atoms := make([]AtomVec, st.Len())
		for k := 0; k < st.Len(); k++ {
			if rows[n] == nil {
				return nil, Error{fmt.Sprintf("no fingerprint for atom %d of structure %s", k, id), []string{"Restack"}}
			}
			atoms[k] = AtomVec{Symbol: st.Symbol(k), Vec: rows[n]}
			n++
		}
		fs.data[id] = atoms
	}
	return fs, nil
}
