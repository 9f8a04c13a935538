/*
 * structure.go, part of gomlpot
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

package mlpot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rmera/gomlpot/vec"
)

// Structure is an atomic structure: element symbols, cartesian
// coordinates, and, for periodic systems, the lattice cell and the
// boundary conditions per axis. Structures are treated as immutable once
// created; their identifier is derived from the contents at construction
// time.
type Structure struct {
	symbols []string
	coords  *vec.Matrix
	cell    *vec.Cell
	pbc     [3]bool
	id      string
}

// NewStructure builds a Structure from symbols and coordinates. cell may
// be nil for non-periodic systems, but must be given if any element of
// pbc is true. The number of symbols must match the number of coordinate
// rows.
func NewStructure(symbols []string, coords *vec.Matrix, cell *vec.Cell, pbc [3]bool) (*Structure, error) {
	if coords == nil {
		return nil, CError{"nil coordinates given", []string{"NewStructure"}}
	}
	if len(symbols) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("got %d symbols for %d coordinates", len(symbols), coords.NVecs()), []string{"NewStructure"}}
	}
	if len(symbols) == 0 {
		return nil, CError{"a structure needs at least one atom", []string{"NewStructure"}}
	}
	if cell == nil && (pbc[0] || pbc[1] || pbc[2]) {
		return nil, CError{"periodic boundary conditions require a cell", []string{"NewStructure"}}
	}
	S := &Structure{symbols: symbols, coords: coords, cell: cell, pbc: pbc}
	S.id = S.contentID()
	return S, nil
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return len(S.symbols) }

// Symbol returns the element symbol of the ith atom. Panics if out of
// range.
func (S *Structure) Symbol(i int) string { return S.symbols[i] }

// Symbols returns the element symbols of all atoms. The returned slice
// is the internal one, do not modify it.
func (S *Structure) Symbols() []string { return S.symbols }

// Coords returns the coordinates of the structure. The returned matrix
// is the internal one, do not modify it.
func (S *Structure) Coords() *vec.Matrix { return S.coords }

// Cell returns the lattice cell, or nil for non-periodic structures.
func (S *Structure) Cell() *vec.Cell { return S.cell }

// PBC returns the boundary conditions, one flag per lattice vector.
func (S *Structure) PBC() [3]bool { return S.pbc }

// Periodic returns whether the structure is periodic along any axis.
func (S *Structure) Periodic() bool { return S.pbc[0] || S.pbc[1] || S.pbc[2] }

// ID returns the content-derived identifier of the structure. Two
// structures with the same symbols, coordinates, cell and boundary
// conditions get the same ID.
func (S *Structure) ID() string { return S.id }

func (S *Structure) contentID() string {
	h := sha256.New()
	for i, s := range S.symbols {
		v := S.coords.Vec(i)
		fmt.Fprintf(h, "%s %.10e %.10e %.10e\n", s, v[0], v[1], v[2])
	}
	if S.cell != nil {
		for i := 0; i < 3; i++ {
			v := S.cell.Vec(i)
			fmt.Fprintf(h, "cell %.10e %.10e %.10e\n", v[0], v[1], v[2])
		}
	}
	fmt.Fprintf(h, "pbc %t %t %t\n", S.pbc[0], S.pbc[1], S.pbc[2])
	return hex.EncodeToString(h.Sum(nil))
}

// StructureSet is an ordered collection of structures, indexed by their
// IDs. Iteration follows insertion order, so fingerprinting the same set
// twice visits structures, and hence atoms, in the same sequence.
type StructureSet struct {
	ids   []string
	items map[string]*Structure
}

// NewStructureSet returns an empty StructureSet.
func NewStructureSet() *StructureSet {
	return &StructureSet{ids: nil, items: make(map[string]*Structure)}
}

// Add appends a structure to the set. Adding a structure whose ID is
// already present is an error.
func (S *StructureSet) Add(structures ...*Structure) error {
	for _, st := range structures {
		if st == nil {
			return CError{"nil structure given", []string{"StructureSet.Add"}}
		}
		id := st.ID()
		if _, ok := S.items[id]; ok {
			return CError{fmt.Sprintf("duplicate structure %s", id), []string{"StructureSet.Add"}}
		}
		S.ids = append(S.ids, id)
		S.items[id] = st
	}
	return nil
}

// Len returns the number of structures in the set.
func (S *StructureSet) Len() int { return len(S.ids) }

// IDs returns the structure IDs in insertion order.
func (S *StructureSet) IDs() []string {
	r := make([]string, len(S.ids))
	copy(r, S.ids)
	return r
}

// Get returns the structure with the given ID, or nil if absent.
func (S *StructureSet) Get(id string) *Structure { return S.items[id] }

// TotalAtoms returns the summed atom count over all structures.
func (S *StructureSet) TotalAtoms() int {
	n := 0
	for _, id := range S.ids {
		n += S.items[id].Len()
	}
	return n
}
