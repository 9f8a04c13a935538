/*
 * data.go, part of gomlpot
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

import "fmt"

// Purpose tells the fingerprint machinery whether data is being prepared
// to train a model or to run one.
type Purpose string

const (
	Training  Purpose = "training"
	Inference Purpose = "inference"
)

// Valid returns whether P is one of the purposes known to the library.
func (P Purpose) Valid() bool {
	return P == Training || P == Inference
}

// DataHandler discovers and remembers per-purpose information about
// structure sets, for now the unique element symbols. It implements the
// Elementer interface.
type DataHandler struct {
	elements map[Purpose][]string
}

// NewDataHandler returns a ready-to-use DataHandler.
func NewDataHandler() *DataHandler {
	return &DataHandler{elements: make(map[Purpose][]string)}
}

// UniqueElements returns the unique element symbols present in the set,
// in canonical order (by atomic number, unknown symbols last). The
// result is computed once per purpose and cached, so repeated calls with
// the same purpose return the first answer even if given another set.
func (D *DataHandler) UniqueElements(set *StructureSet, purpose Purpose) ([]string, error) {
	if !purpose.Valid() {
		return nil, CError{fmt.Sprintf("unrecognized purpose %q", string(purpose)), []string{"UniqueElements"}}
	}
	if cached, ok := D.elements[purpose]; ok {
		r := make([]string, len(cached))
		copy(r, cached)
		return r, nil
	}
	if set == nil || set.Len() == 0 {
		return nil, CError{"empty structure set given", []string{"UniqueElements"}}
	}
	seen := make(map[string]bool)
	els := []string{}
	for _, id := range set.IDs() {
		for _, s := range set.Get(id).Symbols() {
			if !seen[s] {
				seen[s] = true
				els = append(els, s)
			}
		}
	}
	SortElements(els)
	D.elements[purpose] = els
	r := make([]string, len(els))
	copy(r, els)
	return r, nil
}
