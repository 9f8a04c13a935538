/*
 * symfunc.go, part of gomlpot
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SFClass identifies a symmetry-function functional form. The set of
// forms is closed: radial G2 and angular G3 and G4.
type SFClass int

const (
	G2 SFClass = iota + 2 //radial
	G3                    //angular, with the j-k leg
	G4                    //angular, without the j-k leg
)

func (C SFClass) String() string {
	switch C {
	case G2:
		return "G2"
	case G3:
		return "G3"
	case G4:
		return "G4"
	}
	return fmt.Sprintf("G?(%d)", int(C))
}

// SymFunc is one symmetry function: a functional form plus its
// parameters. Radial (G2) functions target a single element; angular
// ones (G3, G4) target an unordered element pair, stored sorted.
type SymFunc struct {
	Class  SFClass
	Symbol string    //G2 target element
	Pair   [2]string //G3/G4 element pair, sorted
	Eta    float64
	Zeta   float64 //angular only
	Gamma  float64 //angular only, +1 or -1
}

func (S *SymFunc) String() string {
	switch S.Class {
	case G2:
		return fmt.Sprintf("%v target %-2s eta %8.4f", S.Class, S.Symbol, S.Eta)
	case G3, G4:
		return fmt.Sprintf("%v pair %-2s %-2s eta %8.4f zeta %4.1f gamma %4.1f", S.Class, S.Pair[0], S.Pair[1], S.Eta, S.Zeta, S.Gamma)
	}
	return fmt.Sprintf("%v", S.Class)
}

// SymFuncSet holds, for each central-atom element, the ordered list of
// symmetry functions that make up its fingerprint vector. The order of
// the list is the order of the features.
type SymFuncSet struct {
	elements []string
	funcs    map[string][]*SymFunc
}

// NewSymFuncSet returns an empty set. Use Add to fill it, or
// MakeSymFuncs to build a default one.
func NewSymFuncSet() *SymFuncSet {
	return &SymFuncSet{funcs: make(map[string][]*SymFunc)}
}

// Add appends symmetry functions to the list for the given central-atom
// element. Elements keep the order of their first Add call.
func (S *SymFuncSet) Add(element string, funcs ...*SymFunc) {
	if _, ok := S.funcs[element]; !ok {
		S.elements = append(S.elements, element)
		S.funcs[element] = nil
	}
	S.funcs[element] = append(S.funcs[element], funcs...)
}

// Elements returns the central-atom elements of the set, in order.
func (S *SymFuncSet) Elements() []string {
	r := make([]string, len(S.elements))
	copy(r, S.elements)
	return r
}

// ForElement returns the symmetry functions for atoms of the given
// element, or nil if the element is not in the set. The returned slice
// is the internal one, do not modify it.
func (S *SymFuncSet) ForElement(element string) []*SymFunc {
	return S.funcs[element]
}

// Dim returns the fingerprint length for atoms of the given element.
func (S *SymFuncSet) Dim(element string) int {
	return len(S.funcs[element])
}

// UniformDim returns the common fingerprint length of all elements in
// the set, and whether such a common length exists.
func (S *SymFuncSet) UniformDim() (int, bool) {
	if len(S.elements) == 0 {
		return 0, false
	}
	d := len(S.funcs[S.elements[0]])
	for _, el := range S.elements[1:] {
		if len(S.funcs[el]) != d {
			return 0, false
		}
	}
	return d, true
}

// String renders the whole table, one line per symmetry function, per
// element.
func (S *SymFuncSet) String() string {
	var b strings.Builder
	for _, el := range S.elements {
		fmt.Fprintf(&b, "element %s, %d features:\n", el, len(S.funcs[el]))
		for i, f := range S.funcs[el] {
			fmt.Fprintf(&b, " %3d %v\n", i+1, f)
		}
	}
	return b.String()
}

// SFParams are the knobs for the default symmetry-function builder. Any
// field left at its zero value is filled with the default.
type SFParams struct {
	REtas   []float64 //radial (G2) eta ladder
	AEtas   []float64 //angular etas
	Zetas   []float64
	Gammas  []float64
	Angular SFClass //G3 or G4
}

// DefaultSFParams returns the standard parameter grid: 4 radial etas
// log-spaced in [0.05, 5.0], one angular eta of 0.005, zetas 1 and 4,
// gammas +1 and -1, and G3 as the angular form.
func DefaultSFParams() *SFParams {
	p := new(SFParams)
	p.REtas = floats.LogSpan(make([]float64, 4), 0.05, 5.0)
	p.AEtas = []float64{0.005}
	p.Zetas = []float64{1.0, 4.0}
	p.Gammas = []float64{1.0, -1.0}
	p.Angular = G3
	return p
}

// MakeSymFuncs builds a symmetry-function table for the given elements:
// one G2 per (eta, element) pair and one angular function per (eta,
// zeta, gamma, unordered element pair) combination, every element
// getting the same list. The element order given is preserved in the
// feature layout, so pass a canonically sorted slice (see SortElements)
// when determinism across runs matters. Parameters not supplied are
// taken from DefaultSFParams.
func MakeSymFuncs(elements []string, params ...*SFParams) (*SymFuncSet, error) {
	p := DefaultSFParams()
	if len(params) > 0 && params[0] != nil {
		given := params[0]
		if len(given.REtas) > 0 {
			p.REtas = given.REtas
		}
		if len(given.AEtas) > 0 {
			p.AEtas = given.AEtas
		}
		if len(given.Zetas) > 0 {
			p.Zetas = given.Zetas
		}
		if len(given.Gammas) > 0 {
			p.Gammas = given.Gammas
		}
		if given.Angular != 0 {
			p.Angular = given.Angular
		}
	}
	if len(elements) == 0 {
		return nil, CError{"empty element set given", []string{"MakeSymFuncs"}}
	}
	if p.Angular != G3 && p.Angular != G4 {
		return nil, CError{fmt.Sprintf("unsupported angular symmetry function %v", p.Angular), []string{"MakeSymFuncs"}}
	}
	funcs := make([]*SymFunc, 0, len(p.REtas)*len(elements))
	for _, eta := range p.REtas {
		for _, el := range elements {
			funcs = append(funcs, &SymFunc{Class: G2, Symbol: el, Eta: eta})
		}
	}
	for _, eta := range p.AEtas {
		for _, zeta := range p.Zetas {
			for _, gamma := range p.Gammas {
				for i, s1 := range elements {
					for _, s2 := range elements[i:] {
						funcs = append(funcs, &SymFunc{Class: p.Angular, Pair: sortPair(s1, s2), Eta: eta, Zeta: zeta, Gamma: gamma})
					}
				}
			}
		}
	}
	ret := NewSymFuncSet()
	for _, el := range elements {
		//all elements share the same list, which is never modified after this
		ret.Add(el, funcs...)
	}
	return ret, nil
}

func sortPair(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
