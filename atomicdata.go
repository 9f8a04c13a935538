/*
 * atomicdata.go, part of gomlpot
 *
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
 *
 * gomlpot is developed at the Universidad de Santiago de Chile (USACH)
 *
 */

package mlpot

import (
	"fmt"
	"sort"
)

//A map for assigning atomic numbers to element symbols.
//Not the whole periodic table, but it should cover the elements
//appearing in interatomic-potential work. Symbols missing here still
//work everywhere, they just get ordered after the known ones.
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ga": 31,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
	"Rb": 37,
	"Sr": 38,
	"Y":  39,
	"Zr": 40,
	"Nb": 41,
	"Mo": 42,
	"Ru": 44,
	"Rh": 45,
	"Pd": 46,
	"Ag": 47,
	"Cd": 48,
	"In": 49,
	"Sn": 50,
	"Sb": 51,
	"Te": 52,
	"I":  53,
	"Xe": 54,
	"Cs": 55,
	"Ba": 56,
	"W":  74,
	"Re": 75,
	"Os": 76,
	"Ir": 77,
	"Pt": 78,
	"Au": 79,
	"Hg": 80,
	"Tl": 81,
	"Pb": 82,
	"Bi": 83,
}

//AtomicNumber returns the atomic number for the given element symbol,
//or an error if the symbol is not in the internal table.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, CError{fmt.Sprintf("unknown element symbol %q", symbol), []string{"AtomicNumber"}}
	}
	return z, nil
}

//KnownElement returns whether the given symbol is in the internal
//periodic-table data.
func KnownElement(symbol string) bool {
	_, ok := symbolZ[symbol]
	return ok
}

//SortElements sorts a slice of element symbols in place, by atomic
//number. Symbols not present in the internal table go after the known
//ones, in alphabetical order. The resulting order is the canonical one
//for symmetry-function tables, so fingerprints keep the same feature
//layout across runs no matter how the elements were discovered.
func SortElements(elements []string) {
	sort.SliceStable(elements, func(i, j int) bool {
		zi, oki := symbolZ[elements[i]]
		zj, okj := symbolZ[elements[j]]
		if oki && okj {
			return zi < zj
		}
		if oki != okj {
			return oki //known elements first
		}
		return elements[i] < elements[j]
	})
}
