/*
 * neighbors.go, part of gomlpot
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
	"math"

	"github.com/rmera/gomlpot/vec"
)

// Environment is the neighborhood of one atom: every atom, or periodic
// image of an atom, within the cutoff radius of the central one. The
// positions in Coords are cartesian, with image offsets already applied.
// Coords is nil when the atom has no neighbors.
type Environment struct {
	Index   int       //index of the central atom in its structure
	Symbol  string    //element of the central atom
	Center  []float64 //cartesian position of the central atom
	Indexes []int     //per neighbor, the index of the source atom
	Symbols []string  //per neighbor, the element
	Offsets [][3]int  //per neighbor, the periodic image offset
	Coords  *vec.Matrix
}

// Environments returns the neighbor environment of every atom in the
// structure, ordered by atom index, using the given cutoff radius. For
// periodic structures the scan covers as many lattice images as the
// cutoff requires, so an atom can neighbor its own images. A degenerate
// cell (linearly dependent lattice vectors) is a GeomError.
func Environments(S *Structure, rc float64) ([]*Environment, error) {
	if S == nil || S.Coords() == nil {
		panic(ErrNilStructure)
	}
	if rc <= 0 {
		return nil, CError{fmt.Sprintf("cutoff radius must be positive, got %4.2f", rc), []string{"Environments"}}
	}
	n := S.Len()
	envs := make([]*Environment, n)
	buffers := make([][]float64, n)
	for i := 0; i < n; i++ {
		envs[i] = &Environment{Index: i, Symbol: S.Symbol(i), Center: S.Coords().Vec(i)}
	}
	if !S.Periodic() {
		directNeighbors(S, rc, envs, buffers)
	} else {
		if err := imageNeighbors(S, rc, envs, buffers); err != nil {
			return nil, errDecorate(err, "Environments")
		}
	}
	for i, env := range envs {
		if len(buffers[i]) == 0 {
			continue //isolated atom, Coords stays nil
		}
		env.Coords, _ = vec.New(buffers[i]) //length is a multiple of 3 by construction
	}
	return envs, nil
}

// directNeighbors fills the environments of a non-periodic structure by
// scanning all pairs.
func directNeighbors(S *Structure, rc float64, envs []*Environment, buffers [][]float64) {
	n := S.Len()
	rc2 := rc * rc
	var zero [3]int
	for i := 0; i < n; i++ {
		ci := S.Coords().Vec(i)
		for j := i + 1; j < n; j++ {
			cj := S.Coords().Vec(j)
			if dist2(ci, cj) > rc2 {
				continue
			}
			envs[i].Indexes = append(envs[i].Indexes, j)
			envs[i].Symbols = append(envs[i].Symbols, S.Symbol(j))
			envs[i].Offsets = append(envs[i].Offsets, zero)
			buffers[i] = append(buffers[i], cj[0], cj[1], cj[2])
			envs[j].Indexes = append(envs[j].Indexes, i)
			envs[j].Symbols = append(envs[j].Symbols, S.Symbol(i))
			envs[j].Offsets = append(envs[j].Offsets, zero)
			buffers[j] = append(buffers[j], ci[0], ci[1], ci[2])
		}
	}
}

// imageNeighbors fills the environments of a periodic structure,
// scanning the lattice images reachable within the cutoff along each
// periodic axis. Positions are assumed to lie within the cell.
func imageNeighbors(S *Structure, rc float64, envs []*Environment, buffers [][]float64) error {
	cell := S.Cell()
	if cell.Volume() == 0 {
		return GeomError{"degenerate cell: lattice vectors are linearly dependent", []string{"imageNeighbors"}}
	}
	sp, err := cell.PlaneSpacings()
	if err != nil {
		return GeomError{fmt.Sprintf("degenerate cell: %s", err.Error()), []string{"imageNeighbors"}}
	}
	pbc := S.PBC()
	var rang [3]int
	for k := 0; k < 3; k++ {
		if pbc[k] {
			//the +1 covers pairs sitting at opposite faces of the cell
			rang[k] = int(math.Ceil(rc/sp[k])) + 1
		}
	}
	a, b, c := cell.Vec(0), cell.Vec(1), cell.Vec(2)
	n := S.Len()
	rc2 := rc * rc
	for i := 0; i < n; i++ {
		ci := S.Coords().Vec(i)
		for j := 0; j < n; j++ {
			cj := S.Coords().Vec(j)
			for o0 := -rang[0]; o0 <= rang[0]; o0++ {
				for o1 := -rang[1]; o1 <= rang[1]; o1++ {
					for o2 := -rang[2]; o2 <= rang[2]; o2++ {
						if i == j && o0 == 0 && o1 == 0 && o2 == 0 {
							continue //an atom is not its own neighbor
						}
						f0, f1, f2 := float64(o0), float64(o1), float64(o2)
						px := cj[0] + f0*a[0] + f1*b[0] + f2*c[0]
						py := cj[1] + f0*a[1] + f1*b[1] + f2*c[1]
						pz := cj[2] + f0*a[2] + f1*b[2] + f2*c[2]
						dx, dy, dz := px-ci[0], py-ci[1], pz-ci[2]
						if dx*dx+dy*dy+dz*dz > rc2 {
							continue
						}
						envs[i].Indexes = append(envs[i].Indexes, j)
						envs[i].Symbols = append(envs[i].Symbols, S.Symbol(j))
						envs[i].Offsets = append(envs[i].Offsets, [3]int{o0, o1, o2})
						buffers[i] = append(buffers[i], px, py, pz)
					}
				}
			}
		}
	}
	return nil
}

func dist2(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}
