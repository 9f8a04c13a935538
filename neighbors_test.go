/*
 * neighbors_test.go, part of gomlpot
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
	"testing"

	"github.com/rmera/gomlpot/vec"
)

// Three atoms on a line, 1 A apart, with a cutoff that only reaches the
// nearest one.
func TestChainNeighbors(Te *testing.T) {
	coords, err := vec.New([]float64{0, 0, 0, 0, 0, 1, 0, 0, 2})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure([]string{"H", "O", "H"}, coords, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	envs, err := Environments(S, 1.5)
	if err != nil {
		Te.Error(err)
	}
	counts := []int{1, 2, 1}
	for i, env := range envs {
		if len(env.Indexes) != counts[i] {
			Te.Errorf("atom %d: expected %d neighbors, got %d", i, counts[i], len(env.Indexes))
		}
	}
	//the middle atom sees both ends, in index order
	if envs[1].Indexes[0] != 0 || envs[1].Indexes[1] != 2 {
		Te.Errorf("wrong neighbor indexes for the middle atom: %v", envs[1].Indexes)
	}
	if envs[1].Symbols[0] != "H" || envs[1].Symbols[1] != "H" {
		Te.Errorf("wrong neighbor symbols for the middle atom: %v", envs[1].Symbols)
	}
	d := math.Sqrt(dist2(envs[0].Center, envs[0].Coords.Vec(0)))
	if math.Abs(d-1) > 1e-12 {
		Te.Errorf("expected a neighbor at 1 A, got %f", d)
	}
	fmt.Println("chain environments done!")
}

func TestIsolatedAtom(Te *testing.T) {
	coords, err := vec.New([]float64{0, 0, 0, 0, 0, 9})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure([]string{"Ar", "Ar"}, coords, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	envs, err := Environments(S, 3.0)
	if err != nil {
		Te.Error(err)
	}
	for _, env := range envs {
		if env.Coords != nil || len(env.Indexes) != 0 {
			Te.Error("expected empty environments for atoms out of range")
		}
	}
}

// One atom in a cubic box neighbors its own images: 6 of them at the
// lattice parameter, with a cutoff below the face diagonal.
func TestPeriodicImages(Te *testing.T) {
	coords, err := vec.New([]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	cell, err := vec.NewCell([]float64{3, 0, 0, 0, 3, 0, 0, 0, 3})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure([]string{"Cu"}, coords, cell, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	envs, err := Environments(S, 3.2)
	if err != nil {
		Te.Error(err)
	}
	env := envs[0]
	if len(env.Indexes) != 6 {
		Te.Fatalf("expected 6 periodic neighbors, got %d", len(env.Indexes))
	}
	for k := range env.Indexes {
		if env.Indexes[k] != 0 {
			Te.Error("every neighbor of a single-atom cell is an image of atom 0")
		}
		d := math.Sqrt(dist2(env.Center, env.Coords.Vec(k)))
		if math.Abs(d-3) > 1e-12 {
			Te.Errorf("expected every image at 3 A, got %f", d)
		}
		o := env.Offsets[k]
		if o[0]*o[0]+o[1]*o[1]+o[2]*o[2] != 1 {
			Te.Errorf("expected a face offset, got %v", o)
		}
	}
	fmt.Println("periodic environments done!")
}

// Periodicity along a single axis gives only the 2 images on that axis.
func TestPartialPBC(Te *testing.T) {
	coords, err := vec.New([]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	cell, err := vec.NewCell([]float64{3, 0, 0, 0, 3, 0, 0, 0, 3})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure([]string{"Cu"}, coords, cell, [3]bool{true, false, false})
	if err != nil {
		Te.Fatal(err)
	}
	envs, err := Environments(S, 3.2)
	if err != nil {
		Te.Error(err)
	}
	if len(envs[0].Indexes) != 2 {
		Te.Errorf("expected 2 neighbors along the periodic axis, got %d", len(envs[0].Indexes))
	}
}

func TestBadGeometry(Te *testing.T) {
	coords, err := vec.New([]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	//the second lattice vector is twice the first
	cell, err := vec.NewCell([]float64{1, 0, 0, 2, 0, 0, 0, 0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure([]string{"Cu"}, coords, cell, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Environments(S, 3.0)
	if err == nil {
		Te.Fatal("expected an error for a degenerate cell")
	}
	if _, ok := err.(GeomError); !ok {
		Te.Errorf("expected a GeomError, got %T", err)
	}
	fmt.Println("expected error:", err)
	_, err = Environments(S, -1)
	if err == nil {
		Te.Error("expected an error for a negative cutoff")
	}
}
