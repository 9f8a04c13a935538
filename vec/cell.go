/*
 * cell.go, part of gomlpot
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

package vec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Cell is a 3x3 matrix whose rows are the lattice vectors of a periodic
//simulation cell. As with Matrix, the gonum methods are all available.
type Cell struct {
	*mat.Dense
}

//NewCell returns a Cell built from data, which must contain the 9
//components of the 3 lattice vectors, row-major.
func NewCell(data []float64) (*Cell, error) {
	if len(data) != 9 {
		return nil, Error{fmt.Sprintf("a cell takes 9 components, got %d", len(data)), []string{"NewCell"}, true}
	}
	return &Cell{mat.NewDense(3, 3, data)}, nil
}

//Vec returns the ith lattice vector as a slice backed by the cell data.
func (C *Cell) Vec(i int) []float64 {
	return C.RawRowView(i)
}

//Volume returns the volume of the cell, the absolute value of the
//determinant of the lattice-vector matrix. A zero volume means the
//lattice vectors are linearly dependent and the cell is degenerate.
func (C *Cell) Volume() float64 {
	return math.Abs(mat.Det(C.Dense))
}

//PlaneSpacings returns the distances between the lattice planes
//perpendicular to each of the 3 reciprocal directions. They bound how
//many periodic images must be scanned to find all neighbors within a
//given radius. It returns an error if the cell is degenerate.
func (C *Cell) PlaneSpacings() ([3]float64, error) {
	var sp [3]float64
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(C.Dense); err != nil {
		return sp, Error{fmt.Sprintf("ill-conditioned or singular cell: %s", err.Error()), []string{"PlaneSpacings"}, true}
	}
	for i := 0; i < 3; i++ {
		n := math.Sqrt(inv.At(0, i)*inv.At(0, i) + inv.At(1, i)*inv.At(1, i) + inv.At(2, i)*inv.At(2, i))
		sp[i] = 1 / n
	}
	return sp, nil
}

//String returns a formatted representation of the lattice vectors.
func (C *Cell) String() string {
	return fmt.Sprintf("%v", mat.Formatted(C.Dense))
}
