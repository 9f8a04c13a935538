/*
 * vec.go, part of gomlpot
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

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space, the cartesian coordinates
//of a group of atoms. It embeds a gonum Dense matrix, so all gonum
//methods are available, on top of the few 3D-specific ones added here.
type Matrix struct {
	*mat.Dense
}

//New returns a Matrix with 3 columns built from data, which is read
//row-major. The length of data must be divisible by 3.
func New(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"New"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a vecs x 3 matrix filled with zeros.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of rows (i.e. 3D vectors) in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//Vec returns the ith row of the matrix as a slice backed by the
//matrix data, so changes to it are reflected in the matrix.
func (F *Matrix) Vec(i int) []float64 {
	return F.RawRowView(i)
}

//VecView returns a view, not a copy, of the ith row of the matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//String returns a formatted one-vector-per-line representation.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense))
}

//Errors

//Error is the error type for the package. It implements the
//Error interface of the parent package without importing it.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It does satisfy the error
//interface, but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("gomlpot/vec: A Matrix should have 3 columns")
	ErrNot3x3Cell   = PanicMsg("gomlpot/vec: A Cell must be a 3x3 matrix")
)
