/*
 * scale.go, part of gomlpot
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

//Package scale implements feature scaling for fingerprint matrices. A
//scaler is fitted once, on the full stacked matrix of a training set,
//and its fitted state can be saved and loaded so inference reproduces
//the training-time transformation exactly.
package scale

import (
	"encoding/gob"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scaler is a feature-matrix transformation that may learn its
// parameters from data. Transform never modifies its input.
type Scaler interface {

	//Fit learns the scaling parameters from the matrix.
	Fit(X *mat.Dense) error

	//Transform returns a scaled copy of the matrix.
	Transform(X *mat.Dense) (*mat.Dense, error)

	//Kind returns the canonical name of the scaler.
	Kind() string
}

// New returns a scaler by name. Supported names (case-insensitive):
// "MinMaxScaler" and "Normalizer". featrange only applies to
// MinMaxScaler.
func New(kind string, featrange ...float64) (Scaler, error) {
	switch strings.ToLower(kind) {
	case "minmaxscaler":
		return NewMinMax(featrange...), nil
	case "normalizer":
		return NewNormalizer(), nil
	}
	return nil, Error{fmt.Sprintf("preprocessor %q is not supported", kind), []string{"New"}}
}

// MinMax scales each feature column linearly so the fitted data spans
// [lo, hi] per column.
type MinMax struct {
	lo, hi     float64
	dmin, dmax []float64
}

// NewMinMax returns a MinMax scaler. featrange, if given, must be the
// target low and high values, in that order; the default is (-1, 1).
func NewMinMax(featrange ...float64) *MinMax {
	lo, hi := -1.0, 1.0
	if len(featrange) >= 2 && featrange[1] > featrange[0] {
		lo, hi = featrange[0], featrange[1]
	}
	return &MinMax{lo: lo, hi: hi}
}

// Kind returns "MinMaxScaler".
func (M *MinMax) Kind() string { return "MinMaxScaler" }

// Range returns the target range of the scaler.
func (M *MinMax) Range() (float64, float64) { return M.lo, M.hi }

// Fit records the per-column minimum and maximum of X.
func (M *MinMax) Fit(X *mat.Dense) error {
	if X == nil {
		return Error{"nil matrix given", []string{"Fit"}}
	}
	r, c := X.Dims()
	M.dmin = make([]float64, c)
	M.dmax = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		M.dmin[j] = floats.Min(col)
		M.dmax[j] = floats.Max(col)
	}
	return nil
}

// Transform maps each column of X to the target range using the fitted
// column extrema. Calling it before Fit (or Load) is an error, as is a
// column-count mismatch with the fitted data.
func (M *MinMax) Transform(X *mat.Dense) (*mat.Dense, error) {
	if M.dmin == nil {
		return nil, Error{"transform called on an unfitted scaler", []string{"Transform"}}
	}
	if X == nil {
		return nil, Error{"nil matrix given", []string{"Transform"}}
	}
	r, c := X.Dims()
	if c != len(M.dmin) {
		return nil, Error{fmt.Sprintf("scaler fitted on %d features, given %d", len(M.dmin), c), []string{"Transform"}}
	}
	ret := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		span := M.dmax[j] - M.dmin[j]
		if span == 0 {
			span = 1 //constant column, everything maps to lo
		}
		sc := (M.hi - M.lo) / span
		for i := 0; i < r; i++ {
			ret.Set(i, j, M.lo+(X.At(i, j)-M.dmin[j])*sc)
		}
	}
	return ret, nil
}

// Normalizer scales each row (i.e. each atomic fingerprint) to unit
// euclidean norm. It is stateless, so Fit does nothing.
type Normalizer struct{}

// NewNormalizer returns a Normalizer.
func NewNormalizer() *Normalizer { return &Normalizer{} }

// Kind returns "Normalizer".
func (N *Normalizer) Kind() string { return "Normalizer" }

// Fit does nothing; the Normalizer has no parameters to learn.
func (N *Normalizer) Fit(X *mat.Dense) error {
	if X == nil {
		return Error{"nil matrix given", []string{"Fit"}}
	}
	return nil
}

// Transform divides each row by its euclidean norm. All-zero rows are
// left as they are.
func (N *Normalizer) Transform(X *mat.Dense) (*mat.Dense, error) {
	if X == nil {
		return nil, Error{"nil matrix given", []string{"Transform"}}
	}
	r, c := X.Dims()
	ret := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := X.RawRowView(i)
		n := floats.Norm(row, 2)
		if n == 0 {
			n = 1
		}
		for j := 0; j < c; j++ {
			ret.Set(i, j, row[j]/n)
		}
	}
	return ret, nil
}

//Persistence. The fitted state goes through gob, which round-trips
//float64 values exactly, so a loaded scaler reproduces the training
//transformation bit by bit.

const stateVersion = 1

type state struct {
	Version int
	Kind    string
	Lo, Hi  float64
	DataMin []float64
	DataMax []float64
}

// Save writes the fitted state of the scaler to a file. Saving an
// unfitted MinMax scaler is an error.
func Save(path string, s Scaler) error {
	st := state{Version: stateVersion, Kind: s.Kind()}
	switch sc := s.(type) {
	case *MinMax:
		if sc.dmin == nil {
			return Error{"cannot save an unfitted scaler", []string{"Save"}}
		}
		st.Lo, st.Hi = sc.lo, sc.hi
		st.DataMin, st.DataMax = sc.dmin, sc.dmax
	case *Normalizer:
		//stateless
	default:
		return Error{fmt.Sprintf("cannot save a scaler of kind %q", s.Kind()), []string{"Save"}}
	}
	f, err := os.Create(path)
	if err != nil {
		return Error{err.Error(), []string{"Save"}}
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(&st); err != nil {
		return Error{err.Error(), []string{"Save"}}
	}
	return nil
}

// Load reads a fitted scaler back from a file written by Save.
func Load(path string) (Scaler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{err.Error(), []string{"Load"}}
	}
	defer f.Close()
	var st state
	if err := gob.NewDecoder(f).Decode(&st); err != nil {
		return nil, Error{err.Error(), []string{"Load"}}
	}
	if st.Version != stateVersion {
		return nil, Error{fmt.Sprintf("unsupported scaler state version %d", st.Version), []string{"Load"}}
	}
	switch strings.ToLower(st.Kind) {
	case "minmaxscaler":
		if st.DataMin == nil || st.DataMax == nil {
			return nil, Error{"scaler state holds no fitted data", []string{"Load"}}
		}
		return &MinMax{lo: st.Lo, hi: st.Hi, dmin: st.DataMin, dmax: st.DataMax}, nil
	case "normalizer":
		return NewNormalizer(), nil
	}
	return nil, Error{fmt.Sprintf("unknown scaler kind %q in state file", st.Kind), []string{"Load"}}
}

//Errors

// Error is the error type of the package. It implements the Error
// interface of the parent package.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
