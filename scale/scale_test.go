/*
 * scale_test.go, part of gomlpot
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

package scale

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMinMax(Te *testing.T) {
	M := NewMinMax()
	if lo, hi := M.Range(); lo != -1 || hi != 1 {
		Te.Errorf("wrong default range (%f, %f)", lo, hi)
	}
	X := mat.NewDense(3, 2, []float64{
		0, 10,
		5, 20,
		10, 30,
	})
	if err := M.Fit(X); err != nil {
		Te.Fatal(err)
	}
	S, err := M.Transform(X)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{-1, -1, 0, 0, 1, 1}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(S.At(i, j)-want[i*2+j]) > 1e-12 {
				Te.Errorf("wrong scaled value at %d,%d: %f", i, j, S.At(i, j))
			}
		}
	}
	//transforming fresh data reuses the fitted extrema
	Y, err := M.Transform(mat.NewDense(1, 2, []float64{5, 10}))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(Y.At(0, 0)) > 1e-12 || math.Abs(Y.At(0, 1)+1) > 1e-12 {
		Te.Errorf("wrong transform of fresh data: %f %f", Y.At(0, 0), Y.At(0, 1))
	}
	//the input must stay untouched
	if X.At(0, 1) != 10 {
		Te.Error("Transform modified its input")
	}
	fmt.Println("scaled matrix:\n", mat.Formatted(S))
}

func TestMinMaxEdges(Te *testing.T) {
	M := NewMinMax(0, 1)
	X := mat.NewDense(2, 2, []float64{
		3, 0,
		3, 10,
	})
	if err := M.Fit(X); err != nil {
		Te.Fatal(err)
	}
	S, err := M.Transform(X)
	if err != nil {
		Te.Fatal(err)
	}
	//a constant column collapses to the low end of the range
	if S.At(0, 0) != 0 || S.At(1, 0) != 0 {
		Te.Errorf("a constant column should map to lo: %f %f", S.At(0, 0), S.At(1, 0))
	}
	if S.At(0, 1) != 0 || S.At(1, 1) != 1 {
		Te.Errorf("wrong scaling to (0,1): %f %f", S.At(0, 1), S.At(1, 1))
	}
	if _, err := NewMinMax().Transform(X); err == nil {
		Te.Error("expected an error for an unfitted scaler")
	}
	if _, err := M.Transform(mat.NewDense(1, 3, nil)); err == nil {
		Te.Error("expected an error for a feature-count mismatch")
	}
}

func TestNormalizer(Te *testing.T) {
	N := NewNormalizer()
	X := mat.NewDense(2, 2, []float64{
		3, 4,
		0, 0,
	})
	if err := N.Fit(X); err != nil {
		Te.Error(err)
	}
	S, err := N.Transform(X)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S.At(0, 0)-0.6) > 1e-12 || math.Abs(S.At(0, 1)-0.8) > 1e-12 {
		Te.Errorf("wrong normalized row: %f %f", S.At(0, 0), S.At(0, 1))
	}
	if S.At(1, 0) != 0 || S.At(1, 1) != 0 {
		Te.Error("an all-zero row should stay zero")
	}
}

func TestNewByName(Te *testing.T) {
	s, err := New("MinMaxScaler", 0, 1)
	if err != nil {
		Te.Error(err)
	}
	if s.Kind() != "MinMaxScaler" {
		Te.Errorf("wrong kind %s", s.Kind())
	}
	//names are case-insensitive
	if _, err := New("normalizer"); err != nil {
		Te.Error(err)
	}
	if _, err := New("Kalman"); err == nil {
		Te.Error("expected an error for an unsupported preprocessor")
	}
}

func TestSaveLoad(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "test.scaler")
	M := NewMinMax()
	X := mat.NewDense(3, 2, []float64{
		0, 10,
		5, 20,
		10, 30,
	})
	if err := M.Fit(X); err != nil {
		Te.Fatal(err)
	}
	if err := Save(path, M); err != nil {
		Te.Fatal(err)
	}
	L, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if L.Kind() != "MinMaxScaler" {
		Te.Errorf("wrong kind after loading: %s", L.Kind())
	}
	A, err := M.Transform(X)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := L.Transform(X)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(A, B) {
		Te.Error("the loaded scaler should reproduce the fitted one exactly")
	}
	//an unfitted scaler has no state to save
	if err := Save(filepath.Join(dir, "bad.scaler"), NewMinMax()); err == nil {
		Te.Error("expected an error when saving an unfitted scaler")
	}
	if _, err := Load(filepath.Join(dir, "nothere.scaler")); err == nil {
		Te.Error("expected an error for a missing state file")
	}
	//the stateless normalizer round-trips too
	if err := Save(path, NewNormalizer()); err != nil {
		Te.Fatal(err)
	}
	L2, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if L2.Kind() != "Normalizer" {
		Te.Errorf("wrong kind after loading: %s", L2.Kind())
	}
	fmt.Println("save/load done!")
}
