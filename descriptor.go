/*
 * descriptor.go, part of gomlpot
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
)

// Row evaluates every symmetry function in funcs on the environment env
// and returns the resulting fingerprint vector, in the order of funcs.
// The normalized flag divides the G2 exponent by Rc^2, as the angular
// functions always do. An environment with no neighbors yields all
// zeros. A symmetry function of an unsupported class is an error.
func Row(env *Environment, funcs []*SymFunc, cf Cutoff, normalized bool) ([]float64, error) {
	if env == nil {
		panic(ErrNilStructure)
	}
	if cf == nil {
		panic(ErrNilCutoff)
	}
	nn := 0
	if env.Coords != nil {
		nn = env.Coords.NVecs()
	}
	rc := cf.Rc()
	rij := make([]float64, nn)
	fcij := make([]float64, nn)
	for k := 0; k < nn; k++ {
		rij[k] = math.Sqrt(dist2(env.Center, env.Coords.Vec(k)))
		fcij[k] = cf.Eval(rij[k])
	}
	var rjk [][]float64
	row := make([]float64, len(funcs))
	for fi, f := range funcs {
		switch f.Class {
		case G2:
			row[fi] = radialSum(env, f, rij, fcij, rc, normalized)
		case G3, G4:
			if f.Class == G3 && rjk == nil && nn > 1 {
				rjk = pairDistances(env, nn) //G4 never needs the j-k legs
			}
			row[fi] = angularSum(env, f, cf, rij, fcij, rjk, rc)
		default:
			return nil, CError{fmt.Sprintf("unsupported symmetry function class %v", f.Class), []string{"Row"}}
		}
	}
	return row, nil
}

// radialSum is the G2 sum over the neighbors matching the target
// element, exp(-eta*Rij^2/Rc^2)*fc(Rij). Rc is 1 when not normalized.
func radialSum(env *Environment, f *SymFunc, rij, fcij []float64, rc float64, normalized bool) float64 {
	rc2 := 1.0
	if normalized {
		rc2 = rc * rc
	}
	sum := 0.0
	for k := range rij {
		if env.Symbols[k] != f.Symbol {
			continue
		}
		sum += math.Exp(-f.Eta*rij[k]*rij[k]/rc2) * fcij[k]
	}
	return sum
}

// angularSum is the G3/G4 sum over the unordered neighbor pairs matching
// the target element pair:
//
//	2^(1-zeta) * sum (1+gamma*cos)^zeta * exp(-eta*R2/Rc^2) * fc terms
//
// where cos is the cosine of the angle at the central atom. For G3, R2
// includes the j-k distance and its fc factor appears; G4 omits both, so
// it keeps weight on stretched, near-180-degree triples.
func angularSum(env *Environment, f *SymFunc, cf Cutoff, rij, fcij []float64, rjk [][]float64, rc float64) float64 {
	nn := len(rij)
	rc2 := rc * rc
	c := env.Center
	sum := 0.0
	for k2 := 1; k2 < nn; k2++ {
		for k1 := 0; k1 < k2; k1++ {
			if sortPair(env.Symbols[k1], env.Symbols[k2]) != f.Pair {
				continue
			}
			a := env.Coords.Vec(k1)
			b := env.Coords.Vec(k2)
			dot := (a[0]-c[0])*(b[0]-c[0]) + (a[1]-c[1])*(b[1]-c[1]) + (a[2]-c[2])*(b[2]-c[2])
			cos := dot / (rij[k1] * rij[k2])
			term := math.Pow(1+f.Gamma*cos, f.Zeta)
			if f.Class == G3 {
				d := rjk[k2][k1]
				term *= math.Exp(-f.Eta * (rij[k1]*rij[k1] + rij[k2]*rij[k2] + d*d) / rc2)
				term *= fcij[k1] * fcij[k2] * cf.Eval(d)
			} else {
				term *= math.Exp(-f.Eta * (rij[k1]*rij[k1] + rij[k2]*rij[k2]) / rc2)
				term *= fcij[k1] * fcij[k2]
			}
			sum += term
		}
	}
	return math.Pow(2, 1-f.Zeta) * sum
}

// pairDistances returns the lower triangle of the neighbor-neighbor
// distance matrix, indexed [k2][k1] with k1<k2. It is computed once per
// environment and shared by all angular symmetry functions.
func pairDistances(env *Environment, nn int) [][]float64 {
	d := make([][]float64, nn)
	for k2 := 1; k2 < nn; k2++ {
		d[k2] = make([]float64, k2)
		ck2 := env.Coords.Vec(k2)
		for k1 := 0; k1 < k2; k1++ {
			d[k2][k1] = math.Sqrt(dist2(env.Coords.Vec(k1), ck2))
		}
	}
	return d
}
