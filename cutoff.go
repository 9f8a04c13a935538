/*
 * cutoff.go, part of gomlpot
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

import "math"

// Cosine is the cosine cutoff function,
// 0.5*(cos(pi*r/Rc)+1) for r<=Rc, 0 beyond.
type Cosine struct {
	rc float64
}

// NewCosine returns a cosine cutoff function with radius rc. Panics if
// rc is not positive.
func NewCosine(rc float64) *Cosine {
	if rc <= 0 {
		panic(ErrBadCutoffRange)
	}
	return &Cosine{rc: rc}
}

// Rc returns the cutoff radius.
func (C *Cosine) Rc() float64 { return C.rc }

// Name returns "cosine".
func (C *Cosine) Name() string { return "cosine" }

// Eval returns the value of the switching function at distance r.
func (C *Cosine) Eval(r float64) float64 {
	if r > C.rc {
		return 0
	}
	return 0.5 * (math.Cos(math.Pi*r/C.rc) + 1)
}

// Polynomial is the polynomial cutoff function,
// 1 + gamma*(r/Rc)^(gamma+1) - (gamma+1)*(r/Rc)^gamma for r<=Rc, 0
// beyond. Larger gamma values keep the function closer to 1 for longer
// before dropping.
type Polynomial struct {
	rc    float64
	gamma float64
}

// NewPolynomial returns a polynomial cutoff function with radius rc and
// the given exponent, 4.0 if none is given. Panics if rc is not
// positive.
func NewPolynomial(rc float64, gamma ...float64) *Polynomial {
	if rc <= 0 {
		panic(ErrBadCutoffRange)
	}
	g := 4.0
	if len(gamma) > 0 && gamma[0] > 0 {
		g = gamma[0]
	}
	return &Polynomial{rc: rc, gamma: g}
}

// Rc returns the cutoff radius.
func (P *Polynomial) Rc() float64 { return P.rc }

// Gamma returns the exponent of the polynomial.
func (P *Polynomial) Gamma() float64 { return P.gamma }

// Name returns "polynomial".
func (P *Polynomial) Name() string { return "polynomial" }

// Eval returns the value of the switching function at distance r.
func (P *Polynomial) Eval(r float64) float64 {
	if r > P.rc {
		return 0
	}
	x := r / P.rc
	return 1 + P.gamma*math.Pow(x, P.gamma+1) - (P.gamma+1)*math.Pow(x, P.gamma)
}
