/*
 * interfaces.go, part of gomlpot
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

// Cutoff is the interface for cutoff/switching functions. A cutoff
// function takes the value 1 at r=0, decays smoothly and becomes exactly
// zero at and beyond the cutoff radius Rc. Symmetry-function sums are
// weighted by it so atoms drift in and out of an environment without
// discontinuities in the fingerprint.
type Cutoff interface {

	//Rc returns the cutoff radius.
	Rc() float64

	//Eval returns the value of the switching function at distance r.
	Eval(r float64) float64

	//Name returns a short lowercase name identifying the functional form.
	Name() string
}

// Elementer can provide the set of unique chemical elements present in a
// set of structures, for a given purpose. The fingerprint engine uses it
// to build default symmetry-function tables.
type Elementer interface {
	UniqueElements(set *StructureSet, purpose Purpose) ([]string, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
