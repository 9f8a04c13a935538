/*
 * doc.go, part of gomlpot
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

/*Package mlpot is the main package of the gomlpot library. It provides the
building blocks for computing per-atom fingerprints (atom-centered symmetry
functions) for machine-learned interatomic potentials.


	**gomlpot Capabilities**

    Atomic structures with periodic boundary conditions and content-derived
	identifiers, and ordered sets of structures.

    Neighbor environments within a cutoff radius, including the periodic
	images of triclinic cells.

    Radial (G2) and angular (G3, G4) Behler-Parrinello symmetry functions,
	with deterministic default parameter tables per element set, or fully
	custom tables.

    Pluggable cutoff/switching functions (cosine and polynomial forms are
	provided).

    Concurrent fingerprinting of whole structure sets, with disk caching,
	feature scaling and flat reference spaces for kernel methods (see the
	fingerprint subpackage).

    Feature scaling with persistable fitted state (see the scale
	subpackage) and plots of feature distributions (see featplot).


gomlpot uses a matrix type for coordinates, vec.Matrix, based on
gonum.org/v1/gonum/mat. Each row of a vec.Matrix represents one point in
space.*/
package mlpot
