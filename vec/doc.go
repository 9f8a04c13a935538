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

/*Package vec implements a Matrix type representing a row-major Nx3 matrix,
used to represent the cartesian coordinates of sets of atoms, plus a Cell
type for the 3x3 lattice-vector matrix of periodic systems. Both are based
on gonum's (gonum.org) Dense type, with some additional functions that were
found useful for the purposes of gomlpot.
*/
package vec
