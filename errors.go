/*
 * errors.go, part of gomlpot
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

// CError is the general error type of the package, used for configuration
// and consistency problems. It implements the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// GeomError is the error type for geometry problems, such as degenerate
// simulation cells. These errors are always critical: there is no sensible
// fingerprint for a broken geometry.
type GeomError struct {
	msg  string
	deco []string
}

func (err GeomError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice.
func (err GeomError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical always returns true for geometry errors.
func (err GeomError) Critical() bool { return true }

// errDecorate is a helper function that asserts that the error
// implements Error and decorates it with the caller's name before
// returning it. If used with an error that doesn't implement the Error
// interface, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics on programming errors, even
// though it does satisfy the error interface. For recoverable conditions
// use CError or GeomError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilStructure   = PanicMsg("gomlpot: nil structure or coordinates given")
	ErrNilCutoff      = PanicMsg("gomlpot: nil cutoff function given")
	ErrBadCutoffRange = PanicMsg("gomlpot: the cutoff radius must be positive")
)
