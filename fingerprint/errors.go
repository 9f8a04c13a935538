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

package fingerprint

import (
	mlpot "github.com/rmera/gomlpot"
)

// Error is the general error of the package.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

// Decorate adds the string dec to the decoration slice of the error and
// returns the modified slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// CacheError is returned on failures to write or read back computed
// fingerprints. Read failures are normally absorbed (the fingerprints
// are just recomputed) so callers mostly see the write side.
type CacheError struct {
	message string
	deco    []string
}

func (err CacheError) Error() string { return err.message }

// Decorate adds the string dec to the decoration slice of the error and
// returns the modified slice.
func (err CacheError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// SchedError is returned when a fingerprinting batch fails. The message
// carries the first error reported by the tasks.
type SchedError struct {
	message string
	deco    []string
}

func (err SchedError) Error() string { return err.message }

// Decorate adds the string dec to the decoration slice of the error and
// returns the modified slice.
func (err SchedError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates an error that satisfies the mlpot.Error
// interface, and wraps one that does not in a package Error.
func errDecorate(err error, caller string) error {
	err2, ok := err.(mlpot.Error)
	if !ok {
		return Error{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}
