/*
 * options.go, part of gomlpot
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
	"runtime"

	mlpot "github.com/rmera/gomlpot"
)

//Options contains the knobs of the fingerprint Calculator. Once a
//Calculator is built from them, changing the Options has no effect.
type Options struct {
	cutoff       float64
	cutofffn     mlpot.Cutoff
	normalized   bool
	angular      mlpot.SFClass
	defaults     bool
	symfuncs     *mlpot.SymFuncSet
	params       *mlpot.SFParams
	preprocessor string
	featrange    []float64
	scalerfile   string
	cachefile    string
	overwrite    bool
	cpus         int
	sched        Scheduler
	envcache     int
}

//DefaultOptions returns reasonable options for fingerprinting: a 6.5
//cutoff with the cosine switching function, normalized G2 exponents, G3
//as the angular form, default symmetry-function tables, MinMax scaling
//to (-1,1), disk caching on, and one worker per logical CPU.
func DefaultOptions() *Options {
	r := new(Options)
	r.cutoff = 6.5
	r.normalized = true
	r.angular = mlpot.G3
	r.defaults = true
	r.preprocessor = "MinMaxScaler"
	r.scalerfile = "fingerprints.scaler"
	r.cachefile = "fingerprints.db.zst"
	r.cpus = runtime.NumCPU()
	r.envcache = 512
	return r
}

//Returns the cutoff radius and sets it, if a valid value is given.
func (r *Options) Cutoff(rc ...float64) float64 {
	ret := r.cutoff
	if len(rc) > 0 && rc[0] > 0 {
		r.cutoff = rc[0]
	}
	return ret
}

//Returns the cutoff/switching function, nil meaning the cosine form at
//the cutoff radius, and sets it, if given. The radius of a given
//function must match the Cutoff option.
func (r *Options) CutoffFunc(cf ...mlpot.Cutoff) mlpot.Cutoff {
	ret := r.cutofffn
	if len(cf) > 0 {
		r.cutofffn = cf[0]
	}
	return ret
}

//Returns whether G2 exponents are divided by the squared cutoff radius,
//and sets it, if given.
func (r *Options) Normalized(norm ...bool) bool {
	ret := r.normalized
	if len(norm) > 0 {
		r.normalized = norm[0]
	}
	return ret
}

//Returns the angular symmetry-function form used by the default table
//builder and sets it, if a valid value (G3 or G4) is given.
func (r *Options) Angular(class ...mlpot.SFClass) mlpot.SFClass {
	ret := r.angular
	if len(class) > 0 && (class[0] == mlpot.G3 || class[0] == mlpot.G4) {
		r.angular = class[0]
	}
	return ret
}

//Returns whether a default symmetry-function table is built from the
//discovered elements when no custom table is given, and sets it, if
//given.
func (r *Options) Defaults(def ...bool) bool {
	ret := r.defaults
	if len(def) > 0 {
		r.defaults = def[0]
	}
	return ret
}

//Returns the custom symmetry-function table, nil if none, and sets it,
//if given.
func (r *Options) SymFuncs(sf ...*mlpot.SymFuncSet) *mlpot.SymFuncSet {
	ret := r.symfuncs
	if len(sf) > 0 {
		r.symfuncs = sf[0]
	}
	return ret
}

//Returns the parameter overrides for the default symmetry-function
//builder, nil meaning the standard grid, and sets them, if given.
func (r *Options) BuildParams(p ...*mlpot.SFParams) *mlpot.SFParams {
	ret := r.params
	if len(p) > 0 {
		r.params = p[0]
	}
	return ret
}

//Returns the name of the feature scaler ("MinMaxScaler", "Normalizer",
//or the empty string for no scaling) and sets it, if given.
func (r *Options) Preprocessor(name ...string) string {
	ret := r.preprocessor
	if len(name) > 0 {
		r.preprocessor = name[0]
	}
	return ret
}

//Returns the target range for the MinMax scaler, nil meaning (-1,1),
//and sets it, if given.
func (r *Options) FeatureRange(fr ...[]float64) []float64 {
	ret := r.featrange
	if len(fr) > 0 {
		r.featrange = fr[0]
	}
	return ret
}

//Returns the file where the fitted scaler state is kept, and sets it,
//if given.
func (r *Options) ScalerFile(name ...string) string {
	ret := r.scalerfile
	if len(name) > 0 {
		r.scalerfile = name[0]
	}
	return ret
}

//Returns the fingerprint cache file, the empty string disabling
//caching, and sets it, if given. The file has a single writer: two
//Calculators training against the same file at once is not supported.
func (r *Options) CacheFile(name ...string) string {
	ret := r.cachefile
	if len(name) > 0 {
		r.cachefile = name[0]
	}
	return ret
}

//Returns whether an existing cache file is ignored and recomputed over,
//and sets it, if given.
func (r *Options) Overwrite(ov ...bool) bool {
	ret := r.overwrite
	if len(ov) > 0 {
		r.overwrite = ov[0]
	}
	return ret
}

//Returns the number of worker goroutines for the fingerprinting tasks
//and sets it, if a valid value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//Returns the task scheduler, nil meaning an internal worker pool with
//the Cpus option workers, and sets it, if given.
func (r *Options) Scheduler(s ...Scheduler) Scheduler {
	ret := r.sched
	if len(s) > 0 {
		r.sched = s[0]
	}
	return ret
}

//Returns the number of per-structure neighbor tables kept in memory
//between calls, and sets it, if a valid value is given.
func (r *Options) EnvCacheSize(n ...int) int {
	ret := r.envcache
	if len(n) > 0 && n[0] > 0 {
		r.envcache = n[0]
	}
	return ret
}
