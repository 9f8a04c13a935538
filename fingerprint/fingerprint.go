/*
 * fingerprint.go, part of gomlpot
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

//Package fingerprint computes per-atom fingerprints (atom-centered
//symmetry functions) for whole sets of structures, concurrently. It
//handles caching of computed fingerprints, feature scaling, and the
//grouping of the results per structure or as a flat reference space for
//kernel methods.
package fingerprint

import (
	"fmt"
	"log"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	mlpot "github.com/rmera/gomlpot"
	"github.com/rmera/gomlpot/pool"
	"github.com/rmera/gomlpot/scale"
	"gonum.org/v1/gonum/mat"
)

// Scheduler runs a batch of tasks to completion, returning after all of
// them have joined. The first task error, if any, is returned then.
// *pool.Pool satisfies it.
type Scheduler interface {
	RunAll(tasks []pool.Task) error
}

// Calculator computes fingerprints. Build one with New, then call
// Calculate as many times as needed; the symmetry-function table built
// on the first call, and the neighbor tables of recently seen
// structures, are kept between calls.
type Calculator struct {
	o        *Options
	cf       mlpot.Cutoff
	symfuncs *mlpot.SymFuncSet
	scaler   scale.Scaler
	sched    Scheduler
	envs     *lru.Cache[string, []*mlpot.Environment]
}

// New returns a Calculator for the given options, or for DefaultOptions
// if none are given. Inconsistent options (a non-positive cutoff, a
// switching function whose radius disagrees with the cutoff, disabling
// default tables without supplying one, an unknown angular form) are
// errors. An unsupported preprocessor name is only a logged warning: the
// Calculator then runs without scaling.
func New(options ...*Options) (*Calculator, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if o.cutoff <= 0 {
		return nil, Error{fmt.Sprintf("cutoff radius must be positive, got %4.2f", o.cutoff), []string{"New"}}
	}
	if o.angular != mlpot.G3 && o.angular != mlpot.G4 {
		return nil, Error{fmt.Sprintf("unsupported angular symmetry function %v", o.angular), []string{"New"}}
	}
	C := &Calculator{o: o}
	C.cf = o.cutofffn
	if C.cf == nil {
		C.cf = mlpot.NewCosine(o.cutoff)
	} else if C.cf.Rc() != o.cutoff {
		return nil, Error{fmt.Sprintf("switching function radius %4.2f disagrees with the cutoff option %4.2f", C.cf.Rc(), o.cutoff), []string{"New"}}
	}
	if o.symfuncs != nil {
		C.symfuncs = o.symfuncs
	} else if !o.defaults {
		return nil, Error{"default symmetry functions disabled and no custom table given", []string{"New"}}
	}
	if o.preprocessor != "" {
		s, err := scale.New(o.preprocessor, o.featrange...)
		if err != nil {
			log.Printf("Warning: %s. Will proceed without scaling", err.Error())
		} else {
			C.scaler = s
		}
	}
	C.sched = o.sched
	if C.sched == nil {
		C.sched = pool.New(o.cpus)
	}
	size := o.envcache
	if size <= 0 {
		size = 512
	}
	C.envs, _ = lru.New[string, []*mlpot.Environment](size) //size is positive, so no error
	return C, nil
}

// SymFuncs returns the symmetry-function table the Calculator uses, nil
// if none has been built yet.
func (C *Calculator) SymFuncs() *mlpot.SymFuncSet { return C.symfuncs }

// Calculate computes the fingerprints of every atom of every structure
// in the set. data provides the unique-element discovery; passing nil
// uses a fresh handler. With kernel true, the flat reference space
// needed by kernel methods is returned along the per-structure one.
//
// At training, the fitted scaler state and the computed fingerprints are
// written to disk (to the ScalerFile and CacheFile options); at
// inference the scaler state is loaded back instead, and nothing is
// written. Either way, a usable cache file holding every requested
// structure is served instead of recomputing: on an exact match the
// stored data is returned as such, and a request for a subset of the
// stored structures gets the projection onto just those. Structures
// missing from the cache mean a full recompute. A cache that cannot be
// read is reported as a warning and recomputed over, never an error.
func (C *Calculator) Calculate(set *mlpot.StructureSet, data mlpot.Elementer, purpose mlpot.Purpose, kernel ...bool) (*FeatureSpace, *ReferenceSpace, error) {
	start := time.Now()
	if !purpose.Valid() {
		return nil, nil, Error{fmt.Sprintf("unrecognized purpose %q", string(purpose)), []string{"Calculate"}}
	}
	if set == nil || set.Len() == 0 {
		return nil, nil, Error{"empty structure set given", []string{"Calculate"}}
	}
	if data == nil {
		data = mlpot.NewDataHandler()
	}
	svm := len(kernel) > 0 && kernel[0]
	ids := set.IDs()
	if C.o.cachefile != "" && !C.o.overwrite {
		if _, err := os.Stat(C.o.cachefile); err == nil {
			rec, err := readCache(C.o.cachefile)
			if err != nil {
				log.Printf("Warning: could not read the fingerprint cache: %s. Will recompute", err.Error())
			} else if fs, rs, ok := rec.serve(ids, svm); ok {
				log.Printf("fingerprints for %d structures loaded from %s", fs.Len(), C.o.cachefile)
				return fs, rs, nil
			}
		}
	}
	elements, err := data.UniqueElements(set, purpose)
	if err != nil {
		return nil, nil, errDecorate(err, "Calculate")
	}
	if C.symfuncs == nil {
		log.Printf("making default symmetry functions for elements %v", elements)
		var p mlpot.SFParams
		if C.o.params != nil {
			p = *C.o.params
		}
		if p.Angular == 0 {
			p.Angular = C.o.angular
		}
		sf, err := mlpot.MakeSymFuncs(elements, &p)
		if err != nil {
			return nil, nil, errDecorate(err, "Calculate")
		}
		C.symfuncs = sf
		log.Printf("symmetry functions:\n%v", sf)
	}
	for _, el := range elements {
		if C.symfuncs.ForElement(el) == nil {
			return nil, nil, Error{fmt.Sprintf("no symmetry functions for element %s", el), []string{"Calculate"}}
		}
	}
	if C.scaler != nil {
		if _, ok := C.symfuncs.UniformDim(); !ok {
			return nil, nil, Error{"feature scaling needs equal fingerprint lengths for all elements", []string{"Calculate"}}
		}
	}
	//one task per atom, results land in rows by global atom index
	total := set.TotalAtoms()
	rows := make([][]float64, total)
	tasks := make([]pool.Task, 0, total)
	offset := 0
	for _, id := range ids {
		st := set.Get(id)
		envs, err := C.environments(st)
		if err != nil {
			return nil, nil, errDecorate(err, "Calculate")
		}
		for _, env := range envs {
			env := env
			slot := offset + env.Index
			funcs := C.symfuncs.ForElement(env.Symbol)
			tasks = append(tasks, func() error {
				r, err := mlpot.Row(env, funcs, C.cf, C.o.normalized)
				if err != nil {
					return err
				}
				rows[slot] = r
				return nil
			})
		}
		offset += st.Len()
	}
	if err := C.sched.RunAll(tasks); err != nil {
		return nil, nil, SchedError{fmt.Sprintf("fingerprinting batch failed: %s", err.Error()), []string{"Calculate"}}
	}
	if C.scaler != nil {
		rows, err = C.applyScaling(rows, purpose)
		if err != nil {
			return nil, nil, errDecorate(err, "Calculate")
		}
	}
	fs, err := Restack(rows, set)
	if err != nil {
		return nil, nil, errDecorate(err, "Calculate")
	}
	var rs *ReferenceSpace
	if svm {
		rs = fs.Flatten()
	}
	if purpose == mlpot.Training && C.o.cachefile != "" {
		if err := writeCache(C.o.cachefile, fs, svm); err != nil {
			log.Printf("Warning: could not write the fingerprint cache: %s", err.Error())
		}
	}
	log.Printf("fingerprinting of %d atoms in %d structures took %v", total, set.Len(), time.Since(start).Round(time.Millisecond))
	return fs, rs, nil
}

// environments returns the neighbor environments of the structure,
// computing them at the configured cutoff or reusing a previous result.
func (C *Calculator) environments(S *mlpot.Structure) ([]*mlpot.Environment, error) {
	if envs, ok := C.envs.Get(S.ID()); ok {
		return envs, nil
	}
	envs, err := mlpot.Environments(S, C.o.cutoff)
	if err != nil {
		return nil, err
	}
	C.envs.Add(S.ID(), envs)
	return envs, nil
}

// applyScaling runs the whole stacked matrix through the scaler. At
// training the scaler is fitted first and its state saved; at inference
// the state saved at training is loaded instead, so both sides of a
// model see the exact same transformation.
func (C *Calculator) applyScaling(rows [][]float64, purpose mlpot.Purpose) ([][]float64, error) {
	dim, _ := C.symfuncs.UniformDim()
	flat := make([]float64, 0, len(rows)*dim)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	X := mat.NewDense(len(rows), dim, flat)
	if purpose == mlpot.Training {
		if err := C.scaler.Fit(X); err != nil {
			return nil, errDecorate(err, "applyScaling")
		}
		if C.o.scalerfile != "" {
			if err := scale.Save(C.o.scalerfile, C.scaler); err != nil {
				return nil, errDecorate(err, "applyScaling")
			}
		}
	} else {
		if C.o.scalerfile == "" {
			return nil, Error{"inference with scaling needs a fitted-state file", []string{"applyScaling"}}
		}
		s, err := scale.Load(C.o.scalerfile)
		if err != nil {
			return nil, Error{fmt.Sprintf("cannot load the fitted scaler state: %s", err.Error()), []string{"applyScaling"}}
		}
		if s.Kind() != C.scaler.Kind() {
			log.Printf("Warning: scaler state in %s is a %s, replacing the configured %s", C.o.scalerfile, s.Kind(), C.scaler.Kind())
		}
		C.scaler = s
	}
	Xs, err := C.scaler.Transform(X)
	if err != nil {
		return nil, errDecorate(err, "applyScaling")
	}
	out := make([][]float64, len(rows))
	for i := range out {
		out[i] = Xs.RawRowView(i)
	}
	return out, nil
}
