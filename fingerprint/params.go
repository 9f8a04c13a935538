/*
 * params.go, part of gomlpot
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
	"encoding/json"
	"fmt"
	"io"
	"os"

	mlpot "github.com/rmera/gomlpot"
	"github.com/rmera/gomlpot/scale"
)

// FuncParams is the JSON form of one symmetry function.
type FuncParams struct {
	Class  string   `json:"class"`
	Symbol string   `json:"symbol,omitempty"`
	Pair   []string `json:"pair,omitempty"`
	Eta    float64  `json:"eta"`
	Zeta   float64  `json:"zeta,omitempty"`
	Gamma  float64  `json:"gamma,omitempty"`
}

// Params is the JSON form of a Calculator's configuration: everything
// needed to reproduce a set of fingerprints, or to check that two
// models were trained on the same ones.
type Params struct {
	Method       string                  `json:"method"`
	Cutoff       float64                 `json:"cutoff"`
	CutoffFunc   string                  `json:"cutoff_function"`
	CutoffGamma  float64                 `json:"cutoff_gamma,omitempty"`
	Normalized   bool                    `json:"normalized"`
	Angular      string                  `json:"angular"`
	Preprocessor string                  `json:"preprocessor,omitempty"`
	FeatureRange []float64               `json:"feature_range,omitempty"`
	Elements     []string                `json:"elements"`
	Funcs        map[string][]FuncParams `json:"symmetry_functions"`
}

// Params returns the Calculator's configuration. The symmetry-function
// table is part of it, so Params can only be called after Calculate has
// run (or when the table was given as an option).
func (C *Calculator) Params() (*Params, error) {
	if C.symfuncs == nil {
		return nil, Error{"no symmetry functions built yet, run Calculate first", []string{"Params"}}
	}
	p := &Params{
		Method:     "gaussian",
		Cutoff:     C.o.cutoff,
		CutoffFunc: C.cf.Name(),
		Normalized: C.o.normalized,
		Angular:    C.o.angular.String(),
		Elements:   C.symfuncs.Elements(),
		Funcs:      make(map[string][]FuncParams),
	}
	if poly, ok := C.cf.(*mlpot.Polynomial); ok {
		p.CutoffGamma = poly.Gamma()
	}
	if C.scaler != nil {
		p.Preprocessor = C.scaler.Kind()
		if m, ok := C.scaler.(*scale.MinMax); ok {
			lo, hi := m.Range()
			p.FeatureRange = []float64{lo, hi}
		}
	}
	for _, el := range p.Elements {
		for _, f := range C.symfuncs.ForElement(el) {
			fp := FuncParams{Class: f.Class.String(), Eta: f.Eta}
			if f.Class == mlpot.G2 {
				fp.Symbol = f.Symbol
			} else {
				fp.Pair = []string{f.Pair[0], f.Pair[1]}
				fp.Zeta = f.Zeta
				fp.Gamma = f.Gamma
			}
			p.Funcs[el] = append(p.Funcs[el], fp)
		}
	}
	return p, nil
}

// WriteParams writes the configuration to w as indented JSON.
func (C *Calculator) WriteParams(w io.Writer) error {
	p, err := C.Params()
	if err != nil {
		return errDecorate(err, "WriteParams")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return Error{err.Error(), []string{"WriteParams"}}
	}
	return nil
}

// WriteParamsFile writes the configuration to the named file as
// indented JSON.
func (C *Calculator) WriteParamsFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{err.Error(), []string{"WriteParamsFile"}}
	}
	defer f.Close()
	return C.WriteParams(f)
}

// ReadParams reads back a configuration written by WriteParams.
func ReadParams(r io.Reader) (*Params, error) {
	p := new(Params)
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, Error{err.Error(), []string{"ReadParams"}}
	}
	return p, nil
}

// ReadParamsFile reads back a configuration from the named file.
func ReadParamsFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{err.Error(), []string{"ReadParamsFile"}}
	}
	defer f.Close()
	return ReadParams(f)
}

// SymFuncSet rebuilds the symmetry-function table the record describes,
// with the feature order it was written in.
func (P *Params) SymFuncSet() (*mlpot.SymFuncSet, error) {
	classes := map[string]mlpot.SFClass{"G2": mlpot.G2, "G3": mlpot.G3, "G4": mlpot.G4}
	set := mlpot.NewSymFuncSet()
	for _, el := range P.Elements {
		funcs, ok := P.Funcs[el]
		if !ok {
			return nil, Error{fmt.Sprintf("no symmetry functions recorded for element %s", el), []string{"SymFuncSet"}}
		}
		for i, f := range funcs {
			class, ok := classes[f.Class]
			if !ok {
				return nil, Error{fmt.Sprintf("unknown symmetry function class %q for element %s", f.Class, el), []string{"SymFuncSet"}}
			}
			sf := &mlpot.SymFunc{Class: class, Eta: f.Eta}
			if class == mlpot.G2 {
				sf.Symbol = f.Symbol
			} else {
				if len(f.Pair) != 2 {
					return nil, Error{fmt.Sprintf("angular function %d of element %s has no element pair", i, el), []string{"SymFuncSet"}}
				}
				a, b := f.Pair[0], f.Pair[1]
				if b < a {
					a, b = b, a //pairs are stored sorted
				}
				sf.Pair = [2]string{a, b}
				sf.Zeta = f.Zeta
				sf.Gamma = f.Gamma
			}
			set.Add(el, sf)
		}
	}
	return set, nil
}

// Options builds engine options reproducing the recorded configuration,
// symmetry-function table included, so a Calculator built from them
// computes the same fingerprints the writing one did.
func (P *Params) Options() (*Options, error) {
	if P.Cutoff <= 0 {
		return nil, Error{fmt.Sprintf("recorded cutoff radius must be positive, got %4.2f", P.Cutoff), []string{"Options"}}
	}
	set, err := P.SymFuncSet()
	if err != nil {
		return nil, errDecorate(err, "Options")
	}
	o := DefaultOptions()
	o.Cutoff(P.Cutoff)
	switch P.CutoffFunc {
	case "cosine", "":
		o.CutoffFunc(mlpot.NewCosine(P.Cutoff))
	case "polynomial":
		if P.CutoffGamma > 0 {
			o.CutoffFunc(mlpot.NewPolynomial(P.Cutoff, P.CutoffGamma))
		} else {
			o.CutoffFunc(mlpot.NewPolynomial(P.Cutoff))
		}
	default:
		return nil, Error{fmt.Sprintf("unknown cutoff function %q", P.CutoffFunc), []string{"Options"}}
	}
	switch P.Angular {
	case "G3", "":
		o.Angular(mlpot.G3)
	case "G4":
		o.Angular(mlpot.G4)
	default:
		return nil, Error{fmt.Sprintf("unknown angular symmetry function %q", P.Angular), []string{"Options"}}
	}
	o.Normalized(P.Normalized)
	o.SymFuncs(set)
	o.Preprocessor(P.Preprocessor)
	if len(P.FeatureRange) == 2 {
		o.FeatureRange(P.FeatureRange)
	}
	return o, nil
}
