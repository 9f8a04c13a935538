/*
 * descriptor_test.go, part of gomlpot
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
	"testing"

	"github.com/rmera/gomlpot/vec"
)

func structureOrDie(Te *testing.T, symbols []string, coords []float64) *Structure {
	m, err := vec.New(coords)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewStructure(symbols, m, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestLoneAtomRow(Te *testing.T) {
	S := structureOrDie(Te, []string{"H"}, []float64{0, 0, 0})
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	sf, err := MakeSymFuncs([]string{"H"})
	if err != nil {
		Te.Fatal(err)
	}
	row, err := Row(envs[0], sf.ForElement("H"), NewCosine(6.5), true)
	if err != nil {
		Te.Error(err)
	}
	if len(row) != 8 {
		Te.Fatalf("expected 8 features, got %d", len(row))
	}
	for i, v := range row {
		if v != 0 {
			Te.Errorf("expected 0 at %d for an atom with no neighbors, got %f", i, v)
		}
	}
}

func TestDimerRadial(Te *testing.T) {
	S := structureOrDie(Te, []string{"H", "H"}, []float64{0, 0, 0, 0, 0, 1})
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	sf, err := MakeSymFuncs([]string{"H"})
	if err != nil {
		Te.Fatal(err)
	}
	cf := NewCosine(6.5)
	funcs := sf.ForElement("H")
	row, err := Row(envs[0], funcs, cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	rc := 6.5
	fc1 := 0.5 * (math.Cos(math.Pi*1.0/rc) + 1)
	for i := 0; i < 4; i++ {
		want := math.Exp(-funcs[i].Eta*1.0/(rc*rc)) * fc1
		if math.Abs(row[i]-want) > 1e-14 {
			Te.Errorf("radial feature %d: expected %g, got %g", i, want, row[i])
		}
	}
	//a single neighbor makes no angles
	for i := 4; i < 8; i++ {
		if row[i] != 0 {
			Te.Errorf("expected 0 for angular feature %d, got %g", i, row[i])
		}
	}
	//without normalization the exponent loses the 1/Rc^2 factor
	raw, err := Row(envs[0], funcs, cf, false)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		want := math.Exp(-funcs[i].Eta*1.0) * fc1
		if math.Abs(raw[i]-want) > 1e-14 {
			Te.Errorf("raw radial feature %d: expected %g, got %g", i, want, raw[i])
		}
	}
	//both atoms see the same environment
	row2, err := Row(envs[1], funcs, cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range row {
		if row[i] != row2[i] {
			Te.Error("the dimer atoms should have identical fingerprints")
		}
	}
	fmt.Println("dimer fingerprint:", row)
}

// A bent triatomic checked against the closed formulas, G3 against G4
// included.
func TestTriatomicAngular(Te *testing.T) {
	r1, r2 := 0.96, 0.96
	theta := 104.5 * math.Pi / 180
	coords := []float64{
		0, 0, 0,
		r1, 0, 0,
		r2 * math.Cos(theta), r2 * math.Sin(theta), 0,
	}
	S := structureOrDie(Te, []string{"O", "H", "H"}, coords)
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	p := &SFParams{REtas: []float64{0.05}, AEtas: []float64{0.005}, Zetas: []float64{1}, Gammas: []float64{1}, Angular: G3}
	sf, err := MakeSymFuncs([]string{"H", "O"}, p)
	if err != nil {
		Te.Fatal(err)
	}
	cf := NewCosine(6.5)
	rc := 6.5
	//features: G2 target H, G2 target O, then pairs H-H, H-O, O-O
	row, err := Row(envs[0], sf.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	if row[1] != 0 || row[3] != 0 || row[4] != 0 {
		Te.Errorf("features with no matching neighbors must be 0: %v", row)
	}
	g2want := math.Exp(-0.05*r1*r1/(rc*rc))*cf.Eval(r1) + math.Exp(-0.05*r2*r2/(rc*rc))*cf.Eval(r2)
	if math.Abs(row[0]-g2want) > 1e-14 {
		Te.Errorf("radial H feature: expected %g, got %g", g2want, row[0])
	}
	d := math.Sqrt(dist2([]float64{coords[3], coords[4], coords[5]}, []float64{coords[6], coords[7], coords[8]}))
	cos := math.Cos(theta)
	g3want := (1 + cos) * math.Exp(-0.005*(r1*r1+r2*r2+d*d)/(rc*rc)) * cf.Eval(r1) * cf.Eval(r2) * cf.Eval(d)
	if math.Abs(row[2]-g3want) > 1e-13 {
		Te.Errorf("angular H-H feature: expected %g, got %g", g3want, row[2])
	}
	//G4 drops the j-k leg
	p.Angular = G4
	sf4, err := MakeSymFuncs([]string{"H", "O"}, p)
	if err != nil {
		Te.Fatal(err)
	}
	row4, err := Row(envs[0], sf4.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	g4want := (1 + cos) * math.Exp(-0.005*(r1*r1+r2*r2)/(rc*rc)) * cf.Eval(r1) * cf.Eval(r2)
	if math.Abs(row4[2]-g4want) > 1e-13 {
		Te.Errorf("G4 H-H feature: expected %g, got %g", g4want, row4[2])
	}
	if math.Abs(row4[2]*math.Exp(-0.005*d*d/(rc*rc))*cf.Eval(d)-row[2]) > 1e-13 {
		Te.Error("G3 should be G4 damped by the j-k leg")
	}
	fmt.Println("triatomic fingerprints done!")
}

func TestRowInvariance(Te *testing.T) {
	base := []float64{0, 0, 0, 0.96, 0, 0, -0.3, 0.9, 0.1}
	S := structureOrDie(Te, []string{"O", "H", "H"}, base)
	sf, err := MakeSymFuncs([]string{"H", "O"})
	if err != nil {
		Te.Fatal(err)
	}
	cf := NewCosine(6.5)
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	row, err := Row(envs[0], sf.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	//translation
	shift := []float64{1.3, -2.2, 0.7}
	moved := make([]float64, len(base))
	for i, v := range base {
		moved[i] = v + shift[i%3]
	}
	S2 := structureOrDie(Te, []string{"O", "H", "H"}, moved)
	envs2, err := Environments(S2, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	row2, err := Row(envs2[0], sf.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range row {
		if math.Abs(row[i]-row2[i]) > 1e-9 {
			Te.Errorf("feature %d changed under translation: %g vs %g", i, row[i], row2[i])
		}
	}
	//rotation by 90 degrees around z
	rot := make([]float64, len(base))
	for i := 0; i < len(base); i += 3 {
		rot[i], rot[i+1], rot[i+2] = -base[i+1], base[i], base[i+2]
	}
	S3 := structureOrDie(Te, []string{"O", "H", "H"}, rot)
	envs3, err := Environments(S3, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	row3, err := Row(envs3[0], sf.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range row {
		if math.Abs(row[i]-row3[i]) > 1e-12 {
			Te.Errorf("feature %d changed under rotation: %g vs %g", i, row[i], row3[i])
		}
	}
	//neighbor relabeling
	perm := []float64{base[0], base[1], base[2], base[6], base[7], base[8], base[3], base[4], base[5]}
	S4 := structureOrDie(Te, []string{"O", "H", "H"}, perm)
	envs4, err := Environments(S4, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	row4, err := Row(envs4[0], sf.ForElement("O"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range row {
		if math.Abs(row[i]-row4[i]) > 1e-14 {
			Te.Errorf("feature %d changed under relabeling: %g vs %g", i, row[i], row4[i])
		}
	}
}

// Two neighbors at 180 degrees: gamma=+1 kills the angular term,
// gamma=-1 doubles it.
func TestLinearAngles(Te *testing.T) {
	S := structureOrDie(Te, []string{"H", "H", "H"}, []float64{0, 0, 0, 1, 0, 0, -1, 0, 0})
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	p := &SFParams{REtas: []float64{0.05}, AEtas: []float64{0.005}, Zetas: []float64{1}, Gammas: []float64{1, -1}, Angular: G3}
	sf, err := MakeSymFuncs([]string{"H"}, p)
	if err != nil {
		Te.Fatal(err)
	}
	cf := NewCosine(6.5)
	rc := 6.5
	row, err := Row(envs[0], sf.ForElement("H"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(row[1]) > 1e-14 {
		Te.Errorf("gamma=+1 at 180 degrees should vanish, got %g", row[1])
	}
	want := 2 * math.Exp(-0.005*(1+1+4)/(rc*rc)) * cf.Eval(1) * cf.Eval(1) * cf.Eval(2)
	if math.Abs(row[2]-want) > 1e-13 {
		Te.Errorf("gamma=-1 at 180 degrees: expected %g, got %g", want, row[2])
	}
	p.Angular = G4
	sf4, err := MakeSymFuncs([]string{"H"}, p)
	if err != nil {
		Te.Fatal(err)
	}
	row4, err := Row(envs[0], sf4.ForElement("H"), cf, true)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(row4[1]) > 1e-14 {
		Te.Errorf("G4 gamma=+1 at 180 degrees should vanish, got %g", row4[1])
	}
	//G4 drops the j-k leg, so putting it back should recover G3
	want4 := row4[2] * math.Exp(-0.005*4/(rc*rc)) * cf.Eval(2)
	if math.Abs(row[2]-want4) > 1e-13 {
		Te.Errorf("G3 and G4 inconsistent at 180 degrees: %g vs %g", row[2], want4)
	}
}

func TestRowBadClass(Te *testing.T) {
	S := structureOrDie(Te, []string{"H", "H"}, []float64{0, 0, 0, 0, 0, 1})
	envs, err := Environments(S, 6.5)
	if err != nil {
		Te.Fatal(err)
	}
	sf := NewSymFuncSet()
	sf.Add("H", &SymFunc{Class: SFClass(7), Symbol: "H"})
	_, err = Row(envs[0], sf.ForElement("H"), NewCosine(6.5), true)
	if err == nil {
		Te.Error("expected an error for an unknown symmetry function class")
	}
	fmt.Println("expected error:", err)
}
