// seehuhn.de/go/colormap - colour maps built from lists of colours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colormap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colormap/rgb"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestBuildScenarios(t *testing.T) {
	type probe struct {
		x    float64
		want rgb.Color
	}
	cases := []struct {
		name   string
		colors []string
		opt    *Options
		probes []probe
	}{
		{
			name:   "red-blue",
			colors: []string{"red", "blue"},
			probes: []probe{
				{0, rgb.Color{R: 1}},
				{1, rgb.Color{B: 1}},
				{0.5, rgb.Color{R: 0.5, B: 0.5}},
			},
		},
		{
			name:   "gray ramp",
			colors: []string{"black", "white"},
			opt:    &Options{Pivots: []float64{0, 1}},
			probes: []probe{
				{0, rgb.Gray(0)},
				{0.25, rgb.Gray(0.25)},
				{0.75, rgb.Gray(0.75)},
				{1, rgb.Gray(1)},
			},
		},
		{
			name:   "green at 80%",
			colors: []string{"r", "#00ff00", "b"},
			opt:    &Options{Pivots: []float64{0, 0.8, 1}},
			probes: []probe{
				{0, rgb.Color{R: 1}},
				{0.4, rgb.Color{R: 0.5, G: 0.5}},
				{0.8, rgb.Color{G: 1}},
				{0.9, rgb.Color{G: 0.5, B: 0.5}},
				{1, rgb.Color{B: 1}},
			},
		},
		{
			name:   "clamped ends",
			colors: []string{"black", "white"},
			opt:    &Options{Pivots: []float64{0.2, 0.6}},
			probes: []probe{
				{0, rgb.Gray(0)},
				{0.2, rgb.Gray(0)},
				{0.4, rgb.Gray(0.5)},
				{0.6, rgb.Gray(1)},
				{1, rgb.Gray(1)},
			},
		},
		{
			name:   "single colour",
			colors: []string{"orange"},
			probes: []probe{
				{0, rgb.Color{R: 1, G: float64(0xa5) / 255}},
				{0.5, rgb.Color{R: 1, G: float64(0xa5) / 255}},
				{1, rgb.Color{R: 1, G: float64(0xa5) / 255}},
			},
		},
		{
			name:   "out of range input",
			colors: []string{"red", "blue"},
			probes: []probe{
				{-1, rgb.Color{R: 1}},
				{2, rgb.Color{B: 1}},
				{math.Inf(1), rgb.Color{B: 1}},
				{math.NaN(), rgb.Color{R: 1}},
			},
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			cm, err := Build(test.colors, test.opt)
			if err != nil {
				t.Fatal(err)
			}
			if cm.Len() != Size {
				t.Errorf("got %d samples", cm.Len())
			}
			for _, p := range test.probes {
				got := cm.Evaluate(p.x)
				if d := cmp.Diff(p.want, got, approx); d != "" {
					t.Errorf("x=%g (-want +got):\n%s", p.x, d)
				}
			}
		})
	}
}

func TestSampleCount(t *testing.T) {
	names := []string{"orange", "darkorange", "k", "dodgerblue", "lightblue", "w", "r"}
	for n := 1; n <= len(names); n++ {
		cm, err := Build(names[:n], nil)
		if err != nil {
			t.Fatal(err)
		}
		if cm.Len() != Size || len(cm.Samples()) != Size {
			t.Errorf("n=%d: got %d/%d samples", n, cm.Len(), len(cm.Samples()))
		}
		seg := cm.Segments()
		for k := range seg {
			if len(seg[k]) != Size {
				t.Errorf("n=%d: channel %d has %d segments", n, k, len(seg[k]))
			}
		}
	}
}

func TestEndPoints(t *testing.T) {
	colors := []rgb.Color{
		{R: 0.1, G: 0.2, B: 0.3},
		{R: 0.9, G: 0.1, B: 0.5},
		{R: 0.4, G: 0.4, B: 0.8},
		{R: 0.7, G: 0.6, B: 0.05},
	}
	for _, gamma := range []float64{0.3, 1, 2.5} {
		cm, err := New(colors, &Options{Gamma: gamma})
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(colors[0], cm.Evaluate(0), approx); d != "" {
			t.Errorf("gamma=%g, x=0 (-want +got):\n%s", gamma, d)
		}
		if d := cmp.Diff(colors[3], cm.Evaluate(1), approx); d != "" {
			t.Errorf("gamma=%g, x=1 (-want +got):\n%s", gamma, d)
		}
	}
}

func TestDerivedPivots(t *testing.T) {
	colors := []string{"r", "g", "b", "c", "m"}
	n := len(colors)

	cm, err := Build(colors, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i) / float64(n-1)
	}
	if d := cmp.Diff(want, cm.Pivots()); d != "" {
		t.Errorf("gamma=1 (-want +got):\n%s", d)
	}

	for _, gamma := range []float64{0.5, 2, 3.7} {
		cm, err := Build(colors, &Options{Gamma: gamma})
		if err != nil {
			t.Fatal(err)
		}
		piv := cm.Pivots()
		for i := range want {
			want[i] = math.Pow(float64(i)/float64(n-1), gamma)
		}
		if d := cmp.Diff(want, piv, approx); d != "" {
			t.Errorf("gamma=%g (-want +got):\n%s", gamma, d)
		}
		for i := 1; i < n; i++ {
			if !(piv[i] > piv[i-1]) {
				t.Errorf("gamma=%g: pivots not increasing: %v", gamma, piv)
				break
			}
		}
	}
}

func TestGammaIgnoredWithPivots(t *testing.T) {
	piv := []float64{0, 0.3, 1}
	cm, err := Build([]string{"r", "g", "b"}, &Options{Pivots: piv, Gamma: 4})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(piv, cm.Pivots()); d != "" {
		t.Errorf("pivots (-want +got):\n%s", d)
	}
}

func TestSharpTransition(t *testing.T) {
	cm, err := Build([]string{"red", "red", "blue", "blue"},
		&Options{Pivots: []float64{0, 0.5, 0.5, 1}})
	if err != nil {
		t.Fatal(err)
	}
	samples := cm.Samples()
	for i, c := range samples {
		want := rgb.Color{R: 1}
		if i >= Size/2 {
			want = rgb.Color{B: 1}
		}
		if c != want {
			t.Errorf("sample %d: got %v, want %v", i, c, want)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	for _, piv := range [][]float64{{}, {0}, {0, 0.5, 1}} {
		_, err := Build([]string{"red", "blue"}, &Options{Pivots: piv})
		if !errors.Is(err, &LengthMismatchError{}) {
			t.Errorf("%v: expected LengthMismatchError, got %v", piv, err)
			continue
		}
		var lm *LengthMismatchError
		if !errors.As(err, &lm) || lm.Colors != 2 || lm.Pivots != len(piv) {
			t.Errorf("%v: wrong error details %v", piv, err)
		}
	}
}

func TestInvalidColor(t *testing.T) {
	_, err := Build([]string{"red", "nosuchcolour", "blue"}, nil)
	if !errors.Is(err, &rgb.InvalidSpecError{}) {
		t.Fatalf("expected InvalidSpecError, got %v", err)
	}
	var specErr *rgb.InvalidSpecError
	if !errors.As(err, &specErr) || specErr.Spec != "nosuchcolour" {
		t.Errorf("wrong error details: %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		colors []string
		opt    *Options
		field  string
	}{
		{"no colours", nil, nil, "colors"},
		{"negative gamma", []string{"r", "b"}, &Options{Gamma: -1}, "gamma"},
		{"NaN gamma", []string{"r", "b"}, &Options{Gamma: math.NaN()}, "gamma"},
		{"infinite gamma", []string{"r", "b"}, &Options{Gamma: math.Inf(1)}, "gamma"},
		{"pivot too large", []string{"r", "b"}, &Options{Pivots: []float64{0, 1.5}}, "pivots"},
		{"pivot negative", []string{"r", "b"}, &Options{Pivots: []float64{-0.1, 1}}, "pivots"},
		{"pivot NaN", []string{"r", "b"}, &Options{Pivots: []float64{0, math.NaN()}}, "pivots"},
		{"decreasing pivots", []string{"r", "g", "b"}, &Options{Pivots: []float64{0, 0.8, 0.4}}, "pivots"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			cm, err := Build(test.colors, test.opt)
			if cm != nil {
				t.Error("unexpected colour map")
			}
			var inErr *InvalidInputError
			if !errors.As(err, &inErr) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if inErr.Field != test.field {
				t.Errorf("wrong field %q, want %q", inErr.Field, test.field)
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	colors := []string{"orange", "darkorange", "k", "dodgerblue", "lightblue"}
	opt := &Options{Gamma: 1.7}

	cm1, err := Build(colors, opt)
	if err != nil {
		t.Fatal(err)
	}
	cm2, err := Build(colors, opt)
	if err != nil {
		t.Fatal(err)
	}
	if cm1 == cm2 {
		t.Fatal("expected distinct colour maps")
	}
	if d := cmp.Diff(cm1.Samples(), cm2.Samples()); d != "" {
		t.Errorf("samples differ (-first +second):\n%s", d)
	}
	for i := range Size {
		x := position(i)
		if cm1.Evaluate(x) != cm2.Evaluate(x) {
			t.Errorf("x=%g: %v != %v", x, cm1.Evaluate(x), cm2.Evaluate(x))
		}
	}
}

func TestCustomResolver(t *testing.T) {
	tab := rgb.NewTable(map[string]rgb.Color{
		"floor":   rgb.Gray(0.2),
		"ceiling": rgb.Gray(0.8),
	}, nil)

	cm, err := Build([]string{"floor", "ceiling"}, &Options{Resolver: tab})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rgb.Gray(0.5), cm.Evaluate(0.5), approx); d != "" {
		t.Errorf("x=0.5 (-want +got):\n%s", d)
	}

	_, err = Build([]string{"floor", "red"}, &Options{Resolver: tab})
	if !errors.Is(err, &rgb.InvalidSpecError{}) {
		t.Errorf("expected InvalidSpecError, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	var calls int
	var seen *ColorMap
	r := RendererFunc(func(cm *ColorMap) error {
		calls++
		seen = cm
		return nil
	})

	cm, err := Build([]string{"red", "blue"}, &Options{Preview: r})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || seen != cm {
		t.Errorf("renderer called %d times, with map %p (want %p)", calls, seen, cm)
	}

	// without a renderer nothing is drawn
	calls = 0
	if _, err := Build([]string{"red", "blue"}, nil); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("renderer called %d times", calls)
	}
}

func TestPreviewError(t *testing.T) {
	errNoDisplay := errors.New("no display")
	r := RendererFunc(func(*ColorMap) error { return errNoDisplay })

	cm, err := Build([]string{"red", "blue"}, &Options{Preview: r})
	if !errors.Is(err, errNoDisplay) {
		t.Errorf("expected preview error, got %v", err)
	}
	if cm == nil {
		t.Fatal("colour map missing")
	}
	if d := cmp.Diff(rgb.Color{R: 1}, cm.Evaluate(0)); d != "" {
		t.Errorf("x=0 (-want +got):\n%s", d)
	}
}

func TestName(t *testing.T) {
	cm, err := Build([]string{"k", "w"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Name() != DefaultName {
		t.Errorf("got name %q", cm.Name())
	}

	cm, err = Build([]string{"k", "w"}, &Options{Name: "ramp"})
	if err != nil {
		t.Fatal(err)
	}
	if cm.Name() != "ramp" {
		t.Errorf("got name %q", cm.Name())
	}
}

func TestDefaultColors(t *testing.T) {
	cm, err := Build(DefaultColors, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Len() != 5 {
		t.Fatalf("got %d colours", cm.Len())
	}
	if got := cm.At(0).Hex(); got != "#ffa500" {
		t.Errorf("first colour %s, want orange", got)
	}
	if got := cm.Colors()[2].Hex(); got != "#000000" {
		t.Errorf("middle colour %s, want black", got)
	}
	if got := cm.At(1).Hex(); got != "#add8e6" {
		t.Errorf("last colour %s, want light blue", got)
	}
}
