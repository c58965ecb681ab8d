package escape

import (
	"errors"
	"math"
	"testing"
)

func TestRegion_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr error
	}{
		{in: "classic", want: Classic},
		{in: "Seahorse-Valley", want: Landmarks["seahorse-valley"]},
		{in: "-2,1,-1.5,1.5", want: Classic},
		{in: " -0.5, 0.5 ,-0.25,0.25 ", want: Region{XMin: -0.5, XMax: 0.5, YMin: -0.25, YMax: 0.25}},
		{in: "1,0,0,1", wantErr: ErrInvalidRegion},
		{in: "0,1,1,1", wantErr: ErrInvalidRegion},
		{in: "nowhere", wantErr: ErrUnknownRegion},
		{in: "0,1,2", wantErr: ErrUnknownRegion},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			r := Region{XMin: 9, XMax: 10, YMin: 9, YMax: 10}
			err := r.Set(tc.in)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Set(%q) error = %v, want %v", tc.in, err, tc.wantErr)
				}
				if r.XMin != 9 {
					t.Errorf("Set(%q) modified region on failure: %+v", tc.in, r)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q): %v", tc.in, err)
			}
			if r != tc.want {
				t.Errorf("Set(%q) = %+v, want %+v", tc.in, r, tc.want)
			}
		})
	}
}

func TestRegion_SetBadNumber(t *testing.T) {
	var r Region
	if err := r.Set("a,1,0,1"); err == nil {
		t.Error("Set accepted a non-numeric bound")
	}
}

func TestRegion_StringRoundTrip(t *testing.T) {
	for _, name := range LandmarkNames() {
		want := Landmarks[name]

		var got Region
		if err := got.Set(want.String()); err != nil {
			t.Fatalf("%s: Set(%q): %v", name, want.String(), err)
		}
		if got != want {
			t.Errorf("%s: round trip gave %+v, want %+v", name, got, want)
		}
	}
}

func TestRegion_Validate(t *testing.T) {
	for name, r := range Landmarks {
		if err := r.Validate(); err != nil {
			t.Errorf("landmark %s: %v", name, err)
		}
	}

	invalid := []Region{
		{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1},
		{XMin: 0, XMax: 1, YMin: 0, YMax: math.NaN()},
		{XMin: -math.MaxFloat64, XMax: math.MaxFloat64, YMin: 0, YMax: 1},
		{XMin: 0, XMax: 0, YMin: 0, YMax: 1},
	}
	for _, r := range invalid {
		if err := r.Validate(); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidRegion", r, err)
		}
	}
}

func TestRegion_Contains(t *testing.T) {
	r := Classic
	if !r.Contains(complex(-2, -1.5)) {
		t.Error("lower bounds are inside")
	}
	if r.Contains(complex(1, 0)) || r.Contains(complex(0, 1.5)) {
		t.Error("upper bounds are outside")
	}
}
