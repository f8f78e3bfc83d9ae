package optics

import (
	"math"
	"testing"
)

// Big enough that the fits-on-canvas check never trips; used when a test only
// cares about the angle domain.
const hugeCanvas = 10_000_000

func lycopodiumParams() Parameters {
	return Parameters{
		WavelengthNm:   650,
		DistanceCm:     100,
		ParticleSizeUm: 30,
		Material:       Lycopodium,
		Zoom:           1.0,
	}
}

func TestComputeRingsWorkedExample(t *testing.T) {
	rings := ComputeRings(lycopodiumParams(), 4000, 800, 400)

	// sinTheta(1) ~ 0.02167, radius ~ 0.02167 m, pixel ~ 86.7. Orders 1 and 2
	// fit inside the 200 px half-height; order 3 lands at ~260 px and is cut.
	if len(rings) != 2 {
		t.Fatalf("expected 2 rings on an 800x400 canvas, got %d", len(rings))
	}
	if rings[0].Order != 1 || rings[1].Order != 2 {
		t.Errorf("expected orders 1,2, got %d,%d", rings[0].Order, rings[1].Order)
	}
	if math.Abs(rings[0].PixelRadius-86.7) > 0.1 {
		t.Errorf("expected first ring at ~86.7 px, got %.3f", rings[0].PixelRadius)
	}
	if math.Abs(rings[0].SinTheta-650e-9/30e-6) > 1e-12 {
		t.Errorf("unexpected sinTheta %.6g", rings[0].SinTheta)
	}
}

func TestComputeRingsAllOrdersCandidates(t *testing.T) {
	// 10 * 650e-9 / 30e-6 ~ 0.217 < 1, so every order has a real angle.
	rings := ComputeRings(lycopodiumParams(), 4000, hugeCanvas, hugeCanvas)
	if len(rings) != MaxOrder {
		t.Fatalf("expected %d rings on an unbounded canvas, got %d", MaxOrder, len(rings))
	}
	for i, r := range rings {
		if r.Order != i+1 {
			t.Errorf("ring %d: expected order %d, got %d", i, i+1, r.Order)
		}
	}
}

func TestComputeRingsSkipsBeyondNinetyDegrees(t *testing.T) {
	// 1 um particles: sinTheta(m) = m * 0.65, so only m=1 has a real angle.
	p := lycopodiumParams()
	p.Material = Custom
	p.ParticleSizeUm = 1

	rings := ComputeRings(p, 4000, hugeCanvas, hugeCanvas)
	if len(rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(rings))
	}
	if rings[0].Order != 1 {
		t.Errorf("expected order 1, got %d", rings[0].Order)
	}
}

func TestComputeRingsMonotonicRadii(t *testing.T) {
	rings := ComputeRings(lycopodiumParams(), 4000, hugeCanvas, hugeCanvas)
	if len(rings) < 3 {
		t.Fatalf("need at least 3 rings, got %d", len(rings))
	}
	for i := 1; i < len(rings); i++ {
		if rings[i].PixelRadius < rings[i-1].PixelRadius {
			t.Errorf("radius decreased between orders %d and %d: %.3f -> %.3f",
				rings[i-1].Order, rings[i].Order, rings[i-1].PixelRadius, rings[i].PixelRadius)
		}
	}
}

func TestComputeRingsZoomScalesLinearly(t *testing.T) {
	p := lycopodiumParams()
	base := ComputeRings(p, 4000, hugeCanvas, hugeCanvas)

	p.Zoom = 2.0
	zoomed := ComputeRings(p, 4000, hugeCanvas, hugeCanvas)

	if len(base) != len(zoomed) {
		t.Fatalf("ring count changed under zoom: %d vs %d", len(base), len(zoomed))
	}
	for i := range base {
		want := base[i].PixelRadius * 2
		if math.Abs(zoomed[i].PixelRadius-want) > 1e-9 {
			t.Errorf("order %d: expected %.6f, got %.6f", base[i].Order, want, zoomed[i].PixelRadius)
		}
	}
}

func TestComputeRingsOffCanvasSkip(t *testing.T) {
	// At zoom 5 even the first ring lands at ~433 px, past the 200 px limit.
	p := lycopodiumParams()
	p.Zoom = 5.0

	rings := ComputeRings(p, 4000, 800, 400)
	if len(rings) != 0 {
		t.Errorf("expected no rings at zoom 5 on an 800x400 canvas, got %d", len(rings))
	}
}

func TestComputeRingsNaNInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"nan wavelength", func(p *Parameters) { p.WavelengthNm = math.NaN() }},
		{"nan distance", func(p *Parameters) { p.DistanceCm = math.NaN() }},
		{"nan size", func(p *Parameters) { p.ParticleSizeUm = math.NaN() }},
		{"zero size", func(p *Parameters) { p.ParticleSizeUm = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lycopodiumParams()
			tt.mutate(&p)
			rings := ComputeRings(p, 4000, 800, 400)
			if len(rings) != 0 {
				t.Errorf("expected rings to vanish silently, got %d", len(rings))
			}
		})
	}
}

func TestComputeRingsDeterministic(t *testing.T) {
	p := lycopodiumParams()
	a := ComputeRings(p, 4000, 800, 400)
	b := ComputeRings(p, 4000, 800, 400)

	if len(a) != len(b) {
		t.Fatalf("ring counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("ring %d differs between identical calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}
