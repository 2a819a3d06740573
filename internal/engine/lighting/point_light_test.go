package lighting

import (
	"testing"

	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"overhead", 0, 90, math.Vec3{X: 0, Y: 1, Z: 0}},
		{"horizon north", 0, 0, math.Vec3{X: 0, Y: 0, Z: 1}},
		{"horizon east", 90, 0, math.Vec3{X: 1, Y: 0, Z: 0}},
	}

	const eps = 1e-5
	for _, tt := range tests {
		got := SunDirection(tt.lon, tt.lat)
		if abs(got.X-tt.want.X) > eps || abs(got.Y-tt.want.Y) > eps || abs(got.Z-tt.want.Z) > eps {
			t.Errorf("%s: SunDirection(%v, %v) = %v, want %v", tt.name, tt.lon, tt.lat, got, tt.want)
		}
	}
}

func TestBufferTruncation(t *testing.T) {
	b := NewBuffer()
	lights := make([]PointLight, MaxPointLights+4)
	b.Set(lights)
	if b.Count != MaxPointLights {
		t.Errorf("Count = %d, want %d", b.Count, MaxPointLights)
	}

	b.Clear()
	if b.Count != 0 || len(b.Lights) != 0 {
		t.Errorf("Clear left %d lights", len(b.Lights))
	}

	for i := 0; i < MaxPointLights; i++ {
		if !b.Add(PointLight{}) {
			t.Fatalf("Add failed at %d", i)
		}
	}
	if b.Add(PointLight{}) {
		t.Error("Add succeeded past MaxPointLights")
	}
}

func TestGatherEmissive(t *testing.T) {
	root := scene.NewNode("root")

	plain := scene.NewNode("plain")
	plain.Material = material.New("hull", material.Gray(0.5))
	root.AddChild(plain)

	glow := scene.NewNode("glow")
	c := material.RGB(0.25, 1, 0.5)
	glow.Material = material.NewEmissive("cell", c, c, 2)
	glow.Position = math.Vec3{X: 3, Y: 1, Z: -2}
	root.AddChild(glow)

	lights := GatherEmissive(root, 5)
	if len(lights) != 1 {
		t.Fatalf("len(lights) = %d, want 1", len(lights))
	}
	l := lights[0]
	if l.Position != glow.Position {
		t.Errorf("light position = %v, want %v", l.Position, glow.Position)
	}
	if l.Range != 10 {
		t.Errorf("light range = %v, want 10", l.Range)
	}
	if l.Intensity != 2 {
		t.Errorf("light intensity = %v, want 2", l.Intensity)
	}
}

func TestGatherEmissiveNilRoot(t *testing.T) {
	if got := GatherEmissive(nil, 5); got != nil {
		t.Errorf("GatherEmissive(nil) = %v, want nil", got)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
