package prefabs

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/mazeportal/common"
	"gopkg.in/yaml.v3"
)

func TestLoadPortalSpec(t *testing.T) {
	spec, err := LoadPortalSpec()
	if err != nil {
		t.Fatalf("LoadPortalSpec: %v", err)
	}
	if spec.Projectile.Size != 5 || spec.Projectile.Speed != 10 {
		t.Fatalf("projectile = %+v", spec.Projectile)
	}
	if spec.Audio.Channel != 3 || len(spec.Audio.Cues) != 2 {
		t.Fatalf("audio = %+v", spec.Audio)
	}

	cases := []struct {
		name string
		gate GateSpec
		tint color.NRGBA
	}{
		{"blue", spec.Gates.Blue, color.NRGBA{R: 0, G: 255, B: 255, A: 255}},
		{"orange", spec.Gates.Orange, color.NRGBA{R: 255, G: 128, B: 0, A: 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rects := c.gate.Rects()
			if len(rects) != 7 {
				t.Fatalf("frames = %d, want 7", len(rects))
			}
			if rects[6] != image.Rect(0, 64, 32, 96) {
				t.Fatalf("last frame = %v", rects[6])
			}
			if c.gate.Interval() != 250*time.Millisecond {
				t.Fatalf("interval = %v", c.gate.Interval())
			}
			if got := c.gate.Tint.ColorOr(nil); got != c.tint {
				t.Fatalf("tint = %v, want %v", got, c.tint)
			}
		})
	}
}

func TestLoadActorsSpec(t *testing.T) {
	spec, err := LoadActorsSpec()
	if err != nil {
		t.Fatalf("LoadActorsSpec: %v", err)
	}
	if spec.Player.Speed <= 0 || spec.Ghosts.Speed <= 0 {
		t.Fatalf("speeds must be positive: %+v", spec)
	}
	if spec.Player.Facing != common.Left || spec.Ghosts.Facing != common.Up {
		t.Fatalf("facing = %v/%v, want left/up", spec.Player.Facing, spec.Ghosts.Facing)
	}
	if len(spec.Ghosts.Colors) != 4 {
		t.Fatalf("ghost colors = %d, want 4", len(spec.Ghosts.Colors))
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, false},
		{`"00ffff80"`, color.NRGBA{R: 0, G: 255, B: 255, A: 128}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`"#gg0000"`, color.NRGBA{}, true},
		{`[1, 2, 3]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr && got.Color != c.want {
				t.Fatalf("color = %v, want %v", got.Color, c.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.ColorOr(color.White) != color.White {
		t.Fatalf("nil YAMLColor should fall back")
	}
}

func TestGateSpecDefaults(t *testing.T) {
	var g GateSpec
	if g.Interval() != 250*time.Millisecond {
		t.Fatalf("default interval = %v", g.Interval())
	}
	if len(g.Rects()) != 0 {
		t.Fatalf("no frames expected")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if _, ok := ModTime(PortalFile); ok {
		t.Fatalf("no disk copy yet")
	}

	override := "projectile:\n  size: 8\n  speed: 4\n"
	if err := os.WriteFile(filepath.Join(dir, PortalFile), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPortalSpec()
	if err != nil {
		t.Fatalf("LoadPortalSpec: %v", err)
	}
	if spec.Projectile.Size != 8 || spec.Projectile.Speed != 4 {
		t.Fatalf("disk override ignored: %+v", spec.Projectile)
	}
	if _, ok := ModTime("prefabs/" + PortalFile); !ok {
		t.Fatalf("ModTime should see the disk copy")
	}

	if err := os.WriteFile(filepath.Join(dir, ActorsFile), []byte("player: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadActorsSpec(); err == nil {
		t.Fatalf("malformed yaml should fail")
	}

	if _, err := LoadSpec[PortalSpec]("missing.yaml"); err == nil {
		t.Fatalf("missing prefab should fail")
	}
}

func TestActorsSpecRejectsBadFacing(t *testing.T) {
	var spec ActorsSpec
	err := yaml.Unmarshal([]byte("player:\n  facing: sideways\n"), &spec)
	if err == nil {
		t.Fatalf("unknown facing decoded as %v", spec.Player.Facing)
	}
}
