package render

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeTexture struct {
	name   string
	width  int
	height int
}

func (t *fakeTexture) Size() (int, int) { return t.width, t.height }

type fakeTarget struct {
	name     string
	width    int
	height   int
	color    *fakeTexture
	released bool
}

func (t *fakeTarget) Name() string { return t.name }
func (t *fakeTarget) Size() (int, int) { return t.width, t.height }
func (t *fakeTarget) ColorTexture() Texture { return t.color }

type fakeGeometry struct {
	layout   Layout
	count    int
	released bool
}

func (g *fakeGeometry) IndexCount() int { return g.count }

type fakeProgram struct {
	name     string
	uniforms []string
}

func (p *fakeProgram) Name() string { return p.name }
func (p *fakeProgram) Uniforms() []string { return p.uniforms }

type recordedDraw struct {
	program   string
	params    Params
	geometry  *fakeGeometry
	wireframe bool
}

// recordingDevice records every call as a trace entry.
type recordingDevice struct {
	width  int
	height int

	nilTargets bool
	wireframe  bool

	trace      []string
	draws      []recordedDraw
	targets    []*fakeTarget
	geometries []*fakeGeometry
	overlay    []string
}

func newRecordingDevice(width, height int) *recordingDevice {
	return &recordingDevice{width: width, height: height}
}

func (d *recordingDevice) BackBufferSize() (int, int) { return d.width, d.height }

func (d *recordingDevice) Clear(mgl32.Vec4) { d.trace = append(d.trace, "clear") }

func (d *recordingDevice) SetFillMode(wireframe bool) {
	d.wireframe = wireframe
	if wireframe {
		d.trace = append(d.trace, "fill:wireframe")
		return
	}
	d.trace = append(d.trace, "fill:solid")
}

func (d *recordingDevice) SetMirrored(mirrored bool) {
	if mirrored {
		d.trace = append(d.trace, "mirror:on")
		return
	}
	d.trace = append(d.trace, "mirror:off")
}

func (d *recordingDevice) NewRenderTarget(name string, width, height int) (Target, error) {
	d.trace = append(d.trace, "new-target:"+name)
	if d.nilTargets {
		return nil, nil
	}
	t := &fakeTarget{
		name:   name,
		width:  width,
		height: height,
		color:  &fakeTexture{name: name, width: width, height: height},
	}
	d.targets = append(d.targets, t)
	return t, nil
}

func (d *recordingDevice) BindTarget(t Target) error {
	d.trace = append(d.trace, "bind:"+t.Name())
	return nil
}

func (d *recordingDevice) UnbindTarget() { d.trace = append(d.trace, "unbind") }

func (d *recordingDevice) ReleaseTarget(t Target) {
	d.trace = append(d.trace, "release-target:"+t.Name())
	t.(*fakeTarget).released = true
}

func (d *recordingDevice) UploadMesh(layout Layout, vertices []float32, indices []uint32) (Geometry, error) {
	if len(vertices)%layout.Stride() != 0 {
		return nil, fmt.Errorf("vertex data not a multiple of stride %d", layout.Stride())
	}
	names := map[Layout]string{LayoutTerrain: "terrain", LayoutWater: "water", LayoutPosition: "position"}
	d.trace = append(d.trace, "upload:"+names[layout])
	g := &fakeGeometry{layout: layout, count: len(indices)}
	d.geometries = append(d.geometries, g)
	return g, nil
}

func (d *recordingDevice) ReleaseGeometry(g Geometry) {
	g.(*fakeGeometry).released = true
}

func (d *recordingDevice) UploadTexture(img *image.RGBA) (Texture, error) {
	b := img.Bounds()
	return &fakeTexture{name: "uploaded", width: b.Dx(), height: b.Dy()}, nil
}

func (d *recordingDevice) Draw(p Program, params Params, g Geometry) error {
	d.trace = append(d.trace, "draw:"+p.Name())
	d.draws = append(d.draws, recordedDraw{program: p.Name(), params: params, geometry: g.(*fakeGeometry), wireframe: d.wireframe})
	return nil
}

func (d *recordingDevice) DrawOverlay(lines []string) error {
	d.trace = append(d.trace, "overlay")
	d.overlay = lines
	return nil
}

func (d *recordingDevice) Present() { d.trace = append(d.trace, "present") }

func (d *recordingDevice) reset() {
	d.trace = nil
	d.draws = nil
}

func (d *recordingDevice) drawsOf(program string) []recordedDraw {
	var out []recordedDraw
	for _, dr := range d.draws {
		if dr.program == program {
			out = append(out, dr)
		}
	}
	return out
}
