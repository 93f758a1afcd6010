package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/engine/framebuffer"
	"github.com/Faultbox/supersphere/internal/engine/renderer"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/viewer"
)

const panelWidth = 300

var sceneClear = [4]float32{0, 0, 0, 1}

// Panel draws the parameter controls and the scene image.
type Panel struct {
	viewer   *viewer.Viewer
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	form     Form
	unbind   func()
	log      *zap.Logger
}

// NewPanel creates a panel drawing v through r. The GL context must exist.
func NewPanel(v *viewer.Viewer, r *renderer.Renderer) (*Panel, error) {
	width, height := v.Viewport.Size()
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create scene framebuffer: %w", err)
	}

	p := &Panel{
		viewer:   v,
		renderer: r,
		fb:       fb,
		log:      logger.Named("panel"),
	}
	p.unbind = p.form.Bind(v.Store)
	return p, nil
}

// Render draws one ImGui frame. It is the backend run callback.
func (p *Panel) Render() {
	p.viewer.Update()

	pos, size := WorkArea()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Parameters", nil, flags) {
		p.renderPresets()
		imgui.Separator()
		p.renderTextures()
		imgui.Separator()
		p.renderSliders()
		imgui.Separator()
		p.renderStats()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	if imgui.BeginV("Scene", nil, flags) {
		p.renderScene()
	}
	imgui.End()
}

func (p *Panel) renderPresets() {
	imgui.Text("Presets")
	for i, name := range p.viewer.Store.ListPresetNames() {
		if i%3 != 0 {
			imgui.SameLine()
		}
		if imgui.Button(name) {
			p.viewer.Store.SelectPreset(name)
			p.log.Debug("preset selected", zap.String("preset", name))
		}
	}
}

func (p *Panel) renderTextures() {
	imgui.Text("Texture")
	for i, name := range p.viewer.Textures() {
		if i%3 != 0 {
			imgui.SameLine()
		}
		label := name
		if name == p.form.Texture {
			label = "[" + name + "]"
		}
		if imgui.Button(label + "##" + name) {
			p.viewer.SelectTexture(name)
		}
	}
}

func (p *Panel) renderSliders() {
	f := &p.form
	changed := false

	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderIntV("##Vertices", &f.Vertices, 0, MaxVertices, "vertices %d", imgui.SliderFlagsNone) || changed
	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderFloatV("##Speed", &f.Speed, 0, MaxSpeed, "speed %.2f", imgui.SliderFlagsNone) || changed
	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderFloatV("##NoiseFrequency", &f.NoiseFrequency, 0, MaxNoiseFrequency, "frequency %.2f", imgui.SliderFlagsNone) || changed
	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderFloatV("##NoiseAmplitude", &f.NoiseAmplitude, 0, MaxNoiseAmplitude, "amplitude %.2f", imgui.SliderFlagsNone) || changed
	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderFloatV("##RotationSpeed", &f.RotationSpeed, 0, MaxRotationSpeed, "rotation %.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.ColorEdit3("Color", &f.Color) || changed

	if changed {
		f.Commit(p.viewer.Store)
	}
}

func (p *Panel) renderStats() {
	state := p.viewer.Loop.State()
	imgui.Text(fmt.Sprintf("%.0f fps", p.viewer.Clock.FPS()))
	if mesh := p.viewer.Mesh(); mesh != nil {
		imgui.Text(fmt.Sprintf("detail %d, %d triangles", mesh.Detail, mesh.TriangleCount()))
	} else {
		imgui.TextDisabled("building mesh...")
	}
	imgui.Text(fmt.Sprintf("elapsed %.2f", state.Elapsed))
	imgui.TextDisabled(fmt.Sprintf("seed %.2f", p.viewer.Loop.Seed()))
}

func (p *Panel) renderScene() {
	avail := imgui.ContentRegionAvail()
	width, height := int(avail.X), int(avail.Y)
	if width <= 0 || height <= 0 {
		return
	}

	p.fb.Resize(width, height)
	p.viewer.Resize(width, height)

	v := p.viewer
	p.fb.Pass(sceneClear, func() {
		p.renderer.Render(v.Mesh(), v.Material, v.Model(), v.Viewport.View(), v.Viewport.Projection())
		p.renderer.End()
	})

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(p.fb.ColorTexture()))
	// Flip V since GL textures start at the bottom.
	imgui.ImageWithBgV(
		*texRef,
		avail,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// Close stops following the store and releases the scene framebuffer.
func (p *Panel) Close() {
	if p.unbind != nil {
		p.unbind()
		p.unbind = nil
	}
	if p.fb != nil {
		p.fb.Destroy()
		p.fb = nil
	}
}
