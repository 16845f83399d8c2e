package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/vmath"
)

// sphere is one body queued for painter's ordering
type sphere struct {
	center   vmath.Vec3F
	radius   float64
	depth    float64
	base     RGB
	emissive RGB
	lit      bool
}

// SceneRenderer draws the 3D scene into the viewport
type SceneRenderer struct {
	cam *camera.Camera
	vp  camera.Viewport

	queue []sphere
}

// NewSceneRenderer creates a renderer for cam
func NewSceneRenderer(cam *camera.Camera) *SceneRenderer {
	return &SceneRenderer{cam: cam}
}

// SetViewport sets the target rectangle
func (r *SceneRenderer) SetViewport(vp camera.Viewport) {
	r.vp = vp
}

// Render draws stars, orbit rings, then sun and planets far to near
func (r *SceneRenderer) Render(buf *RenderBuffer, s *scene.Scene) {
	if r.vp.Width <= 0 || r.vp.Height <= 0 {
		return
	}
	r.renderStars(buf, s.Stars)
	for _, ring := range s.Rings {
		r.renderRing(buf, ring)
	}

	r.queue = r.queue[:0]
	if _, _, depth, ok := r.cam.Project(vmath.Vec3F{}); ok {
		r.queue = append(r.queue, sphere{
			radius: s.Sun.Radius,
			depth:  depth,
			base:   s.Sun.Color,
		})
	}
	for _, b := range s.Bodies.All() {
		if _, _, depth, ok := r.cam.Project(b.Position); ok {
			r.queue = append(r.queue, sphere{
				center:   b.Position,
				radius:   b.Size,
				depth:    depth,
				base:     b.Color,
				emissive: b.Emissive,
				lit:      true,
			})
		}
	}

	// Painter's algorithm: sort far to near
	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})
	for i := range r.queue {
		r.renderSphere(buf, &r.queue[i], s.Light)
	}
}

// cell maps NDC to an integer cell, ok false outside the viewport
func (r *SceneRenderer) cell(ndcX, ndcY float64) (int, int, bool) {
	x, y := r.vp.CellAt(ndcX, ndcY)
	return x, y, r.vp.Contains(x, y)
}

func (r *SceneRenderer) renderStars(buf *RenderBuffer, stars *scene.StarField) {
	fg := Blend(RGBBlack, stars.Color, stars.Opacity)
	for _, p := range stars.Points {
		nx, ny, depth, ok := r.cam.Project(p)
		if !ok {
			continue
		}
		x, y, in := r.cell(nx, ny)
		if !in {
			continue
		}
		glyph := parameter.GlyphStar
		// Near stars are large enough to read as brighter points
		if r.cam.ProjectedRadius(stars.Size, depth)*float64(r.vp.Height) > 0.5 {
			glyph = parameter.GlyphStarBright
		}
		buf.SetWithBg(x, y, glyph, fg, RGBBlack)
	}
}

func (r *SceneRenderer) renderRing(buf *RenderBuffer, ring scene.OrbitRing) {
	fg := Blend(RGBBlack, ring.Color, 0.55)
	pts := ring.Points()

	prevX, prevY, prevOK := 0, 0, false
	for _, p := range pts {
		nx, ny, _, ok := r.cam.Project(p)
		if !ok {
			prevOK = false
			continue
		}
		fx, fy := r.vp.FromNDC(nx, ny)
		x, y := int(math.Floor(fx)), int(math.Floor(fy))
		if prevOK {
			r.line(buf, prevX, prevY, x, y, fg)
		}
		prevX, prevY, prevOK = x, y, true
	}
}

// line plots a Bresenham segment, clipped to the viewport
func (r *SceneRenderer) line(buf *RenderBuffer, x0, y0, x1, y1 int, fg RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if r.vp.Contains(x0, y0) {
			buf.SetWithBg(x0, y0, parameter.GlyphRing, fg, RGBBlack)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// renderSphere shades every cell whose center ray hits the sphere
// The cell under the projected center is always drawn, so spheres smaller than a cell stay visible
func (r *SceneRenderer) renderSphere(buf *RenderBuffer, s *sphere, light scene.PointLight) {
	nx, ny, _, _ := r.cam.Project(s.center)
	cx, cy := r.vp.FromNDC(nx, ny)
	centerX, centerY := r.vp.CellAt(nx, ny)

	ry := r.cam.ProjectedRadius(s.radius, s.depth) / 2 * float64(r.vp.Height)
	rx := ry / r.cam.Aspect * float64(r.vp.Width) / float64(r.vp.Height)

	minX := max(r.vp.X, int(math.Floor(cx-rx))-1)
	maxX := min(r.vp.X+r.vp.Width-1, int(math.Ceil(cx+rx))+1)
	minY := max(r.vp.Y, int(math.Floor(cy-ry))-1)
	maxY := min(r.vp.Y+r.vp.Height-1, int(math.Ceil(cy+ry))+1)

	centerDrawn := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			ndcX, ndcY := r.vp.ToNDC(x, y)
			ray := r.cam.Ray(ndcX, ndcY)
			t, hit := vmath.RaySphere(ray, s.center, s.radius)
			if !hit {
				continue
			}
			buf.SetWithBg(x, y, ' ', RGBWhite, r.shade(s, ray.At(t), light))
			if x == centerX && y == centerY {
				centerDrawn = true
			}
		}
	}

	if !centerDrawn && r.vp.Contains(centerX, centerY) {
		// Shade the point facing the camera
		facing := vmath.V3FAdd(s.center, vmath.V3FScale(vmath.V3FNormalize(vmath.V3FSub(r.cam.Position, s.center)), s.radius))
		buf.SetWithBg(centerX, centerY, parameter.GlyphBody, r.shade(s, facing, light), RGBBlack)
	}
}

// shade returns the flat color for unlit bodies, Lambert diffuse plus emissive otherwise
func (r *SceneRenderer) shade(s *sphere, p vmath.Vec3F, light scene.PointLight) RGB {
	if !s.lit {
		return s.base
	}
	normal := vmath.V3FNormalize(vmath.V3FSub(p, s.center))
	toLight := vmath.V3FSub(light.Position, p)
	dist := vmath.V3FMag(toLight)

	diffuse := vmath.V3FDot(normal, vmath.V3FNormalize(toLight))
	if diffuse < 0 {
		diffuse = 0
	}
	atten := 1.0
	if light.Distance > 0 {
		atten = math.Max(0, 1-dist/light.Distance)
	}
	return Lit(s.base, s.emissive, diffuse*light.Intensity*atten)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
