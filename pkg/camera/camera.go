// Package camera implements the pinhole/thin-lens camera that turns a pixel
// coordinate into a sampled world-space ray.
package camera

import (
	"math"
	"math/rand"

	"github.com/asvard/gotrace/pkg/vec"
)

// Config collects the construction parameters for a Camera.
type Config struct {
	ImageWidth      int
	ImageHeight     int
	VFov            float64 // vertical field of view, degrees
	LookFrom        vec.Point3
	LookAt          vec.Point3
	Vup             vec.Vec3
	DefocusAngle    float64 // degrees; <= 0 disables depth of field
	FocusDist       float64
	SamplesPerPixel int
	MaxDepth        int
}

// Camera generates rays for pixel (i, j) given Config, including defocus-disk
// origin sampling and a uniform shutter-time sample for motion blur.
type Camera struct {
	cfg Config

	origin          vec.Point3
	pixelUpperLeft  vec.Point3
	pixelDeltaU     vec.Vec3
	pixelDeltaV     vec.Vec3
	u, v, w         vec.Vec3
	defocusDiskU    vec.Vec3
	defocusDiskV    vec.Vec3
	defocusDisabled bool
}

// New builds a Camera from cfg, deriving the viewport basis, pixel deltas,
// and defocus-disk basis once up front.
func New(cfg Config) *Camera {
	c := &Camera{cfg: cfg, origin: cfg.LookFrom}

	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(cfg.ImageHeight))

	c.w = cfg.LookFrom.Sub(cfg.LookAt).Unit()
	c.u = cfg.Vup.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Mul(viewportWidth)
	viewportV := c.v.Neg().Mul(viewportHeight)

	c.pixelDeltaU = viewportU.Div(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Div(float64(cfg.ImageHeight))

	viewportUpperLeft := cfg.LookFrom.
		Sub(c.w.Mul(cfg.FocusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.pixelUpperLeft = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Mul(0.5))

	c.defocusDisabled = cfg.DefocusAngle <= 0
	defocusRadius := cfg.FocusDist * math.Tan(cfg.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Mul(defocusRadius)
	c.defocusDiskV = c.v.Mul(defocusRadius)

	return c
}

// GetRay implements core.Camera: samples a jittered pixel point, a defocus
// origin, and a shutter time, returning the resulting ray.
func (c *Camera) GetRay(i, j int, rnd *rand.Rand) vec.Ray {
	offset := sampleSquare(rnd)

	pixelSample := c.pixelUpperLeft.
		Add(c.pixelDeltaU.Mul(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Mul(float64(j) + offset.Y))

	origin := c.origin
	if !c.defocusDisabled {
		origin = c.defocusDiskSample(rnd)
	}
	direction := pixelSample.Sub(origin)
	time := rnd.Float64()

	return vec.NewRayAt(origin, direction, time)
}

// sampleSquare returns a uniform offset in [-0.5, +0.5]^2; u and v each get
// their own independent jitter component rather than reusing offset.X for
// both.
func sampleSquare(rnd *rand.Rand) vec.Vec2 {
	return vec.NewVec2(rnd.Float64()-0.5, rnd.Float64()-0.5)
}

func (c *Camera) defocusDiskSample(rnd *rand.Rand) vec.Point3 {
	p := vec.RandomInUnitDisk(rnd)
	return c.origin.Add(c.defocusDiskU.Mul(p.X)).Add(c.defocusDiskV.Mul(p.Y))
}

// SamplesPerPixel returns the configured sample count.
func (c *Camera) SamplesPerPixel() int { return c.cfg.SamplesPerPixel }

// MaxDepth returns the configured recursion depth.
func (c *Camera) MaxDepth() int { return c.cfg.MaxDepth }

// ImageWidth returns the configured image width in pixels.
func (c *Camera) ImageWidth() int { return c.cfg.ImageWidth }

// ImageHeight returns the configured image height in pixels.
func (c *Camera) ImageHeight() int { return c.cfg.ImageHeight }
