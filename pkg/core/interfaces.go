package core

import (
	"math/rand"

	"github.com/asvard/gotrace/pkg/vec"
)

// Object is the capability every hittable scene element implements:
// geometry primitives, transform wrappers, groups and the BVH all satisfy
// it uniformly so the integrator never needs to know which kind it holds.
type Object interface {
	// Hit tests the ray against the object within rayT, returning the
	// closest hit record if any. rnd is the caller's thread-local
	// generator; only ConstantMedium consumes it (a Poisson free-path
	// draw), but it is threaded through every Object uniformly so no
	// geometry ever touches a shared, non-thread-safe generator.
	Hit(r vec.Ray, rayT vec.Interval, rnd *rand.Rand) (HitRecord, bool)
	// BoundingBox returns the object's world-space AABB.
	BoundingBox() AABB
}

// Material exposes the two behaviors of a surface shader. Either may be a
// no-op: a pure emitter never scatters, a pure reflector never emits.
type Material interface {
	// Scatter proposes a continuation ray and its attenuation for an
	// incoming ray hitting h. The rnd source is caller-owned so callers
	// control thread-local randomness.
	Scatter(rIn vec.Ray, h HitRecord, rnd *rand.Rand) (ScatterRecord, bool)
	// Emitted returns the radiance a material emits at a hit, independent
	// of any scatter. Materials that never emit return a black color.
	Emitted(rIn vec.Ray, h HitRecord) vec.Color
}

// Texture supplies a spatially-varying color for a surface or volume point.
type Texture interface {
	Value(uv vec.Vec2, p vec.Point3) vec.Color
}

// Background supplies radiance for rays that escape the scene, given the
// ray's unit direction.
type Background interface {
	Sample(unitDir vec.Vec3) vec.Color
}

// Scene bundles everything the integrator needs: the camera, the (usually
// BVH-accelerated) world object, and the background sampled on a miss.
type Scene struct {
	Camera     Camera
	World      Object
	Background Background
}

// Camera is the minimal capability the integrator needs from a camera:
// produce a ray for a given pixel.
type Camera interface {
	GetRay(i, j int, rnd *rand.Rand) vec.Ray
}
