// Package sceneio is the declarative scene-document loader: the external
// collaborator that parses a YAML scene description, resolves named
// textures and materials, and hands the rendering core fully-constructed
// objects through its core.Scene/core.Object/core.Material/core.Texture
// interfaces. The core never parses text nor touches the filesystem itself.
package sceneio

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/asvard/gotrace/pkg/background"
	"github.com/asvard/gotrace/pkg/camera"
	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/expr"
	"github.com/asvard/gotrace/pkg/geometry"
	"github.com/asvard/gotrace/pkg/imageio"
	"github.com/asvard/gotrace/pkg/material"
	"github.com/asvard/gotrace/pkg/texture"
	"github.com/asvard/gotrace/pkg/vec"
)

// node is a single YAML mapping node, decoded generically so World/Textures/
// Materials entries can reference each other before any of them is built.
type node map[string]interface{}

type document struct {
	Camera     cameraSpec       `yaml:"camera"`
	Textures   map[string]node  `yaml:"textures"`
	Materials  map[string]node  `yaml:"materials"`
	World      []node           `yaml:"world"`
	Background *node            `yaml:"background"`
}

type cameraSpec struct {
	ImageWidth      int       `yaml:"image_width"`
	ImageHeight     int       `yaml:"image_height"`
	VFov            float64   `yaml:"vfov"`
	LookFrom        []float64 `yaml:"look_from"`
	LookAt          []float64 `yaml:"look_at"`
	Vup             []float64 `yaml:"vup"`
	DefocusAngle    float64   `yaml:"defocus_angle"`
	FocusDist       float64   `yaml:"focus_dist"`
	SamplesPerPixel int       `yaml:"samples_per_pixel"`
	MaxDepth        int       `yaml:"max_depth"`
}

// Loaded bundles the fully-constructed scene with the rendering parameters
// the dispatcher and integrator need but the core.Scene type doesn't carry.
type Loaded struct {
	Scene           core.Scene
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int
}

// loader resolves named textures and materials on demand, memoizing each by
// name so a texture referenced by several materials is built once and
// shared, matching the core's shared-ownership model.
type loader struct {
	doc       document
	baseDir   string
	textures  map[string]core.Texture
	materials map[string]core.Material
	building  map[string]bool // texture cycle guard, keyed "texture:name"
}

// Load reads and resolves the scene document at path.
func Load(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: read %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parse %s: %w", path, err)
	}

	l := &loader{
		doc:       doc,
		baseDir:   filepath.Dir(path),
		textures:  map[string]core.Texture{},
		materials: map[string]core.Material{},
		building:  map[string]bool{},
	}

	cam, err := l.buildCamera()
	if err != nil {
		return nil, err
	}

	worldObjects := make([]core.Object, 0, len(doc.World))
	for i, n := range doc.World {
		obj, err := l.buildObject(n)
		if err != nil {
			return nil, fmt.Errorf("sceneio: world[%d]: %w", i, err)
		}
		worldObjects = append(worldObjects, obj)
	}
	world := geometry.NewBVH(worldObjects)

	bg, err := l.buildBackgroundRoot()
	if err != nil {
		return nil, err
	}

	return &Loaded{
		Scene: core.Scene{
			Camera:     cam,
			World:      world,
			Background: bg,
		},
		ImageWidth:      doc.Camera.ImageWidth,
		ImageHeight:     doc.Camera.ImageHeight,
		SamplesPerPixel: doc.Camera.SamplesPerPixel,
		MaxDepth:        doc.Camera.MaxDepth,
	}, nil
}

func (l *loader) buildCamera() (core.Camera, error) {
	c := l.doc.Camera
	lookFrom, err := vec3From(c.LookFrom, "camera.look_from")
	if err != nil {
		return nil, err
	}
	lookAt, err := vec3From(c.LookAt, "camera.look_at")
	if err != nil {
		return nil, err
	}
	vup, err := vec3From(c.Vup, "camera.vup")
	if err != nil {
		return nil, err
	}
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 {
		return nil, fmt.Errorf("sceneio: camera.image_width/image_height must be positive")
	}
	return camera.New(camera.Config{
		ImageWidth:      c.ImageWidth,
		ImageHeight:     c.ImageHeight,
		VFov:            c.VFov,
		LookFrom:        lookFrom,
		LookAt:          lookAt,
		Vup:             vup,
		DefocusAngle:    c.DefocusAngle,
		FocusDist:       c.FocusDist,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
	}), nil
}

func (l *loader) buildBackgroundRoot() (core.Background, error) {
	if l.doc.Background == nil {
		return background.NewSolid(vec.Color{}), nil
	}
	return l.buildBackground(*l.doc.Background)
}

// texture resolves a named texture, building and memoizing it on first use.
func (l *loader) texture(name string) (core.Texture, error) {
	if tex, ok := l.textures[name]; ok {
		return tex, nil
	}
	key := "texture:" + name
	if l.building[key] {
		return nil, fmt.Errorf("sceneio: cyclic texture reference at %q", name)
	}
	n, ok := l.doc.Textures[name]
	if !ok {
		return nil, fmt.Errorf("sceneio: undefined texture %q", name)
	}
	l.building[key] = true
	tex, err := l.buildTexture(n)
	delete(l.building, key)
	if err != nil {
		return nil, fmt.Errorf("sceneio: texture %q: %w", name, err)
	}
	l.textures[name] = tex
	return tex, nil
}

func (l *loader) buildTexture(n node) (core.Texture, error) {
	kind, err := stringField(n, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "solid":
		c, err := vecField(n, "color")
		if err != nil {
			return nil, err
		}
		return texture.NewSolidColor(c), nil

	case "checker":
		scale, err := floatField(n, "scale")
		if err != nil {
			return nil, err
		}
		even, err := l.textureRefField(n, "even")
		if err != nil {
			return nil, err
		}
		odd, err := l.textureRefField(n, "odd")
		if err != nil {
			return nil, err
		}
		return texture.NewChecker(scale, even, odd), nil

	case "noise":
		scale, err := floatField(n, "scale")
		if err != nil {
			return nil, err
		}
		depth := intFieldOr(n, "depth", 0)
		return texture.NewNoise(scale, depth), nil

	case "procedural":
		r, err := stringField(n, "r")
		if err != nil {
			return nil, err
		}
		g, err := stringField(n, "g")
		if err != nil {
			return nil, err
		}
		b, err := stringField(n, "b")
		if err != nil {
			return nil, err
		}
		ce, err := expr.CompileColor(r, g, b)
		if err != nil {
			return nil, err
		}
		return texture.NewProcedural(ce), nil

	case "image":
		file, err := stringField(n, "file")
		if err != nil {
			return nil, err
		}
		img, err := imageio.Load(filepath.Join(l.baseDir, file))
		if err != nil {
			return nil, err
		}
		return img, nil

	default:
		return nil, fmt.Errorf("unknown texture type %q", kind)
	}
}

// textureRefField resolves a field naming another texture by name.
func (l *loader) textureRefField(n node, field string) (core.Texture, error) {
	name, err := stringField(n, field)
	if err != nil {
		return nil, err
	}
	return l.texture(name)
}

func (l *loader) material(name string) (core.Material, error) {
	if mat, ok := l.materials[name]; ok {
		return mat, nil
	}
	n, ok := l.doc.Materials[name]
	if !ok {
		return nil, fmt.Errorf("sceneio: undefined material %q", name)
	}
	mat, err := l.buildMaterial(n)
	if err != nil {
		return nil, fmt.Errorf("sceneio: material %q: %w", name, err)
	}
	l.materials[name] = mat
	return mat, nil
}

func (l *loader) buildMaterial(n node) (core.Material, error) {
	kind, err := stringField(n, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "lambertian":
		tex, err := l.textureRefField(n, "texture")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(tex), nil

	case "metal":
		tex, err := l.textureRefField(n, "texture")
		if err != nil {
			return nil, err
		}
		fuzz := floatFieldOr(n, "fuzz", 0)
		return material.NewMetal(tex, fuzz), nil

	case "dielectric":
		ri, err := floatField(n, "refraction_index")
		if err != nil {
			return nil, err
		}
		return material.NewDielectric(ri), nil

	case "diffuse_light":
		tex, err := l.textureRefField(n, "texture")
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLight(tex), nil

	case "isotropic":
		tex, err := l.textureRefField(n, "texture")
		if err != nil {
			return nil, err
		}
		return material.NewIsotropic(tex), nil

	default:
		return nil, fmt.Errorf("unknown material type %q", kind)
	}
}

func (l *loader) materialRefField(n node, field string) (core.Material, error) {
	name, err := stringField(n, field)
	if err != nil {
		return nil, err
	}
	return l.material(name)
}

// buildObject recursively constructs a core.Object from a world-tree node.
func (l *loader) buildObject(n node) (core.Object, error) {
	kind, err := stringField(n, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "sphere":
		center, err := vecField(n, "center")
		if err != nil {
			return nil, err
		}
		radius, err := floatField(n, "radius")
		if err != nil {
			return nil, err
		}
		mat, err := l.materialRefField(n, "material")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, radius, mat), nil

	case "moving_sphere":
		c1, err := vecField(n, "center1")
		if err != nil {
			return nil, err
		}
		c2, err := vecField(n, "center2")
		if err != nil {
			return nil, err
		}
		radius, err := floatField(n, "radius")
		if err != nil {
			return nil, err
		}
		mat, err := l.materialRefField(n, "material")
		if err != nil {
			return nil, err
		}
		return geometry.NewMovingSphere(c1, c2, radius, mat), nil

	case "quad":
		q, err := vecField(n, "q")
		if err != nil {
			return nil, err
		}
		u, err := vecField(n, "u")
		if err != nil {
			return nil, err
		}
		v, err := vecField(n, "v")
		if err != nil {
			return nil, err
		}
		mat, err := l.materialRefField(n, "material")
		if err != nil {
			return nil, err
		}
		return geometry.NewQuad(q, u, v, mat), nil

	case "box":
		a, err := vecField(n, "a")
		if err != nil {
			return nil, err
		}
		b, err := vecField(n, "b")
		if err != nil {
			return nil, err
		}
		mat, err := l.materialRefField(n, "material")
		if err != nil {
			return nil, err
		}
		return geometry.NewBox(a, b, mat), nil

	case "translate":
		offset, err := vecField(n, "offset")
		if err != nil {
			return nil, err
		}
		child, err := l.objectRefField(n, "object")
		if err != nil {
			return nil, err
		}
		return geometry.NewTranslate(child, offset), nil

	case "rotate_y":
		angle, err := floatField(n, "angle")
		if err != nil {
			return nil, err
		}
		child, err := l.objectRefField(n, "object")
		if err != nil {
			return nil, err
		}
		return geometry.NewRotateY(child, angle), nil

	case "constant_medium":
		density, err := floatField(n, "density")
		if err != nil {
			return nil, err
		}
		tex, err := l.textureRefField(n, "texture")
		if err != nil {
			return nil, err
		}
		boundary, err := l.objectRefField(n, "boundary")
		if err != nil {
			return nil, err
		}
		return geometry.NewConstantMedium(boundary, density, tex), nil

	case "group":
		children, err := l.objectListField(n, "objects")
		if err != nil {
			return nil, err
		}
		return geometry.NewGroup(children), nil

	case "bvh":
		children, err := l.objectListField(n, "objects")
		if err != nil {
			return nil, err
		}
		return geometry.NewBVH(children), nil

	default:
		return nil, fmt.Errorf("unknown world object type %q", kind)
	}
}

func (l *loader) objectRefField(n node, field string) (core.Object, error) {
	child, err := nodeField(n, field)
	if err != nil {
		return nil, err
	}
	return l.buildObject(child)
}

func (l *loader) objectListField(n node, field string) ([]core.Object, error) {
	raw, ok := n[field]
	if !ok {
		return nil, fmt.Errorf("missing field %q", field)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q must be a list", field)
	}
	objects := make([]core.Object, 0, len(items))
	for i, item := range items {
		childNode, err := asNode(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		obj, err := l.buildObject(childNode)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (l *loader) buildBackground(n node) (core.Background, error) {
	kind, err := stringField(n, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "solid":
		c, err := vecField(n, "color")
		if err != nil {
			return nil, err
		}
		return background.NewSolid(c), nil

	case "gradient":
		bottom, err := vecField(n, "bottom")
		if err != nil {
			return nil, err
		}
		top, err := vecField(n, "top")
		if err != nil {
			return nil, err
		}
		return background.NewGradient(bottom, top), nil

	case "image":
		file, err := stringField(n, "file")
		if err != nil {
			return nil, err
		}
		img, err := imageio.Load(filepath.Join(l.baseDir, file))
		if err != nil {
			return nil, err
		}
		return background.NewImage(img), nil

	case "procedural":
		r, err := stringField(n, "r")
		if err != nil {
			return nil, err
		}
		g, err := stringField(n, "g")
		if err != nil {
			return nil, err
		}
		b, err := stringField(n, "b")
		if err != nil {
			return nil, err
		}
		ce, err := expr.CompileColor(r, g, b)
		if err != nil {
			return nil, err
		}
		return background.NewProcedural(ce), nil

	default:
		return nil, fmt.Errorf("sceneio: unknown background type %q", kind)
	}
}
