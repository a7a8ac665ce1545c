// Package scene reads and writes YAML scene files: a sampling step, an image
// size and a list of curves.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	splines "github.com/schardong/Splines"
	splinemake "github.com/schardong/Splines/make"
)

const (
	DefaultStep   = 0.01
	DefaultWidth  = 800
	DefaultHeight = 600
)

const (
	TypeBSpline = "bspline"
	TypeBezier  = "bezier"
)

var (
	ErrUnknownType = errors.New("scene: unknown curve type")
	ErrBadPoint    = errors.New("scene: a point needs 2 or 3 coordinates")
	ErrBadColor    = errors.New("scene: a color needs 3 or 4 components")
)

// BezierColor is the colour of Bézier curves that do not name one.
var BezierColor = splines.RGBA{R: 0.5, B: 0.7, A: 1}

type Shape struct {
	Name  string
	Shape splines.Shape
}

type Scene struct {
	Step          float64
	Width, Height int
	Shapes        []Shape
}

// The file layout. Numbers are kept loose and coerced with cast, so
// coordinates may be written as ints, floats or quoted strings.
type fileCurve struct {
	Name    string `yaml:"name,omitempty"`
	Type    string `yaml:"type,omitempty"`
	Degree  any    `yaml:"degree,omitempty"`
	Points  []any  `yaml:"points"`
	Knots   []any  `yaml:"knots,omitempty"`
	Weights []any  `yaml:"weights,omitempty"`
	Color   []any  `yaml:"color,omitempty"`
}

type file struct {
	Step   any         `yaml:"step,omitempty"`
	Width  any         `yaml:"width,omitempty"`
	Height any         `yaml:"height,omitempty"`
	Curves []fileCurve `yaml:"curves"`
}

// Default returns the demo scene: four cubic variants over the same six
// control points.
func Default() (*Scene, error) {
	curves, err := splinemake.DemoCurves()
	if err != nil {
		return nil, err
	}

	names := []string{"standard", "non-uniform", "rational", "nurbs"}
	s := &Scene{Step: DefaultStep, Width: DefaultWidth, Height: DefaultHeight}
	for i, crv := range curves {
		s.Shapes = append(s.Shapes, Shape{names[i], crv})
	}

	return s, nil
}

func Load(path string) (*Scene, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	splines.Logger().Info("scene loaded", "path", path, "curves", len(s.Shapes))
	return s, nil
}

func Save(path string, s *Scene) error {
	d, err := Encode(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, d, 0600)
}

// Decode builds a scene from YAML. Curves without a type are B-splines;
// degree defaults to 3 for B-splines, and missing knots or weights take the
// model defaults.
func Decode(d []byte) (*Scene, error) {
	var f file
	if err := yaml.Unmarshal(d, &f); err != nil {
		return nil, err
	}

	s := &Scene{Step: DefaultStep, Width: DefaultWidth, Height: DefaultHeight}

	var err error
	if f.Step != nil {
		if s.Step, err = cast.ToFloat64E(f.Step); err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
		if !(s.Step > 0) {
			return nil, fmt.Errorf("step: must be positive, got %g", s.Step)
		}
	}
	if f.Width != nil {
		if s.Width, err = cast.ToIntE(f.Width); err != nil {
			return nil, fmt.Errorf("width: %w", err)
		}
	}
	if f.Height != nil {
		if s.Height, err = cast.ToIntE(f.Height); err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
	}

	for i, fc := range f.Curves {
		name := fc.Name
		if name == "" {
			name = fmt.Sprintf("curve %d", i)
		}

		shape, err := fc.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		s.Shapes = append(s.Shapes, Shape{name, shape})
	}

	return s, nil
}

func (fc *fileCurve) build() (splines.Shape, error) {
	pts, err := toPoints(fc.Points)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(fc.Type) {
	case "", TypeBSpline:
		return fc.buildBSpline(pts)
	case TypeBezier:
		return fc.buildBezier(pts)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, fc.Type)
	}
}

func (fc *fileCurve) buildBSpline(pts []splines.Vector3) (splines.Shape, error) {
	degree := 3
	if fc.Degree != nil {
		var err error
		if degree, err = cast.ToIntE(fc.Degree); err != nil {
			return nil, fmt.Errorf("degree: %w", err)
		}
		if degree < 0 {
			return nil, fmt.Errorf("degree: must not be negative, got %d", degree)
		}
	}

	knots, err := toFloats(fc.Knots)
	if err != nil {
		return nil, fmt.Errorf("knots: %w", err)
	}
	weights, err := toFloats(fc.Weights)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}

	crv, err := splines.NewCurve(degree, pts, weights, knots)
	if err != nil {
		return nil, err
	}

	color, err := toColor(fc.Color, splines.Black)
	if err != nil {
		return nil, err
	}
	crv.SetColor(color)

	return crv, nil
}

func (fc *fileCurve) buildBezier(pts []splines.Vector3) (splines.Shape, error) {
	bez, err := splines.NewBezierCurve(pts)
	if err != nil {
		return nil, err
	}

	if fc.Degree != nil {
		if degree, err := cast.ToIntE(fc.Degree); err != nil || degree != bez.Degree() {
			return nil, fmt.Errorf("degree: %v does not match %d control points", fc.Degree, len(pts))
		}
	}

	color, err := toColor(fc.Color, BezierColor)
	if err != nil {
		return nil, err
	}
	bez.SetColor(color)

	return bez, nil
}

func toFloats(vs []any) ([]float64, error) {
	if vs == nil {
		return nil, nil
	}

	fs := make([]float64, len(vs))
	for i, v := range vs {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		fs[i] = f
	}

	return fs, nil
}

func toPoints(vs []any) ([]splines.Vector3, error) {
	pts := make([]splines.Vector3, len(vs))
	for i, v := range vs {
		coords, err := cast.ToSliceE(v)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if len(coords) < 2 || len(coords) > 3 {
			return nil, fmt.Errorf("point %d: %w, got %d", i, ErrBadPoint, len(coords))
		}

		fs, err := toFloats(coords)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		copy(pts[i][:], fs)
	}

	return pts, nil
}

func toColor(vs []any, def splines.RGBA) (splines.RGBA, error) {
	if vs == nil {
		return def, nil
	}
	if len(vs) < 3 || len(vs) > 4 {
		return def, fmt.Errorf("color: %w, got %d", ErrBadColor, len(vs))
	}

	fs, err := toFloats(vs)
	if err != nil {
		return def, fmt.Errorf("color: %w", err)
	}
	if len(fs) == 3 {
		fs = append(fs, 1)
	}

	return splines.RGBA{R: fs[0], G: fs[1], B: fs[2], A: fs[3]}, nil
}

// Encode writes the scene back as YAML. Every curve is written with its
// explicit knots and weights.
func Encode(s *Scene) ([]byte, error) {
	f := file{Step: s.Step, Width: s.Width, Height: s.Height}

	for _, shape := range s.Shapes {
		fc := fileCurve{Name: shape.Name}

		for _, p := range shape.Shape.ControlPoints() {
			fc.Points = append(fc.Points, []float64{p[0], p[1], p[2]})
		}
		c := shape.Shape.Color()
		fc.Color = []any{c.R, c.G, c.B, c.A}

		switch v := shape.Shape.(type) {
		case *splines.Curve:
			fc.Type = TypeBSpline
			fc.Degree = v.Degree()
			fc.Knots = toAny(v.Knots())
			fc.Weights = toAny(v.Weights())
		case *splines.BezierCurve:
			fc.Type = TypeBezier
			fc.Degree = v.Degree()
		default:
			return nil, fmt.Errorf("%s: %w %T", shape.Name, ErrUnknownType, shape.Shape)
		}

		f.Curves = append(f.Curves, fc)
	}

	return yaml.Marshal(&f)
}

func toAny(fs []float64) []any {
	vs := make([]any, len(fs))
	for i, f := range fs {
		vs[i] = f
	}

	return vs
}
