// Package render draws sampled curves. Canvas rasterises them with gg into
// an image that can be saved as PNG.
package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	splines "github.com/schardong/Splines"
)

// Renderer consumes a control polygon and the points sampled from it.
type Renderer interface {
	DrawCurve(controlPoints []splines.Vector3, samples []splines.Vector3, color splines.RGBA) error
}

// DrawShape samples shape at the given step and hands it to r.
func DrawShape(r Renderer, shape splines.Shape, step float64, opts ...splines.SampleOption) error {
	samples := shape.Sample(step, opts...)
	splines.Logger().Debug("render: drawing shape", "controlPoints", len(shape.ControlPoints()), "samples", len(samples))

	return r.DrawCurve(shape.ControlPoints(), samples.Points(), shape.Color())
}

var (
	PolygonColor = splines.RGBA{G: 1, B: 1, A: 1}
	PointColor   = splines.Black
)

// Canvas is a Renderer backed by a gg context. Coordinates are pixels with
// the origin at the bottom left and y pointing up; z is ignored.
type Canvas struct {
	dc     *gg.Context
	height float64

	LineWidth   float64
	PointRadius float64
}

func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	return &Canvas{
		dc:          dc,
		height:      float64(height),
		LineWidth:   1,
		PointRadius: 2,
	}
}

// DrawCurve draws the control polygon, then the curve through the samples in
// color, then the control points.
func (c *Canvas) DrawCurve(controlPoints []splines.Vector3, samples []splines.Vector3, color splines.RGBA) error {
	c.dc.SetLineWidth(c.LineWidth)

	if err := c.polyline(controlPoints, PolygonColor); err != nil {
		return err
	}
	if err := c.polyline(samples, color); err != nil {
		return err
	}

	if len(controlPoints) == 0 {
		return nil
	}

	c.setColor(PointColor)
	for _, p := range controlPoints {
		c.dc.DrawPoint(p[0], c.flip(p[1]), c.PointRadius)
	}

	return c.dc.Fill()
}

func (c *Canvas) polyline(pts []splines.Vector3, color splines.RGBA) error {
	if len(pts) < 2 {
		return nil
	}

	c.setColor(color)
	c.dc.MoveTo(pts[0][0], c.flip(pts[0][1]))
	for _, p := range pts[1:] {
		c.dc.LineTo(p[0], c.flip(p[1]))
	}

	return c.dc.Stroke()
}

func (c *Canvas) setColor(color splines.RGBA) {
	c.dc.SetRGBA(color.R, color.G, color.B, color.A)
}

func (c *Canvas) flip(y float64) float64 {
	return c.height - y
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	splines.Logger().Info("render: writing image", "path", path)
	return c.dc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
