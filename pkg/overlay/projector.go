// Package overlay projects native selection rectangles into an element's
// local frame so a custom highlight can be painted under the platform
// selection and stay pixel-aligned while the element is rotated or the
// canvas is zoomed.
package overlay

import (
	"math"

	"github.com/go-collage/collage/pkg/geometry"
)

// Transform is the element's placement state as authored on the canvas,
// supplied read-only by the manipulation layer.
type Transform struct {
	// Width and Height are the element's authored dimensions in the local
	// unrotated frame.
	Width  float64
	Height float64
	// Rotation is the element's rotation in radians.
	Rotation float64
	// Scale is the ambient canvas zoom factor.
	Scale float64
}

// LineMetrics describes the active text style's vertical geometry.
type LineMetrics struct {
	FontSize   float64
	LineHeight float64 // multiplier, not pixels
}

// height returns the local line height in pixels.
func (m LineMetrics) height() float64 {
	return m.FontSize * m.LineHeight
}

// ProjectRect maps one device-space selection rectangle into the element's
// local unrotated frame. device already reflects the element's rotation and
// the canvas scale; wrapper is the device-space bounding box of the
// unrotated wrapper element. outline is the active outline/border width,
// which shifts the result inward so the overlay aligns with the padding box
// rather than the border box.
func ProjectRect(device, wrapper geometry.Rect, t Transform, m LineMetrics, outline float64) geometry.Rect {
	z := t.Scale
	if z == 0 {
		z = 1
	}
	h := m.height()
	w := localWidth(device, t.Rotation, z, h)

	// Device-space vector from the wrapper center to the rectangle center,
	// unscaled and rotated back into the local frame.
	v := device.Center().Sub(wrapper.Center()).Scale(1 / z).Rotate(-t.Rotation)

	left := t.Width/2 + v.X - w/2 - outline
	top := t.Height/2 + v.Y - h/2 - outline
	return geometry.RectFromLTWH(left, top, w, h)
}

// ProjectSelection maps every device rectangle of a selection. A selection
// spanning wrapped lines arrives as one rectangle per visual line segment
// and yields one local rectangle each.
func ProjectSelection(device []geometry.Rect, wrapper geometry.Rect, t Transform, m LineMetrics, outline float64) []geometry.Rect {
	if len(device) == 0 {
		return nil
	}
	out := make([]geometry.Rect, len(device))
	for i, r := range device {
		out[i] = ProjectRect(r, wrapper, t, m, outline)
	}
	return out
}

// localWidth recovers the unrotated, unscaled width of a selection
// rectangle. A local w x h box rotated by theta and scaled by z projects to
// device dimensions
//
//	W = z*(w*|cos| + h*|sin|)
//	H = z*(w*|sin| + h*|cos|)
//
// with h known from the line metrics. The branch with the larger trig
// coefficient is solved to keep the division away from the singularity, and
// a divisor below epsilon clamps the result to zero.
func localWidth(device geometry.Rect, theta, z, h float64) float64 {
	sin, cos := math.Sincos(theta)
	sin, cos = math.Abs(sin), math.Abs(cos)

	var w float64
	if cos >= sin {
		if cos < geometry.Epsilon {
			return 0
		}
		w = (device.Width()/z - h*sin) / cos
	} else {
		if sin < geometry.Epsilon {
			return 0
		}
		w = (device.Height()/z - h*cos) / sin
	}
	if w < 0 {
		return 0
	}
	return w
}
