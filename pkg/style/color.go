package style

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a style color string into an RGBA value. It accepts
// #rgb, #rrggbb and #rrggbbaa hex forms plus the CSS/SVG named colors.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// ValidColor reports whether s parses as a color.
func ValidColor(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

func parseHexColor(hex string) (color.RGBA, error) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, fmt.Errorf("invalid hex color #%s", hex)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xFF}, nil
	case 6, 8:
		var vals [4]uint8
		vals[3] = 0xFF
		for i := 0; i*2 < len(hex); i++ {
			hi, okHi := hexNibble(hex[i*2])
			lo, okLo := hexNibble(hex[i*2+1])
			if !okHi || !okLo {
				return color.RGBA{}, fmt.Errorf("invalid hex color #%s", hex)
			}
			vals[i] = hi<<4 | lo
		}
		return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s", hex)
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
