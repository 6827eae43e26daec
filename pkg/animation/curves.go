package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates. Used for programmatic page scrolls.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly. Used for tab fades.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier() with
// control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t with Newton-Raphson, then bisection if the slope
		// flattens out.
		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, unit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = unit(u)
		for range 12 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
