package views

import "math"

// Vec3 is a point in scene space: x right, y up, z toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vec3) RotateX(a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func (v Vec3) RotateY(a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func (v Vec3) RotateZ(a float64) Vec3 {
	s, c := math.Sincos(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Camera is a pinhole perspective camera looking down -z.
type Camera struct {
	FOV        float64 // vertical field of view, degrees
	Position   Vec3
	CellAspect float64 // cell height / cell width
}

// DefaultCamera sits five units back with a 75 degree vertical field of view.
var DefaultCamera = Camera{FOV: 75, Position: Vec3{0, 0, 5}, CellAspect: 2}

// Project maps p onto a w by h cell grid. ok is false for points behind the
// camera or outside the grid. depth is the distance along the view axis.
func (c Camera) Project(p Vec3, w, h int) (x, y int, depth float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, false
	}
	rel := Vec3{p.X - c.Position.X, p.Y - c.Position.Y, p.Z - c.Position.Z}
	depth = -rel.Z
	if depth <= 0.01 {
		return 0, 0, depth, false
	}
	aspect := c.CellAspect
	if aspect <= 0 {
		aspect = 1
	}

	// Half the grid height spans tan(fov/2) at unit depth. Columns are
	// narrower than rows by the cell aspect.
	f := float64(h) / 2 / math.Tan(c.FOV*math.Pi/360)
	sx := float64(w)/2 + rel.X/depth*f*aspect
	sy := float64(h)/2 - rel.Y/depth*f
	x, y = int(math.Floor(sx)), int(math.Floor(sy))
	if x < 0 || y < 0 || x >= w || y >= h {
		return x, y, depth, false
	}
	return x, y, depth, true
}

// FibonacciSphere spreads n points evenly over a sphere of radius r.
func FibonacciSphere(n int, r float64) []Vec3 {
	pts := make([]Vec3, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		rad := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		pts[i] = Vec3{math.Cos(theta) * rad * r, y * r, math.Sin(theta) * rad * r}
	}
	return pts
}
