// Package noise implements the 3D gradient noise that displaces the sphere.
//
// The arithmetic mirrors the GLSL in the sphere vertex stage step for step
// (289-period permutation polynomial, octahedral gradient mapping, quintic
// fade) so the CPU result can stand in for the GPU one in tests and tools.
package noise

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/supersphere/pkg/math"
)

// Period is the lattice period of the permutation polynomial.
const Period = 289

// scale maps the raw interpolated value into [-1.1, 1.1]. The raw peak on
// this gradient set is about 0.53, so 2.2 would overshoot to ~1.16.
const scale = 2.0

type vec4 [4]float32

func mod289(x float32) float32 {
	return x - Period*math32.Floor(x/Period)
}

func permute(x float32) float32 {
	return mod289((x*34 + 1) * x)
}

func taylorInvSqrt(r float32) float32 {
	return 1.79284291400159 - 0.85373472095314*r
}

func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

// step follows GLSL: 0 when x < edge, else 1.
func step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// gradients turns four hashed corner values into normalized gradient vectors.
func gradients(hash vec4) [4]math.Vec3 {
	var out [4]math.Vec3
	for i, h := range hash {
		gx := h / 7
		gy := fract(math32.Floor(gx)/7) - 0.5
		gx = fract(gx)
		gz := 0.5 - math32.Abs(gx) - math32.Abs(gy)
		sz := step(gz, 0)
		gx -= sz * (step(0, gx) - 0.5)
		gy -= sz * (step(0, gy) - 0.5)

		g := math.Vec3{X: gx, Y: gy, Z: gz}
		out[i] = g.Scale(taylorInvSqrt(g.Dot(g)))
	}
	return out
}

// Classic3 evaluates classic gradient noise at (x, y, z).
//
// The result is zero on every integer lattice point, repeats every Period
// units along each axis, and stays close to [-1, 1].
func Classic3(x, y, z float32) float32 {
	x0, y0, z0 := math32.Floor(x), math32.Floor(y), math32.Floor(z)
	x1, y1, z1 := mod289(x0+1), mod289(y0+1), mod289(z0+1)
	x0, y0, z0 = mod289(x0), mod289(y0), mod289(z0)

	f0 := math.Vec3{X: fract(x), Y: fract(y), Z: fract(z)}
	f1 := f0.Sub(math.Vec3{X: 1, Y: 1, Z: 1})

	// Corner order within each z-slice: 00, 10, 01, 11 in (x, y).
	ix := vec4{x0, x1, x0, x1}
	iy := vec4{y0, y0, y1, y1}

	var ixy0, ixy1 vec4
	for i := range ix {
		ixy := permute(permute(ix[i]) + iy[i])
		ixy0[i] = permute(ixy + z0)
		ixy1[i] = permute(ixy + z1)
	}

	g0 := gradients(ixy0)
	g1 := gradients(ixy1)

	n0 := vec4{
		g0[0].Dot(f0),
		g0[1].Dot(math.Vec3{X: f1.X, Y: f0.Y, Z: f0.Z}),
		g0[2].Dot(math.Vec3{X: f0.X, Y: f1.Y, Z: f0.Z}),
		g0[3].Dot(math.Vec3{X: f1.X, Y: f1.Y, Z: f0.Z}),
	}
	n1 := vec4{
		g1[0].Dot(math.Vec3{X: f0.X, Y: f0.Y, Z: f1.Z}),
		g1[1].Dot(math.Vec3{X: f1.X, Y: f0.Y, Z: f1.Z}),
		g1[2].Dot(math.Vec3{X: f0.X, Y: f1.Y, Z: f1.Z}),
		g1[3].Dot(f1),
	}

	fx, fy, fz := fade(f0.X), fade(f0.Y), fade(f0.Z)

	var nz vec4
	for i := range nz {
		nz[i] = mix(n0[i], n1[i], fz)
	}
	nyz0 := mix(nz[0], nz[2], fy)
	nyz1 := mix(nz[1], nz[3], fy)

	return scale * mix(nyz0, nyz1, fx)
}

// At evaluates Classic3 at a vector.
func At(p math.Vec3) float32 {
	return Classic3(p.X, p.Y, p.Z)
}
