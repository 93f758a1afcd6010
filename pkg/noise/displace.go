package noise

import "github.com/Faultbox/supersphere/pkg/math"

// SamplePoint returns the noise-space coordinate for a vertex: the position
// scaled by freq, with time scrolling the field along X.
func SamplePoint(p math.Vec3, freq, t float32) math.Vec3 {
	return math.Vec3{X: p.X*freq + t, Y: p.Y * freq, Z: p.Z * freq}
}

// Displace pushes p along its normal n by noise * amp.
// It has no hidden state: equal arguments give bit-identical results.
func Displace(p, n math.Vec3, freq, amp, t float32) math.Vec3 {
	v := At(SamplePoint(p, freq, t))
	return p.Add(n.Scale(v * amp))
}
