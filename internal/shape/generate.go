package shape

import "math"

// GenerateSphere samples a sphere of the given radius on a
// horizontal×vertical grid. phi covers [0, π) in vertical steps and theta
// covers [0, 2π) in horizontal steps; phi is the outer loop.
func GenerateSphere(radius float64, horizontal, vertical int) []Vec3 {
	if horizontal < 1 || vertical < 1 {
		return []Vec3{}
	}
	points := make([]Vec3, 0, horizontal*vertical)

	incH := 2 * math.Pi / float64(horizontal)
	incV := math.Pi / float64(vertical)

	for i := 0; i < vertical; i++ {
		phi := float64(i) * incV
		sp, cp := math.Sincos(phi)
		for j := 0; j < horizontal; j++ {
			theta := float64(j) * incH
			st, ct := math.Sincos(theta)
			points = append(points, Vec3{
				X: radius * ct * sp,
				Y: radius * st * sp,
				Z: radius * cp,
			})
		}
	}
	return points
}

// GenerateTorus samples a torus with the given ring (major) and tube (minor)
// radii. Both angles cover [0, 2π); iteration order matches GenerateSphere.
func GenerateTorus(ringRadius, tubeRadius float64, horizontal, vertical int) []Vec3 {
	if horizontal < 1 || vertical < 1 {
		return []Vec3{}
	}
	points := make([]Vec3, 0, horizontal*vertical)

	incH := 2 * math.Pi / float64(horizontal)
	incV := 2 * math.Pi / float64(vertical)

	for i := 0; i < vertical; i++ {
		phi := float64(i) * incV
		sp, cp := math.Sincos(phi)
		ring := ringRadius + tubeRadius*cp
		for j := 0; j < horizontal; j++ {
			theta := float64(j) * incH
			st, ct := math.Sincos(theta)
			points = append(points, Vec3{
				X: ring * ct,
				Y: ring * st,
				Z: tubeRadius * sp,
			})
		}
	}
	return points
}
