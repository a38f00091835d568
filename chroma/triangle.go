package chroma

// IsInGamut reports whether p lies inside the triangle spanned by vertices,
// boundary included. Anything other than exactly three vertices yields false.
func IsInGamut(p XY, vertices []XY) bool {
	if len(vertices) != 3 {
		return false
	}
	a, b, c := vertices[0], vertices[1], vertices[2]

	v0x, v0y := c.X-a.X, c.Y-a.Y
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := p.X-a.X, p.Y-a.Y

	d00 := v0x*v0x + v0y*v0y
	d01 := v0x*v1x + v0y*v1y
	d02 := v0x*v2x + v0y*v2y
	d11 := v1x*v1x + v1y*v1y
	d12 := v1x*v2x + v1y*v2y

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return false
	}
	u := (d11*d02 - d01*d12) / denom
	v := (d00*d12 - d01*d02) / denom
	const tol = 1e-12
	return u >= -tol && v >= -tol && u+v <= 1+tol
}
