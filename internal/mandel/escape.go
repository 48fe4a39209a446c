// Package mandel implements the escape-time test for the Mandelbrot map.
package mandel

// Bailout is the squared escape radius. Orbits with |z|² above it diverge.
const Bailout = 4.0

// Escape iterates z = z² + c from z = 0 for at most maxIter steps. It returns
// the 0-based step at which |z|² first exceeded Bailout, or escaped=false when
// the orbit stayed bounded for every step.
func Escape(c complex128, maxIter int) (n int, escaped bool) {
	var z complex128
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > Bailout {
			return i, true
		}
	}
	return 0, false
}
