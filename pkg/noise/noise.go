// Package noise provides a deterministic hash-based value noise field
// over integer coordinates. Every value is a pure function of
// (x, y, seed); no generator state is involved, so the field can be
// sampled in any order and still reproduce bit-for-bit across platforms.
package noise

// Value returns a pseudo-random value in [0,1) for the given integer
// coordinates and seed. The mix constants are arbitrary primes chosen to
// decorrelate bits.
func Value(x, y int, seed uint32) float64 {
	h := uint32(x) * 374761393
	h += uint32(y) * 668265263
	h ^= seed + 0x9e3779b9 + (h << 6) + (h >> 2)
	h ^= h >> 17
	h *= 0xed5ad4bb
	h ^= h >> 11
	h *= 0xac4c1b51
	h ^= h >> 15
	return float64(h&0xFFFFFF) / float64(0x1000000)
}

// Fractal combines several octaves of Value into spatially coherent
// noise in [0,1]. Each octave doubles the sampling frequency and halves
// the amplitude; the seed is offset per octave so octaves decorrelate.
// The result is normalized by the amplitude sum.
func Fractal(x, y int, seed uint32, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	amplitudeSum := 0.0
	frequency := 1
	for i := 0; i < octaves; i++ {
		n := Value(x*frequency, y*frequency, seed+uint32(i)*17)
		sum += amplitude * n
		amplitudeSum += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return sum / amplitudeSum
}
