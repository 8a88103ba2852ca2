// Package random implements the 32-bit Mersenne Twister (MT19937) with
// the seeding and sampling conventions of CPython's random module, so
// a given seed yields the same draws as random.seed(n) in Python.
package random

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// MT19937 is a Mersenne Twister generator. It is not safe for
// concurrent use.
type MT19937 struct {
	state [n]uint32
	index int
}

// New returns a generator seeded like Python's random.seed(seed).
func New(seed int64) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed reseeds the generator. The absolute value of seed is split into
// little-endian 32-bit words and fed to init_by_array.
func (mt *MT19937) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	mt.SeedArray(key)
}

// SeedArray initializes the state from key (init_by_array).
func (mt *MT19937) SeedArray(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	mt.seedScalar(19650218)

	s := &mt.state
	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		s[i] = (s[i] ^ ((s[i-1] ^ (s[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			s[0] = s[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		s[i] = (s[i] ^ ((s[i-1] ^ (s[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			s[0] = s[n-1]
			i = 1
		}
	}
	s[0] = 0x80000000
	mt.index = n
}

// seedScalar is init_genrand.
func (mt *MT19937) seedScalar(seed uint32) {
	s := &mt.state
	s[0] = seed
	for i := 1; i < n; i++ {
		s[i] = 1812433253*(s[i-1]^(s[i-1]>>30)) + uint32(i)
	}
	mt.index = n
}

func (mt *MT19937) twist() {
	s := &mt.state
	for k := 0; k < n; k++ {
		y := (s[k] & upperMask) | (s[(k+1)%n] & lowerMask)
		v := s[(k+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		s[k] = v
	}
	mt.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT19937) Uint32() uint32 {
	if mt.index >= n {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a value in [0, 1) with 53 bits of precision, built
// from two outputs the way random.random() does.
func (mt *MT19937) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Bits returns the top k bits of one output, 0 < k <= 32.
func (mt *MT19937) Bits(k int) uint32 {
	if k <= 0 {
		return 0
	}
	if k >= 32 {
		return mt.Uint32()
	}
	return mt.Uint32() >> (32 - k)
}

// IntN returns a uniform value in [0, bound) by rejection sampling on
// bit_length(bound) bits, matching random.randrange and random.choice.
// It panics if bound <= 0 or bound needs more than 32 bits.
func (mt *MT19937) IntN(bound int) int {
	if bound <= 0 {
		panic("random: invalid argument to IntN")
	}
	k := bitLength(uint64(bound))
	if k > 32 {
		panic("random: IntN bound exceeds 32 bits")
	}
	r := int(mt.Bits(k))
	for r >= bound {
		r = int(mt.Bits(k))
	}
	return r
}

func bitLength(v uint64) int {
	k := 0
	for v != 0 {
		k++
		v >>= 1
	}
	return k
}
