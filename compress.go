package sha256

import (
	"github.com/zeebo/sha256/internal/bitops"
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// compress absorbs one 64-byte block into state.
func compress(state *[8]uint32, block *[consts.BlockLen]byte) {
	var w [consts.Rounds]uint32
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))

	for i := 16; i < consts.Rounds; i++ {
		w[i] = bitops.Sigma1(w[i-2]) + w[i-7] + bitops.Sigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i++ {
		t0 := w[i] + consts.K[i] + bitops.BigSigma1(e) + bitops.Choice(e, f, g) + h
		t1 := bitops.BigSigma0(a) + bitops.Majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t0
		d = c
		c = b
		b = a
		a = t0 + t1
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
