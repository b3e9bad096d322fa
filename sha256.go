package sha256

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

//
// hasher contains state for a sha256 hash
//

type hasher struct {
	state [8]uint32
	len   uint64
	bufn  int
	buf   [consts.BlockLen]byte
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
	a.bufn = 0
}

// update absorbs buf, compressing every block it completes. Only a partial
// trailing block is ever copied into the internal buffer.
func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}

		compress(&a.state, &a.buf)
		a.bufn = 0
	}

	for len(buf) >= consts.BlockLen {
		compress(&a.state, (*[consts.BlockLen]byte)(unsafe.Pointer(&buf[0])))
		buf = buf[consts.BlockLen:]
	}

	a.bufn = copy(a.buf[:], buf)
}

// finalize pads a copy of the state and writes the digest into out. The
// hasher itself is left untouched so more data may be written afterwards.
func (a *hasher) finalize(out *[consts.Size]byte) {
	state := a.state

	var tail [2 * consts.BlockLen]byte
	n := copy(tail[:], a.buf[:a.bufn])
	tail[n] = 0x80

	end := consts.BlockLen
	if n > consts.PadLimit {
		end = 2 * consts.BlockLen
	}

	// the length is in bits and wraps past 2^64 bits of input
	binary.BigEndian.PutUint64(tail[end-consts.LengthLen:end], a.len<<3)

	for off := 0; off < end; off += consts.BlockLen {
		compress(&state, (*[consts.BlockLen]byte)(unsafe.Pointer(&tail[off])))
	}

	utils.WordsToBytes(&state, out)
}
