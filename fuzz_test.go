package sha256

import (
	stdsha256 "crypto/sha256"
	"math/rand"
	"testing"
)

func FuzzHash(f *testing.F) {
	f.Add([]byte{55})
	f.Add([]byte{56})
	f.Add([]byte{63, 1})
	f.Add([]byte{1, 63, 64, 0, 128})

	f.Fuzz(func(t *testing.T, prog []byte) {
		l := 0
		for _, v := range prog {
			l += int(v)
		}
		data := make([]byte, l)
		rand.New(rand.NewSource(0)).Read(data)

		h, b := New(), data
		for _, v := range prog {
			h.Write(b[:v])
			b = b[v:]
		}
		v1 := h.Sum(nil)
		v2 := Sum256(data)
		v3 := stdsha256.Sum256(data)
		if string(v1) != string(v2[:]) || string(v1) != string(v3[:]) {
			t.Fatalf("v1: %x, v2: %x, v3: %x", v1, v2, v3)
		}
	})
}
