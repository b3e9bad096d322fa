package sha256

import "strings"

type vector struct {
	name string
	data string
	hash string
}

func (v vector) input() []byte { return []byte(v.data) }

var vectors = []vector{
	{
		name: "empty",
		data: "",
		hash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "abc",
		data: "abc",
		hash: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "448 bits",
		data: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "896 bits",
		data: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "million a",
		data: strings.Repeat("a", 1000000),
		hash: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
	{
		name: "55 zeros",
		data: strings.Repeat("\x00", 55),
		hash: "02779466cdec163811d078815c633f21901413081449002f24aa3e80f0b88ef7",
	},
	{
		name: "56 zeros",
		data: strings.Repeat("\x00", 56),
		hash: "d4817aa5497628e7c77e6b606107042bbba3130888c5f47a375e6179be789fbb",
	},
	{
		name: "63 zeros",
		data: strings.Repeat("\x00", 63),
		hash: "c7723fa1e0127975e49e62e753db53924c1bd84b8ac1ac08df78d09270f3d971",
	},
	{
		name: "64 zeros",
		data: strings.Repeat("\x00", 64),
		hash: "f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b",
	},
	{
		name: "65 zeros",
		data: strings.Repeat("\x00", 65),
		hash: "98ce42deef51d40269d542f5314bef2c7468d401ad5d85168bfab4c0108f75f7",
	},
	{
		name: "119 zeros",
		data: strings.Repeat("\x00", 119),
		hash: "f616b0d54e78571a9611f343c9f8e022e859e920381ab0e4d3da01e193a7bd7e",
	},
	{
		name: "120 zeros",
		data: strings.Repeat("\x00", 120),
		hash: "6edd9f6f9cc92cded36e6c4a580933f9c9f1b90562b46903b806f21902a1a54f",
	},
}

// pattern returns n bytes counting up modulo 251, so no block repeats.
func pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}
	return out
}
