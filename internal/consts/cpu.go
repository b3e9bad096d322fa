package consts

import "golang.org/x/sys/cpu"

// IsBigEndian reports whether the host stores words in the same byte order
// the hash uses on the wire, allowing blocks to be reinterpreted in place.
var IsBigEndian = cpu.IsBigEndian
