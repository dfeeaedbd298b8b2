package arrow

// packBools packs bools LSB-first into dst, which must hold
// (len(bools)+7)/8 bytes. Whole groups of eight are assembled as one
// byte each; the remainder is packed individually. Unused high bits of
// the final byte stay zero so range scans see no phantom trailing
// runs.
func packBools(bools []bool, dst []byte) {
	n := len(bools)
	for i := 0; i+8 <= n; i += 8 {
		g := bools[i : i+8 : i+8]
		dst[i/8] = b2i(g[0]) |
			b2i(g[1])<<1 |
			b2i(g[2])<<2 |
			b2i(g[3])<<3 |
			b2i(g[4])<<4 |
			b2i(g[5])<<5 |
			b2i(g[6])<<6 |
			b2i(g[7])<<7
	}

	if rem := n % 8; rem > 0 {
		var byt byte
		for j := 0; j < rem; j++ {
			byt |= b2i(bools[n-rem+j]) << uint(j)
		}
		dst[n/8] = byt
	}
}

func b2i(b bool) byte {
	if b {
		return 1
	}
	return 0
}
