package chain

// addSimplePrefix implements the suffix-empty path (§4.5): base64-encode the
// file content once, strip padding, then push the padded prefix's base64
// form back onto the stream character by character so decoding it prepends
// PREFIX in front of the untouched file bytes.
func addSimplePrefix(p *Pipeline, prefix []byte, padChar byte) error {
	p.Append(b64EncodeTok)
	p.Append(removeEqual)

	padded := alignRight(prefix, 3, padChar)
	encoded := b64Encode(padded, false)

	if err := p.pushCharsSafely(encoded); err != nil {
		return err
	}

	p.Append(b64Decode)
	return nil
}

// addPrefix forges a chunked-transfer-encoding header in front of the
// (already chunk-bodied) file content, whose declared length spans exactly
// to the forged "\n0\n" terminator the suffix stage planted, then pushes
// PREFIX behind that header so dechunk later exposes both (§4.9).
func addPrefix(p *Pipeline, prefix []byte, suffix []byte, nbChunks int, padChar byte) error {
	p.Append(b64EncodeTok)

	aligned := alignRight(prefix, 3, padChar)
	encodedPrefix := b64Encode(aligned, false)
	encodedPrefix = alignRight(encodedPrefix, 9, 0x00)
	encodedPrefix = b64Encode(encodedPrefix, false)

	size := len(b64Encode(suffix, false))/2*4 + nbChunks*16 + 2 + 7 + len(encodedPrefix)

	chunkHeader := []byte(hexLower(size) + "\n")
	chunkHeader = alignLeft(chunkHeader, 3, '0')

	b64 := b64Encode(append(chunkHeader, encodedPrefix...), false)
	return p.pushCharsSafely(b64)
}

// hexLower renders v as lowercase hexadecimal, matching Python's `f"{v:x}"`.
func hexLower(v int) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789abcdef"
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v%16]
		v /= 16
	}
	return string(buf[i:])
}
