package chain

// postlude decodes the accumulated base64 stream back to the forged
// chunked representation, strips the chunk framing with dechunk, then
// decodes the remaining two base64 layers to recover the raw
// PREFIX||contents||SUFFIX bytes (§4.10).
func postlude(p *Pipeline) {
	p.Append(b64Decode)
	p.Append(dechunk)
	p.Append(b64Decode)
	p.Append(b64Decode)
}
