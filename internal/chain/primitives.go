package chain

import "encoding/base64"

// b64Encode returns the standard base64 encoding of value. If strip is true,
// any trailing '=' padding characters are removed first.
func b64Encode(value []byte, strip bool) []byte {
	encoded := base64.StdEncoding.EncodeToString(value)
	if strip {
		for len(encoded) > 0 && encoded[len(encoded)-1] == '=' {
			encoded = encoded[:len(encoded)-1]
		}
	}
	return []byte(encoded)
}

// alignValue returns the smallest integer >= value that is divisible by div.
func alignValue(value, div int) int {
	return value + (div-value%div)%div
}

// alignRight pads s on the right with p until its length is divisible by n.
func alignRight(s []byte, n int, p byte) []byte {
	padding := (n - len(s)%n) % n
	out := make([]byte, len(s), len(s)+padding)
	copy(out, s)
	for i := 0; i < padding; i++ {
		out = append(out, p)
	}
	return out
}

// alignLeft pads s on the left with p until its length is divisible by n.
func alignLeft(s []byte, n int, p byte) []byte {
	target := alignValue(len(s), n)
	padding := target - len(s)
	out := make([]byte, 0, target)
	for i := 0; i < padding; i++ {
		out = append(out, p)
	}
	return append(out, s...)
}
