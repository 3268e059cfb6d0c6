package bitstring

// FromText encodes s with eight bits per byte. Bytes map 1:1 onto octets; no
// character-set decoding takes place.
func FromText(s string) Vector {
	return FromBytes([]byte(s))
}

// Text decodes v back into the string FromText produced it from.
func (v Vector) Text() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
