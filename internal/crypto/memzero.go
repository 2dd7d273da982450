package crypto

// Zero overwrites b in place. Used to discard intermediate key buffers
// once they have been copied or encoded.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
