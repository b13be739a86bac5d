package classes

// Hash implements the identifier hash the game engine applies to names: the
// accumulator is rotated left five bits and XORed with each character,
// lowercased. Note that the class tags observed in shipped .bin files do not
// come out of this function, so the tag tables in this package record them
// verbatim instead of deriving them.
func Hash(name string) uint32 {
	var a uint32
	for _, ch := range name {
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		a = (a<<5 | a>>27) ^ uint32(ch)
	}
	return a
}
