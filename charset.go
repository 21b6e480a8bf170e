package turtls

type CharSet map[byte]struct{}

func NewCharSet(chars string) CharSet {
	cs := make(CharSet, len(chars))
	for i := 0; i < len(chars); i++ {
		cs.Add(chars[i])
	}
	return cs
}

func (cs CharSet) Contains(c byte) bool {
	_, exists := cs[c]
	return exists
}

func (cs CharSet) Add(c byte) {
	cs[c] = struct{}{}
}

func (cs CharSet) AsSlice() []byte {
	slice := make([]byte, 0, len(cs))
	for c := range cs {
		slice = append(slice, c)
	}
	return slice
}
