package palette

// Pair is the ordered couple of dominant colors extracted from a cover.
// Primary drives the background and the text-contrast decision in most modes.
// Primary may equal Secondary.
type Pair struct {
	Primary   Color `json:"primary" yaml:"primary"`
	Secondary Color `json:"secondary" yaml:"secondary"`
}

// NewPair returns a Pair.
func NewPair(primary, secondary Color) Pair {
	return Pair{Primary: primary, Secondary: secondary}
}

// Flat reports whether both members are the same color.
func (p Pair) Flat() bool {
	return p.Primary == p.Secondary
}

// Swapped returns the pair with Primary and Secondary exchanged.
func (p Pair) Swapped() Pair {
	return Pair{Primary: p.Secondary, Secondary: p.Primary}
}

// DarkestFirst returns the pair reordered so that the member closest to
// black (Euclidean RGB distance) becomes Primary. Ties keep the original order.
func (p Pair) DarkestFirst() Pair {
	if p.Secondary.DistanceFromBlack() < p.Primary.DistanceFromBlack() {
		return p.Swapped()
	}
	return p
}
