package charset

// UnicodeMathSet is the Unicode set with mathematical diagonals, which render
// at a steeper angle than the box-drawing ones in most terminal fonts.
type UnicodeMathSet struct {
	UnicodeSet
}

func NewUnicodeMath() Set {
	return &UnicodeMathSet{}
}

func (u *UnicodeMathSet) ForwardSlash() string { return "⟋" }
func (u *UnicodeMathSet) Backslash() string    { return "⟍" }
