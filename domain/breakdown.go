package domain

// BreakdownStep is one line of a calculation walkthrough: the formula with
// the caller's numbers substituted and the value it produces.
type BreakdownStep struct {
	Title   string  `json:"title"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
}
