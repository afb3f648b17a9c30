package mdcode

// Block is a fenced code block found in a Markdown document.
// StartLine and EndLine are 1-based and span the fence and its body.
type Block struct {
	Info      Info
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Filter returns the blocks for which keep returns true.
func (b Blocks) Filter(keep func(*Block) bool) Blocks {
	var kept Blocks

	for _, block := range b {
		if keep(block) {
			kept = append(kept, block)
		}
	}

	return kept
}

// Unfence returns the fenced code blocks of a Markdown document in
// document order. The source is not modified.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	if _, _, err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	}); err != nil {
		return nil, err
	}

	return blocks, nil
}
