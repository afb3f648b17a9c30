// Package mdcode finds the fenced code blocks of a Markdown document and
// lets callers rewrite their bodies in place.
package mdcode

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Walker is a callback invoked for each fenced code block found in a Markdown
// document. The walker may modify block.Code in place; any changes are written
// back into the document by [Walk].
type Walker func(block *Block) error

type edit struct {
	start, stop int
	code        []byte
}

// Walk parses a Markdown document and calls walker for every fenced code
// block, in document order. If the walker modifies any block's Code, Walk
// returns true and the updated document. When no blocks are modified, it
// returns false and a nil slice.
func Walk(source []byte, walker Walker) (bool, []byte, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	lines := newLineIndex(source)

	var edits []edit

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			return ast.WalkContinue, nil
		}

		fcb := fencedCodeBlock(node, source)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		block := newBlock(fcb, source, lines)
		code := block.Code

		if err := walker(block); err != nil {
			return ast.WalkStop, err
		}

		if bytes.Equal(code, block.Code) {
			return ast.WalkContinue, nil
		}

		if start, stop, ok := bodyBounds(fcb); ok {
			edits = append(edits, edit{start: start, stop: stop, code: block.Code})
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return false, nil, err
	}

	if len(edits) == 0 {
		return false, nil, nil
	}

	return true, applyEdits(edits, source), nil
}

func fencedCodeBlock(node ast.Node, source []byte) *ast.FencedCodeBlock {
	switch n := node.(type) {
	case *ast.FencedCodeBlock:
		return n
	case *ast.HTMLBlock:
		return unwrapScriptBlock(n, source)
	default:
		return nil
	}
}

// Fence returns the annotation and body of a parsed fenced code block.
func Fence(fcb *ast.FencedCodeBlock, source []byte) (Info, []byte) {
	var info Info

	if fcb.Info != nil {
		info = ParseInfo(fcb.Info.Segment.Value(source))
	}

	return info, blockCode(fcb, source)
}

func newBlock(fcb *ast.FencedCodeBlock, source []byte, lines lineIndex) *Block {
	block := new(Block)
	block.Info, block.Code = Fence(fcb, source)

	body := fcb.Lines()

	switch {
	case fcb.Info != nil:
		block.StartLine = lines.at(fcb.Info.Segment.Start)
	case body.Len() > 0:
		block.StartLine = lines.at(body.At(0).Start) - 1
	}

	switch {
	case body.Len() > 0:
		block.EndLine = lines.at(body.At(body.Len() - 1).Stop)
	case block.StartLine > 0:
		block.EndLine = block.StartLine + 1
	}

	return block
}

func blockCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

// bodyBounds returns the byte range of the block body. An empty body is
// the zero-width range just past the opening fence line; without an info
// string that position is unknown.
func bodyBounds(fcb *ast.FencedCodeBlock) (int, int, bool) {
	lines := fcb.Lines()
	if lines.Len() > 0 {
		return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
	}

	if fcb.Info == nil {
		return 0, 0, false
	}

	pos := fcb.Info.Segment.Stop + 1

	return pos, pos, true
}

func applyEdits(edits []edit, source []byte) []byte {
	size := len(source)
	for _, e := range edits {
		size += len(e.code) - (e.stop - e.start)
	}

	result := make([]byte, 0, size)
	last := 0

	for _, e := range edits {
		result = append(result, source[last:e.start]...)
		result = append(result, e.code...)
		last = e.stop
	}

	return append(result, source[last:]...)
}

// lineIndex holds the byte offset of every newline in a document.
type lineIndex []int

func newLineIndex(source []byte) lineIndex {
	var idx lineIndex

	for i, c := range source {
		if c == '\n' {
			idx = append(idx, i)
		}
	}

	return idx
}

// at returns the 1-based line containing offset.
func (idx lineIndex) at(offset int) int {
	return sort.SearchInts(idx, offset) + 1
}

var (
	reScriptOpen = regexp.MustCompile(`^\s*(<!--)?\s*<script\s*type=["']text/markdown["']\s*>\s*$`)
	reFence      = regexp.MustCompile("^\\s*```")
)

// unwrapScriptBlock recognizes a fenced block hidden from renderers inside a
// <script type="text/markdown"> element and returns it as a fenced block.
func unwrapScriptBlock(html *ast.HTMLBlock, source []byte) *ast.FencedCodeBlock {
	const minLines = 3

	lines := html.Lines()
	if lines.Len() < minLines {
		return nil
	}

	first := lines.At(0)
	if !reScriptOpen.Match(first.Value(source)) {
		return nil
	}

	open := lines.At(1)

	loc := reFence.FindIndex(open.Value(source))
	if loc == nil {
		return nil
	}

	last := lines.At(lines.Len() - 1)
	if !reFence.Match(last.Value(source)) {
		return nil
	}

	info := ast.NewTextSegment(text.NewSegment(open.Start+loc[1], open.Stop-1))
	fcb := ast.NewFencedCodeBlock(info)

	body := text.NewSegments()
	for i := 2; i < lines.Len()-1; i++ {
		body.Append(lines.At(i))
	}

	fcb.SetLines(body)

	return fcb
}
