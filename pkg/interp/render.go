package interp

import (
	"bytes"
	"strings"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// Render prints n on one line. Each symbol renders itself applied to the
// rendering of its arguments. Partial applications print in prefix form.
func Render[D any](n syntax.Node[D]) string {
	return syntax.Fold(n, func(head *syntax.Leaf[D], args []string) string {
		return syntax.RenderApplied(head.Symbol, head.Sig(), args)
	})
}

// RenderSome renders a tree of hidden result type.
func RenderSome[D any](s syntax.Some[D]) string {
	return syntax.With(s, Render[D])
}

// DrawOptions controls DrawTree.
type DrawOptions struct {
	Unicode bool                // box drawing characters instead of ASCII
	Types   bool                // append the signature of every subtree
	Style   func(string) string // applied to symbol names, nil for plain text
}

type glyphs struct {
	tee, last, pipe, space string
}

var (
	asciiGlyphs   = glyphs{tee: "|-- ", last: "`-- ", pipe: "|   ", space: "    "}
	unicodeGlyphs = glyphs{tee: "├── ", last: "└── ", pipe: "│   ", space: "    "}
)

// TreePrinter draws trees one spine per line, arguments indented below
// their head symbol.
type TreePrinter[D any] struct {
	buf    bytes.Buffer
	glyphs glyphs
	opts   DrawOptions
}

func NewTreePrinter[D any](opts DrawOptions) *TreePrinter[D] {
	p := &TreePrinter[D]{glyphs: asciiGlyphs, opts: opts}
	if opts.Unicode {
		p.glyphs = unicodeGlyphs
	}
	return p
}

// Print draws n and returns the drawing. The printer is reset first.
func (p *TreePrinter[D]) Print(n syntax.Node[D]) string {
	p.buf.Reset()
	p.draw(n, "", "", "")
	return p.buf.String()
}

func (p *TreePrinter[D]) draw(n syntax.Node[D], prefix, branch, next string) {
	head, args := syntax.Spine(n)
	p.write(prefix + branch)
	p.label(head, n.Sig())
	p.writeln()
	for i, arg := range args {
		if i == len(args)-1 {
			p.draw(arg, prefix+next, p.glyphs.last, p.glyphs.space)
		} else {
			p.draw(arg, prefix+next, p.glyphs.tee, p.glyphs.pipe)
		}
	}
}

func (p *TreePrinter[D]) label(head *syntax.Leaf[D], sig syntax.SigRep) {
	name := syntax.RenderSymbol(head.Symbol)
	if p.opts.Style != nil {
		name = p.opts.Style(name)
	}
	p.write(name)
	if p.opts.Types {
		p.write(" :: " + sig.String())
	}
}

func (p *TreePrinter[D]) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter[D]) writeln() {
	p.buf.WriteByte('\n')
}

// DrawTree draws n with a fresh printer. The drawing has no trailing newline.
func DrawTree[D any](n syntax.Node[D], opts DrawOptions) string {
	return strings.TrimSuffix(NewTreePrinter[D](opts).Print(n), "\n")
}
