package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type walkState int

const (
	stateSearching walkState = iota
	stateFoundTarget
	stateAccumulating
	stateDone
)

func (s walkState) String() string {
	switch s {
	case stateSearching:
		return "searching"
	case stateFoundTarget:
		return "found_target"
	case stateAccumulating:
		return "accumulating"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// Heading is a heading element among the siblings of a section walk
type Heading struct {
	Node  *html.Node
	Level int
	Text  string
	// Index is the position of the heading among the walked siblings
	Index int
}

// Section is a heading and the sibling elements that follow it
type Section struct {
	Heading Heading
	Body    []*html.Node

	siblings []*html.Node
}

// SectionWalker finds one section in a flat list of sibling elements. It
// searches for the first heading accepted by Match, then accumulates the
// following siblings until Stop accepts a heading or the siblings run out.
type SectionWalker struct {
	Match func(h Heading) bool

	// Stop ends the section at a heading. Defaults to StopAtSameOrHigher.
	Stop func(h, target Heading) bool
}

// StopAtSameOrHigher ends a section at the next heading of the same or a
// higher rank than the target
func StopAtSameOrHigher(h, target Heading) bool {
	return h.Level <= target.Level
}

// Walk runs the walker over the contents of container: its child elements
// and any non-blank text between them
func (w SectionWalker) Walk(container *goquery.Selection) (*Section, bool) {
	return w.WalkNodes(contents(container))
}

func contents(container *goquery.Selection) []*html.Node {
	var out []*html.Node
	for _, n := range container.Contents().Nodes {
		switch n.Type {
		case html.ElementNode:
			out = append(out, n)
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				out = append(out, n)
			}
		}
	}
	return out
}

// WalkNodes runs the walker over siblings
func (w SectionWalker) WalkNodes(siblings []*html.Node) (*Section, bool) {
	stop := w.Stop
	if stop == nil {
		stop = StopAtSameOrHigher
	}

	state := stateSearching
	var section *Section
	for i, n := range siblings {
		heading, isHeading := headingAt(siblings, i)

		switch state {
		case stateSearching:
			if isHeading && w.Match(heading) {
				section = &Section{Heading: heading, siblings: siblings}
				state = stateFoundTarget
			}
			continue
		case stateFoundTarget, stateAccumulating:
			if isHeading && stop(heading, section.Heading) {
				state = stateDone
			} else {
				section.Body = append(section.Body, n)
				state = stateAccumulating
			}
		}
		if state == stateDone {
			break
		}
	}

	if section == nil {
		return nil, false
	}
	return section, true
}

// Headings returns every heading in siblings
func Headings(container *goquery.Selection) []Heading {
	siblings := contents(container)
	var out []Heading
	for i := range siblings {
		if h, ok := headingAt(siblings, i); ok {
			out = append(out, h)
		}
	}
	return out
}

func headingAt(siblings []*html.Node, i int) (Heading, bool) {
	level := HeadingLevel(siblings[i])
	if level == 0 {
		return Heading{}, false
	}
	return Heading{
		Node:  siblings[i],
		Level: level,
		Text:  CleanText(textContent(siblings[i])),
		Index: i,
	}, true
}

// Parents walks backward from the section heading and returns its two
// nearest enclosing headings, each of a strictly higher rank than the one
// found before it. Either may be missing.
func (s *Section) Parents() (nearer, farther *Heading) {
	level := s.Heading.Level
	for i := s.Heading.Index - 1; i >= 0; i-- {
		h, ok := headingAt(s.siblings, i)
		if !ok || h.Level >= level {
			continue
		}
		if nearer == nil {
			nearer = &h
		} else {
			farther = &h
			return nearer, farther
		}
		level = h.Level
	}
	return nearer, farther
}

// VariantOf resolves the named block a section is nested in: when the
// nearer enclosing heading starts with a marker accepted by isMarker, the
// farther enclosing heading names the variant.
func (s *Section) VariantOf(isMarker func(text string) bool) (string, bool) {
	nearer, farther := s.Parents()
	if nearer == nil || farther == nil || !isMarker(nearer.Text) {
		return "", false
	}
	return farther.Text, true
}

// Paragraphs sanitizes the section body element by element. Bare text and
// inline elements lying directly in the body are gathered into one block
// each. Tables are flattened into one bullet per row. Blocks rejected by
// keep are skipped.
func (s *Section) Paragraphs(sanitizer *Sanitizer, keep func(n *goquery.Selection) bool) ([]string, error) {
	var out []string
	var run []*html.Node

	emit := func(sel *goquery.Selection, n *html.Node) error {
		if keep != nil && !keep(sel) {
			return nil
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			out = append(out, TableRows(sel)...)
			return nil
		}
		parts, err := sanitizer.Sanitize(sel)
		if err != nil {
			return err
		}
		out = append(out, parts...)
		return nil
	}
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		block := inlineBlock(run)
		run = nil
		return emit(goquery.NewDocumentFromNode(block).Selection, block)
	}

	for _, n := range s.Body {
		if isInline(n) {
			run = append(run, n)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		if err := emit(goquery.NewDocumentFromNode(n).Selection, n); err != nil {
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

var inlineAtoms = map[atom.Atom]bool{
	atom.A: true, atom.Abbr: true, atom.B: true, atom.Br: true, atom.Code: true,
	atom.Em: true, atom.I: true, atom.Span: true, atom.Strong: true, atom.Sub: true, atom.Sup: true,
}

func isInline(n *html.Node) bool {
	return n.Type == html.TextNode || (n.Type == html.ElementNode && inlineAtoms[n.DataAtom])
}

// inlineBlock wraps copies of run in a detached paragraph
func inlineBlock(run []*html.Node) *html.Node {
	block := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	for _, n := range run {
		for _, c := range goquery.NewDocumentFromNode(n).Selection.Clone().Nodes {
			block.AppendChild(c)
		}
	}
	return block
}

// TableRows flattens a table into "• first: rest" bullets, one per body row
func TableRows(table *goquery.Selection) []string {
	var rows []string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			if text := CleanText(td.Text()); text != "" {
				cells = append(cells, text)
			}
		})
		switch len(cells) {
		case 0:
			return
		case 1:
			rows = append(rows, BulletMark+cells[0])
		default:
			rows = append(rows, BulletMark+cells[0]+": "+strings.Join(cells[1:], ", "))
		}
	})
	return rows
}
