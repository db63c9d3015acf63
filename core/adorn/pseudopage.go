package adorn

import (
	"strconv"

	"github.com/FocuswithJustin/adorner/core/xml"
)

const (
	milestoneElement = "milestone"
	pseudoPageUnit   = "pseudopage"
)

// pseudoPager inserts pseudo-page milestones every size words.
//
// With a known word quota the tail of the document that would make a short
// final page is added to the previous page instead, and no page is opened
// once the quota is used up.
type pseudoPager struct {
	sink xml.Handler

	size       int
	quota      int
	quotaKnown bool

	index   int
	words   int
	emitted int
	open    bool
}

func newPseudoPager(sink xml.Handler, size int, maxima *Maxima) *pseudoPager {
	p := &pseudoPager{sink: sink, size: size}
	if maxima != nil {
		p.quota = maxima.Words
		p.quotaKnown = true
	}
	return p
}

func (p *pseudoPager) enabled() bool {
	return p.size > 0
}

// exhausted reports whether every word of the quota has been emitted.
func (p *pseudoPager) exhausted() bool {
	return p.quotaKnown && p.emitted >= p.quota
}

// filled reports whether the open page is complete and enough words remain
// for another full page.
func (p *pseudoPager) filled() bool {
	if p.words < p.size {
		return false
	}
	return !p.quotaKnown || p.quota-p.emitted >= p.size
}

// countWord records one completed word.
func (p *pseudoPager) countWord() {
	p.emitted++
	if p.open {
		p.words++
	}
}

func (p *pseudoPager) start(path string) error {
	p.index++
	p.words = 0
	p.open = true
	return p.milestone("start", path)
}

func (p *pseudoPager) end(path string) error {
	p.open = false
	return p.milestone("end", path)
}

// closeIfDone ends the open page when it is filled or the quota is reached.
func (p *pseudoPager) closeIfDone(path string) error {
	if p.open && (p.filled() || p.exhausted()) {
		return p.end(path)
	}
	return nil
}

func (p *pseudoPager) milestone(position, path string) error {
	attrs := xml.Attributes{
		{Name: "unit", Value: pseudoPageUnit},
		{Name: "n", Value: strconv.Itoa(p.index)},
		{Name: "position", Value: position},
	}
	if path != "" {
		attrs = append(attrs, xml.Attr{Name: attrPath, Value: path})
	}
	if err := p.sink.StartElement(milestoneElement, attrs); err != nil {
		return err
	}
	return p.sink.EndElement(milestoneElement)
}
