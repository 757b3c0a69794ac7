// Package markup parses chat message content into a small typed node
// tree. Bot messages carry a constrained markdown subset (fenced code,
// inline code, bullets); user messages are always literal text.
package markup

// Span is an inline element within a line.
type Span interface {
	span()
}

// literal text
type Text string

// inline code, single-backtick delimited in the source
type Code string

func (Text) span() {}
func (Code) span() {}

// Block is a top-level element of a parsed message.
type Block interface {
	block()
}

// a plain line of spans
type Line struct {
	Spans []Span
}

// a bulleted line of spans
type Bullet struct {
	Spans []Span
}

// a fenced code block with an optional language tag
type CodeBlock struct {
	Lang string
	Body string
}

func (Line) block()      {}
func (Bullet) block()    {}
func (CodeBlock) block() {}
