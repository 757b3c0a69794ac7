package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBot_FencedCodeBlock(t *testing.T) {
	content := "look at this:\n```go\nfmt.Println(\"hi\")\n```\ndone"

	blocks := ParseBot(content)

	require.Len(t, blocks, 3)
	assert.Equal(t, Line{Spans: []Span{Text("look at this:")}}, blocks[0])
	assert.Equal(t, CodeBlock{Lang: "go", Body: `fmt.Println("hi")`}, blocks[1])
	assert.Equal(t, Line{Spans: []Span{Text("done")}}, blocks[2])
}

func TestParseBot_FenceWithoutLanguage(t *testing.T) {
	blocks := ParseBot("```\nplain code\n```")

	require.Len(t, blocks, 1)
	assert.Equal(t, CodeBlock{Lang: "", Body: "plain code"}, blocks[0])
}

func TestParseBot_UnterminatedFenceIsLiteral(t *testing.T) {
	blocks := ParseBot("```python\nno closing fence here")

	require.Len(t, blocks, 2)
	assert.Equal(t, Line{Spans: []Span{Text("```python")}}, blocks[0])
	assert.Equal(t, Line{Spans: []Span{Text("no closing fence here")}}, blocks[1])
}

func TestParseBot_InlineCode(t *testing.T) {
	blocks := ParseBot("use `go build` to compile")

	require.Len(t, blocks, 1)
	line, ok := blocks[0].(Line)
	require.True(t, ok)
	assert.Equal(t, []Span{Text("use "), Code("go build"), Text(" to compile")}, line.Spans)
}

func TestParseBot_UnmatchedBacktickStaysLiteral(t *testing.T) {
	blocks := ParseBot("a lone ` backtick")

	require.Len(t, blocks, 1)
	line, ok := blocks[0].(Line)
	require.True(t, ok)
	assert.Equal(t, []Span{Text("a lone ` backtick")}, line.Spans)
}

func TestParseBot_Bullets(t *testing.T) {
	blocks := ParseBot("- first\n  - indented\n• dotted")

	require.Len(t, blocks, 3)
	for i, want := range []string{"first", "indented", "dotted"} {
		bullet, ok := blocks[i].(Bullet)
		require.True(t, ok, "block %d should be a bullet", i)
		assert.Equal(t, []Span{Text(want)}, bullet.Spans)
	}
}

func TestParseUser_NeverInterpretsMarkup(t *testing.T) {
	content := "```go\nnot code\n```\nand `not inline` either"

	blocks := ParseUser(content)

	require.Len(t, blocks, 4)
	for _, block := range blocks {
		line, ok := block.(Line)
		require.True(t, ok)
		require.Len(t, line.Spans, 1)
		_, isText := line.Spans[0].(Text)
		assert.True(t, isText, "user spans must be literal text")
	}
}

func TestParse_TotalOnHostileInput(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"``````",
		"```a```",
		strings.Repeat("`", 101),
		strings.Repeat("- \n```\n", 50),
		"• ",
		"```" + strings.Repeat("x", 10000),
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			ParseBot(input)
			ParseUser(input)
		}, "input %q", input)
	}
}

func TestRenderPlain_FallbackIsIdempotent(t *testing.T) {
	// rendering the fallback output and parsing it again must be a
	// no-op change
	inputs := []string{
		"hello there",
		"line one\nline two",
		"plain text with spaces   kept",
	}

	for _, input := range inputs {
		once := RenderPlain(ParseUser(input))
		twice := RenderPlain(ParseUser(once))
		assert.Equal(t, input, once)
		assert.Equal(t, once, twice)
	}
}

func TestRenderPlain_AlwaysReturnsString(t *testing.T) {
	blocks := ParseBot("mix of `code`\n```sh\nls\n```\n- and a bullet")

	out := RenderPlain(blocks)

	assert.Contains(t, out, "code")
	assert.Contains(t, out, "ls")
	assert.Contains(t, out, "• and a bullet")
}
