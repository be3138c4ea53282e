package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code block languages of the examples.
const (
	sessionBlock = "session"
	consoleBlock = "console"
)

// Example is a session transcript of a topic: the commands and the output
// they print on a fresh session with the built-in prices.
type Example struct {
	Topic   string
	Line    int    // line of the session block in the topic
	Session string // commands, one per line
	Console string // expected output
}

// Title returns the text of the first level 1 heading of a topic.
func Title(topic string) (string, error) {
	source, root, err := parseTopic(topic)
	if err != nil {
		return "", err
	}

	var title string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = nodeText(h, source)
		return ast.WalkStop, nil
	})
	if title == "" {
		return "", fmt.Errorf("topic %q has no title", topic)
	}
	return title, nil
}

// Examples returns the examples of a topic, in order.
//
// An example is a "session" fenced code block followed by a "console" one.
func Examples(topic string) ([]Example, error) {
	source, root, err := parseTopic(topic)
	if err != nil {
		return nil, err
	}

	var examples []Example
	var pending *Example
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		line := lineNumber(source, fcb.Info.Segment.Start)

		switch string(fcb.Info.Segment.Value(source)) {
		case sessionBlock:
			if pending != nil {
				return ast.WalkStop, fmt.Errorf("%s.md:%d: session block without console block", topic, pending.Line)
			}
			pending = &Example{Topic: topic, Line: line, Session: blockContent(fcb, source)}
		case consoleBlock:
			if pending == nil {
				return ast.WalkStop, fmt.Errorf("%s.md:%d: console block without session block", topic, line)
			}
			pending.Console = blockContent(fcb, source)
			examples = append(examples, *pending)
			pending = nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("%s.md:%d: session block without console block", topic, pending.Line)
	}
	return examples, nil
}

func parseTopic(topic string) ([]byte, ast.Node, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return nil, nil, err
	}
	source := []byte(content)
	return source, goldmark.DefaultParser().Parse(text.NewReader(source)), nil
}

func blockContent(fcb *ast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	for i := 0; i < fcb.Lines().Len(); i++ {
		line := fcb.Lines().At(i)
		b.Write(line.Value(source))
	}
	return b.String()
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// lineNumber computes the line number of an offset in source, the parser does
// not keep track of it.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
