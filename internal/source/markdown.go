package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource handles Markdown files using goldmark. Headings and
// block contents become lines; a soft or hard break inside a block
// starts a new line, since the grammar classifies per line.
type MarkdownSource struct{}

func (s *MarkdownSource) Lines(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var lines []string
	emit := func(block string) {
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, line)
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			emit(string(node.Text(src)))
		case *ast.List:
			// Markdown swallows "1." style markers into list
			// structure, but the numbering is taskbook content;
			// put it back in front of each ordered item.
			num := node.Start
			if num == 0 {
				num = 1
			}
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				item := extractText(li, src)
				for i, line := range strings.Split(item, "\n") {
					if line == "" {
						continue
					}
					if i == 0 && node.IsOrdered() {
						line = fmt.Sprintf("%d. %s", num, line)
					}
					lines = append(lines, line)
				}
				num++
			}
		default:
			if t := extractText(n, src); t != "" {
				emit(t)
			}
		}
	}
	return lines, nil
}

// extractText gets the text content of a goldmark AST node. Blocks
// without parsed inlines (code blocks) fall back to their raw lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.FirstChild() == nil && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines and list items.
			buf.WriteString(extractText(c, src))
			if c.Type() == ast.TypeBlock {
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
