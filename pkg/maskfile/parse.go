// SPDX-License-Identifier: MPL-2.0

package maskfile

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Parse builds the command tree from maskfile markdown source.
//
// The document is scanned linearly: a level-1 heading sets the title, a
// heading of level n >= 2 opens a command nested n-2 levels deep, the first
// paragraph or blockquote after a heading becomes that command's description,
// and the first
// fenced code block after a heading becomes its script. Content that appears
// before any command heading is ignored.
func Parse(source []byte) (*Maskfile, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(source))

	mf := &Maskfile{}

	// stack holds the chain of open commands, shallowest first. frames at a
	// level >= an incoming heading's level are closed before attaching it.
	type frame struct {
		level int
		cmd   *Command
	}
	var stack []frame
	var current *Command

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gast.Heading:
			text := flattenText(node, source)
			if node.Level == 1 {
				if mf.Title == "" {
					mf.Title = text
				}
				stack = stack[:0]
				current = nil
				continue
			}

			for len(stack) > 0 && stack[len(stack)-1].level >= node.Level {
				stack = stack[:len(stack)-1]
			}

			cmd := &Command{Name: commandName(text)}
			if cmd.Name == "" {
				current = nil
				continue
			}
			if len(stack) == 0 {
				mf.Commands = append(mf.Commands, cmd)
			} else {
				parent := stack[len(stack)-1].cmd
				parent.Subcommands = append(parent.Subcommands, cmd)
			}
			stack = append(stack, frame{level: node.Level, cmd: cmd})
			current = cmd

		case *gast.Paragraph, *gast.Blockquote:
			// Descriptions appear as either a plain paragraph or, in the
			// conventional maskfile style, a blockquote under the heading.
			if current != nil && current.Description == "" && current.Script == nil {
				current.Description = flattenText(node, source)
			}

		case *gast.FencedCodeBlock:
			if current == nil || current.Script != nil {
				continue
			}
			executor := ""
			if lang := node.Language(source); lang != nil {
				executor = string(lang)
			}
			current.Script = &Script{
				Executor: executor,
				Source:   blockSource(node, source),
			}
		}
	}

	return mf, nil
}

// flattenText collects the plain text of a node's inline content.
func flattenText(n gast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gast.Walk(n, func(c gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		if t, ok := c.(*gast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return gast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// blockSource reassembles the raw body of a fenced code block.
func blockSource(n *gast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// commandName strips argument annotations from a heading, keeping only the
// command words: "serve (port)" and "rm <path>" become "serve" and "rm".
func commandName(heading string) string {
	if i := strings.IndexAny(heading, "(<["); i >= 0 {
		heading = heading[:i]
	}
	return strings.TrimSpace(heading)
}
