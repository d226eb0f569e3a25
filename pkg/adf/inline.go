package adf

import "strings"

// parseInline tokenizes one line of ordinary text into text nodes
// carrying inline marks. Code spans are cut out first; the remaining
// segments get a single bold/italic split pass. Content inside a code
// span is never scanned for emphasis, and nested emphasis is not
// supported: the pass treats delimiters literally and does not recurse
// into matched spans.
func parseInline(line string) []*Node {
	var nodes []*Node

	rest := line
	for {
		open := strings.IndexByte(rest, '`')
		if open < 0 {
			break
		}
		span := strings.IndexByte(rest[open+1:], '`')
		if span < 0 {
			break
		}
		nodes = append(nodes, splitEmphasis(rest[:open])...)
		nodes = append(nodes, newTextNode(rest[open+1:open+1+span], &Mark{Type: MarkCode}))
		rest = rest[open+span+2:]
	}
	nodes = append(nodes, splitEmphasis(rest)...)

	if len(nodes) == 0 {
		nodes = []*Node{newTextNode(line)}
	}
	return nodes
}

// splitEmphasis scans a code-free segment left to right for **strong**
// and *em* runs. Unmatched delimiters stay literal characters.
func splitEmphasis(segment string) []*Node {
	if segment == "" {
		return nil
	}

	var nodes []*Node
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, newTextNode(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(segment) {
		if segment[i] != '*' {
			plain.WriteByte(segment[i])
			i++
			continue
		}

		if strings.HasPrefix(segment[i:], "**") {
			if end := strings.Index(segment[i+2:], "**"); end > 0 {
				flushPlain()
				nodes = append(nodes, newTextNode(segment[i+2:i+2+end], &Mark{Type: MarkStrong}))
				i += end + 4
				continue
			}
		}

		if end := strings.IndexByte(segment[i+1:], '*'); end > 0 {
			flushPlain()
			nodes = append(nodes, newTextNode(segment[i+1:i+1+end], &Mark{Type: MarkEm}))
			i += end + 2
			continue
		}

		// stray asterisk
		plain.WriteByte('*')
		i++
	}

	flushPlain()
	return nodes
}
