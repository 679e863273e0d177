package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-supportform/pkg/view"
)

// Inspect parses an HTML page into a view.Document located at rawURL. Every
// element carrying an id becomes an element of the document; input values,
// selected options and textarea contents become values, and the text of
// leaf elements becomes the element's text.
func Inspect(r io.Reader, rawURL string) (*view.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse html: %w", err)
	}

	doc := view.NewDocument(rawURL)
	walk(root, func(n *html.Node) {
		id := attr(n, "id")
		if id == "" {
			return
		}
		doc.Add(id)
		switch n.Data {
		case "input":
			doc.SetValue(id, attr(n, "value"))
		case "textarea":
			doc.SetValue(id, textContent(n))
		case "select":
			doc.SetValue(id, selectedValue(n))
		default:
			if !isLeaf(n) {
				return
			}
			if text := strings.TrimSpace(textContent(n)); text != "" {
				doc.SetText(id, text)
			}
		}
	})
	return doc, nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func isLeaf(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return false
		}
	}
	return true
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return b.String()
}

// selectedValue mirrors the browser: the first option marked selected wins,
// otherwise the first option.
func selectedValue(n *html.Node) string {
	var options []*html.Node
	walk(n, func(node *html.Node) {
		if node.Data == "option" {
			options = append(options, node)
		}
	})
	if len(options) == 0 {
		return ""
	}
	chosen := options[0]
	for _, option := range options {
		if hasAttr(option, "selected") {
			chosen = option
			break
		}
	}
	if hasAttr(chosen, "value") {
		return attr(chosen, "value")
	}
	return strings.TrimSpace(textContent(chosen))
}
