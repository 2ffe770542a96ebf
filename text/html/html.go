/*
Package html creates text buffers from the textual content of HTML.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/collections/text"
	"golang.org/x/net/html"
)

// InnerText creates a text buffer for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*text.Buffer, error) {
	if n == nil {
		return nil, ErrNoNode
	}
	b := text.New()
	collectText(n, b)
	return b, nil
}

// TextFromHTML creates a text buffer from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*text.Buffer, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := text.New()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b, nil
}

func collectText(n *html.Node, b *text.Buffer) {
	if n.Type == html.TextNode {
		b.AppendText(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
