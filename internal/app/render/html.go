package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"logweave/internal/ansi"
	"logweave/internal/app/errors"
	"logweave/internal/app/window"
	"logweave/internal/overlay"
)

// HTMLOptions configures the HTML renderer
type HTMLOptions struct {
	// Selector is the CSS selector of the container, a plain class like ".log"
	Selector string
	// Standalone wraps the lines in a complete document with the palette stylesheet
	Standalone bool
	// Title of a standalone document
	Title string
}

// htmlRenderer writes lines as div elements holding class spans
type htmlRenderer struct {
	opts HTMLOptions
}

// NewHTML creates an HTML Renderer
func NewHTML(opts HTMLOptions) Renderer {
	return &htmlRenderer{opts: opts}
}

func (r *htmlRenderer) Render(w io.Writer, lines []window.Line) error {
	container := element(atom.Div, "class", containerClass(r.opts.Selector))

	for _, l := range lines {
		container.AppendChild(lineNode(l))
	}

	root := container
	if r.opts.Standalone {
		root = r.document(container)
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFailedToRender, err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFailedToRender, err)
	}

	return nil
}

// document builds <html><head><style/></head><body>container</body></html>
func (r *htmlRenderer) document(container *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))

	if r.opts.Title != "" {
		title := element(atom.Title)
		title.AppendChild(text(r.opts.Title))
		head.AppendChild(title)
	}

	style := element(atom.Style)
	style.AppendChild(text(ansi.GenerateStyle(r.opts.Selector)))
	head.AppendChild(style)

	body := element(atom.Body)
	body.AppendChild(container)

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	return doc
}

// lineNode renders one line as a div holding a span per classed range
func lineNode(l window.Line) *html.Node {
	div := element(atom.Div,
		"class", "line "+lineTypeClass(l.Type),
		"data-line", strconv.Itoa(l.Index),
	)

	if len(l.Classes) == 0 {
		if l.Text != "" {
			div.AppendChild(text(l.Text))
		}

		return div
	}

	for i, part := range overlay.Text(l.Text, l.Classes) {
		if part == "" {
			continue
		}

		if l.Classes[i].Classes == "" {
			div.AppendChild(text(part))
			continue
		}

		span := element(atom.Span, "class", l.Classes[i].Classes)
		span.AppendChild(text(part))
		div.AppendChild(span)
	}

	return div
}

// containerClass turns a class selector into the class attribute value
func containerClass(selector string) string {
	class := strings.TrimPrefix(strings.TrimSpace(selector), ".")
	if class == "" || strings.ContainsAny(class, " .#>[:") {
		return "log"
	}

	return class
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}

	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}

	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
