package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveRelativePaths turns relative img[src] and a[href] values into
// file:// URLs under baseDir, so a preview saved elsewhere still finds the
// pictures attached to a notebook. An empty baseDir leaves the HTML as is.
//
// URLs, anchors, absolute paths and paths escaping baseDir are never touched.
func ResolveRelativePaths(htmlContent, baseDir string) (string, error) {
	if baseDir == "" {
		return htmlContent, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	root, fragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	walk(root, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Img:
			resolveAttr(n, "src", absBase)
		case atom.A:
			resolveAttr(n, "href", absBase)
		}
	})

	return renderHTML(root, fragment)
}

// parseHTML parses a full document or a body fragment. For fragments the
// returned node is a synthetic container holding the parsed nodes.
func parseHTML(content string) (*html.Node, bool, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders root back to text. Fragments render their children only,
// so no <html><body> wrapper appears.
func renderHTML(root *html.Node, fragment bool) (string, error) {
	var buf strings.Builder
	if !fragment {
		if err := html.Render(&buf, root); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// walk calls fn on every element node below n, depth first.
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func resolveAttr(n *html.Node, key, base string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}
		abs := filepath.Join(base, attr.Val)
		if !isPathUnderDir(abs, base) {
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
}

// isRelativePath reports whether p is a local relative path.
func isRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "//") {
		return false
	}
	for _, scheme := range []string{"http:", "https:", "file:", "data:", "mailto:"} {
		if strings.HasPrefix(strings.ToLower(p), scheme) {
			return false
		}
	}
	return !filepath.IsAbs(p)
}

func isPathUnderDir(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
