package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgRootRe  = regexp.MustCompile(`<svg\b[^>]*>`)
	viewBoxRe  = regexp.MustCompile(`\sviewBox="\s*(-?[0-9.]+)[\s,]+(-?[0-9.]+)[\s,]+([0-9.]+)[\s,]+([0-9.]+)\s*"`)
	sizeAttrRe = regexp.MustCompile(`\s(width|height)="([^"]*)"`)
)

// normalizeViewBox makes the root <svg> element scale when embedded: width
// and height become the unitless size of the viewBox, and a viewBox is added
// from width and height when Graphviz left it out. All other attributes and
// any nested <svg> elements are kept as generated.
func normalizeViewBox(svg []byte) []byte {
	loc := svgRootRe.FindIndex(svg)
	if loc == nil {
		return svg
	}
	root := svg[loc[0]:loc[1]]

	var w, h float64
	viewBox := ""
	if m := viewBoxRe.FindSubmatch(root); m != nil {
		w, _ = strconv.ParseFloat(string(m[3]), 64)
		h, _ = strconv.ParseFloat(string(m[4]), 64)
	} else {
		for _, m := range sizeAttrRe.FindAllSubmatch(root, -1) {
			v := parseLength(string(m[2]))
			if string(m[1]) == "width" {
				w = v
			} else {
				h = v
			}
		}
		viewBox = fmt.Sprintf(` viewBox="0 0 %s %s"`, formatLength(w), formatLength(h))
	}
	if w <= 0 || h <= 0 {
		return svg
	}

	rest := sizeAttrRe.ReplaceAll(root[len("<svg"):], nil)
	var out bytes.Buffer
	out.Grow(len(svg) + 64)
	out.Write(svg[:loc[0]])
	fmt.Fprintf(&out, `<svg width="%s" height="%s"%s`, formatLength(w), formatLength(h), viewBox)
	out.Write(rest)
	out.Write(svg[loc[1]:])
	return out.Bytes()
}

// parseLength reads a length in points or pixels. Other units give zero.
func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "pt"), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
