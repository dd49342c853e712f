package export

import (
	"fmt"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
)

const (
	pageWidth    = 816
	pageMargin   = 48
	titleHeight  = 64
	rowHeight    = 20
	depthIndent  = 24
	charWidth    = 7
	headingSpace = 8
)

var (
	colorPage    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBanner  = color.RGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff} // indigo
	colorHeading = color.RGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
	colorLabel   = color.RGBA{R: 0x79, G: 0x86, B: 0xcb, A: 0xff} // light indigo
	colorBody    = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	colorRule    = color.RGBA{R: 0xe8, G: 0xea, B: 0xf6, A: 0xff}
)

// pageRow is a positioned piece of text on the page.
type pageRow struct {
	x, y    int
	text    string
	heading bool
	label   bool
}

type pageLayout struct {
	title  string
	width  int
	height int
	rows   []pageRow
}

func buildPage(doc Document) pageLayout {
	p := pageLayout{title: doc.Title, width: pageWidth}
	y := pageMargin + titleHeight + rowHeight
	for _, l := range layout(doc.Record) {
		x := pageMargin + l.depth*depthIndent
		if l.heading {
			y += headingSpace
			p.rows = append(p.rows, pageRow{x: x, y: y, text: l.label, heading: true})
			y += rowHeight
			continue
		}
		p.rows = append(p.rows, pageRow{x: x, y: y, text: l.label + ":", label: true})
		y += rowHeight
		cols := (pageWidth - pageMargin - x - depthIndent) / charWidth
		for _, row := range wrap(l.text, cols) {
			p.rows = append(p.rows, pageRow{x: x + depthIndent/2, y: y, text: row})
			y += rowHeight
		}
	}
	p.height = y + pageMargin
	return p
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func writeSVG(w io.Writer, doc Document) error {
	p := buildPage(doc)
	canvas := svg.New(w)
	canvas.Start(p.width, p.height)
	canvas.Rect(0, 0, p.width, p.height, "fill:"+css(colorPage))
	canvas.Roundrect(pageMargin/2, pageMargin/2, p.width-pageMargin, titleHeight, 8, 8, "fill:"+css(colorBanner))
	canvas.Text(p.width/2, pageMargin/2+titleHeight/2+8, p.title,
		"text-anchor:middle;font-family:sans-serif;font-size:24px;fill:#ffffff")
	for _, r := range p.rows {
		style := "font-family:sans-serif;font-size:13px;fill:" + css(colorBody)
		switch {
		case r.heading:
			style = "font-family:sans-serif;font-size:16px;font-weight:bold;fill:" + css(colorHeading)
			canvas.Line(r.x, r.y+4, p.width-pageMargin, r.y+4, "stroke:"+css(colorRule))
		case r.label:
			style = "font-family:sans-serif;font-size:13px;font-weight:bold;fill:" + css(colorLabel)
		}
		canvas.Text(r.x, r.y, r.text, style)
	}
	canvas.End()
	return nil
}

func writePNG(path string, doc Document) error {
	p := buildPage(doc)
	dc := gg.NewContext(p.width, p.height)
	dc.SetColor(colorPage)
	dc.Clear()

	dc.SetColor(colorBanner)
	dc.DrawRoundedRectangle(pageMargin/2, pageMargin/2, float64(p.width-pageMargin), titleHeight, 8)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorPage)
	dc.DrawStringAnchored(p.title, float64(p.width)/2, pageMargin/2+titleHeight/2, 0.5, 0.5)

	for _, r := range p.rows {
		switch {
		case r.heading:
			dc.SetColor(colorRule)
			dc.SetLineWidth(1)
			dc.DrawLine(float64(r.x), float64(r.y+4), float64(p.width-pageMargin), float64(r.y+4))
			dc.Stroke()
			dc.SetColor(colorHeading)
		case r.label:
			dc.SetColor(colorLabel)
		default:
			dc.SetColor(colorBody)
		}
		dc.DrawString(r.text, float64(r.x), float64(r.y))
	}
	return dc.SavePNG(path)
}
