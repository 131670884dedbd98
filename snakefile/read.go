package snakefile

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/geom"
)

// reader accumulates a Document line by line.
type reader struct {
	doc      *Document
	frame    *Frame
	curve    *Curve
	index    int  // snake index of the points in curve
	declared bool // curve was opened by a "#" line
}

// Read parses a snake file or a headerless curve file.
func Read(r io.Reader) (*Document, error) {
	rd := &reader{doc: &Document{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if unicode.IsLetter(rune(text[0])) {
			rd.header(text)
			continue
		}
		ln, err := lineParser.ParseString("", text)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "line %d: %v", n, err)
		}
		if err := rd.apply(ln); err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read snake file")
	}
	rd.flushCurve()
	rd.flushFrame()

	return rd.doc, nil
}

// ReadFile opens and parses path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return doc, nil
}

func (rd *reader) header(text string) {
	key, value := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		key, value = text[:i], strings.TrimSpace(text[i+1:])
	}
	if key == "image" {
		rd.doc.Image = value
		return
	}
	rd.doc.Headers = append(rd.doc.Headers, Header{Key: key, Value: value})
}

func (rd *reader) apply(ln *line) error {
	switch {
	case ln.Marker != nil && ln.Marker.Kind == "$":
		rd.doc.Sequence = true
		rd.flushCurve()
		rd.flushFrame()
		if ln.Marker.Arg != nil {
			rd.frame = &Frame{}
		}
	case ln.Marker != nil:
		rd.flushCurve()
		open := ln.Marker.Arg == nil || *ln.Marker.Arg != 0
		rd.ensureFrame()
		rd.curve = &Curve{Open: open}
		rd.declared = true
		rd.index = -1
	case ln.Junction != nil:
		rd.ensureFrame()
		rd.frame.Junctions = append(rd.frame.Junctions, geom.P(ln.Junction.X, ln.Junction.Y, ln.Junction.Z))
	case ln.Point != nil:
		p := ln.Point
		switch {
		case rd.curve == nil:
			rd.ensureFrame()
			rd.curve = &Curve{Open: true}
			rd.declared = false
		case !rd.declared && rd.index != p.Snake:
			rd.flushCurve()
			rd.curve = &Curve{Open: true}
		}
		rd.index = p.Snake
		rd.curve.Points = append(rd.curve.Points, geom.P(p.X, p.Y, p.Z))
		if p.Intensity != nil {
			rd.curve.Intensities = append(rd.curve.Intensities, *p.Intensity)
		}
	default:
		return ErrSyntax
	}

	return nil
}

func (rd *reader) ensureFrame() {
	if rd.frame == nil {
		rd.frame = &Frame{}
	}
}

func (rd *reader) flushCurve() {
	if rd.curve == nil {
		return
	}
	c := *rd.curve
	if len(c.Intensities) != len(c.Points) {
		c.Intensities = nil
	}
	rd.frame.Curves = append(rd.frame.Curves, c)
	rd.curve = nil
	rd.declared = false
}

func (rd *reader) flushFrame() {
	if rd.frame == nil {
		return
	}
	rd.doc.Frames = append(rd.doc.Frames, *rd.frame)
	rd.frame = nil
}
