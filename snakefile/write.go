package snakefile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/geom"
)

// Write stores doc. Documents with Sequence set, or with more than one frame,
// are written as sequences.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "image\t%s\n", doc.Image)
	for _, h := range doc.Headers {
		fmt.Fprintf(bw, "%s\t%s\n", h.Key, h.Value)
	}

	seq := doc.Sequence || len(doc.Frames) > 1
	for i, f := range doc.Frames {
		if seq {
			fmt.Fprintf(bw, "$%d\n", i)
		}
		writeFrame(bw, f)
	}
	if seq {
		fmt.Fprintln(bw, "$")
	}

	return errors.Wrap(bw.Flush(), "write snake file")
}

func writeFrame(w io.Writer, f Frame) {
	for si, c := range f.Curves {
		open := 0
		if c.Open {
			open = 1
		}
		fmt.Fprintf(w, "#%d\n", open)
		withIntensity := len(c.Intensities) == len(c.Points)
		for j, p := range c.Points {
			fmt.Fprintf(w, "%d %11d %15g %15g %15g", si, j, p.X, p.Y, p.Z)
			if withIntensity {
				fmt.Fprintf(w, " %19g", c.Intensities[j])
			}
			fmt.Fprintln(w)
		}
	}
	for _, j := range f.Junctions {
		fmt.Fprintln(w, formatPoint(j))
	}
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("[%g, %g, %g]", p.X, p.Y, p.Z)
}

// WriteFile stores doc at path.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}
