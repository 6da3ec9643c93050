package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/scenario"
)

// printer writes a report as aligned, optionally colored, text. The first
// write error is kept and later writes are skipped.
type printer[T polyclip.Scalar] struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

func (p *printer[T]) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer[T]) class(c polyclip.Classification) aurora.Value {
	switch c {
	case polyclip.Inside:
		return p.au.Green(c)
	case polyclip.OnEdge:
		return p.au.Yellow(c)
	case polyclip.Outside:
		return p.au.Red(c)
	}
	return p.au.Gray(12, c)
}

func (p *printer[T]) polygon(report *scenario.Report[T]) {
	p.printf("polygon %s\n", formatPoints(report.Polygon.Points))
	if report.Err != nil {
		p.printf("  %s %v\n", p.au.Red("malformed:"), report.Err)
	}
}

func (p *printer[T]) points(report *scenario.Report[T]) {
	for _, q := range report.Points {
		p.printf("point %s (%v): %s\n", p.au.Cyan(q.Name), q.At, p.class(q.Class))
	}
}

func (p *printer[T]) segments(report *scenario.Report[T]) {
	for _, s := range report.Segments {
		p.printf("segments %s %s x %s: ", p.au.Cyan(s.Name), formatPoints(s.A[:]), formatPoints(s.B[:]))
		if len(s.Intersections) == 0 {
			p.printf("%s\n", p.au.Red("none"))
			continue
		}
		p.printf("%s\n", p.au.Green(formatPoints(s.Intersections)))
	}
}

func (p *printer[T]) paths(report *scenario.Report[T]) {
	for _, path := range report.Paths {
		p.printf("path %s %s\n", p.au.Cyan(path.Name), formatPoints(path.Path))
		if len(path.Clipped) == 0 {
			p.printf("  %s\n", p.au.Red("nothing retained"))
		}
		for i := 0; i+1 < len(path.Clipped); i += 2 {
			p.printf("  %s\n", p.au.Green(formatPoints(path.Clipped[i:i+2])))
		}
	}
}

func formatPoints[T polyclip.Scalar](points []polyclip.Point[T]) string {
	parts := make([]string, len(points))
	for i, pt := range points {
		parts[i] = "(" + pt.String() + ")"
	}
	return strings.Join(parts, " ")
}
