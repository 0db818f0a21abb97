// Package report prints a finished run as text: a summary and an ASCII histogram.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Summary describes where balls landed.
type Summary struct {
	Total    uint64
	InFlight int
	Bins     []uint32

	// Mode is the fullest bin (lowest index on ties), -1 when empty.
	Mode   int
	Mean   float64
	StdDev float64
}

// Summarize computes bin statistics. bins is copied.
func Summarize(bins []uint32, inFlight int) Summary {
	s := Summary{
		Bins:     append([]uint32(nil), bins...),
		InFlight: inFlight,
		Mode:     -1,
	}

	var best uint32
	var sum float64
	for i, n := range bins {
		s.Total += uint64(n)
		sum += float64(i) * float64(n)
		if n > best {
			best = n
			s.Mode = i
		}
	}
	if s.Total == 0 {
		return s
	}

	s.Mean = sum / float64(s.Total)
	var sq float64
	for i, n := range bins {
		d := float64(i) - s.Mean
		sq += d * d * float64(n)
	}
	s.StdDev = math.Sqrt(sq / float64(s.Total))
	return s
}

// Write prints the summary table followed by the histogram plot.
func Write(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "balls landed: %d (in flight: %d)\n", s.Total, s.InFlight)
	if s.Total > 0 {
		fmt.Fprintf(&b, "mode bin:     %d\n", s.Mode)
		fmt.Fprintf(&b, "mean bin:     %.2f\n", s.Mean)
		fmt.Fprintf(&b, "std dev:      %.2f\n", s.StdDev)
	}

	b.WriteString("\nbin  count\n")
	for i, n := range s.Bins {
		fmt.Fprintf(&b, "%3d  %d\n", i, n)
	}

	if len(s.Bins) > 1 {
		data := make([]float64, len(s.Bins))
		for i, n := range s.Bins {
			data[i] = float64(n)
		}
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(len(data)*5),
			asciigraph.Caption("balls per bin"),
		))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
