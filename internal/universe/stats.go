package universe

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/unisim/internal/body"
)

// Stats is an aggregate view of the world for display.
type Stats struct {
	Total    int
	Counts   map[body.Kind]int
	Time     float64
	TickSize float64

	// Speed distribution over all bodies, zero when empty.
	MeanSpeed   float64
	SpeedStdDev float64
}

// Statistics computes per-kind counts, elapsed time, and the speed
// distribution of the current body set.
func (w *World) Statistics() Stats {
	s := Stats{
		Total:    len(w.bodies),
		Counts:   make(map[body.Kind]int, len(body.Kinds())),
		Time:     w.time,
		TickSize: w.tickSize,
	}

	speeds := make([]float64, 0, len(w.bodies))
	for _, b := range w.bodies {
		s.Counts[b.Kind]++
		speeds = append(speeds, b.Speed())
	}

	if len(speeds) > 0 {
		s.MeanSpeed = stat.Mean(speeds, nil)
		s.SpeedStdDev = stat.StdDev(speeds, nil)
	}
	return s
}

// Rows renders the statistics as ordered label/value pairs.
func (s Stats) Rows() [][2]string {
	rows := [][2]string{
		{"total objects", humanize.Comma(int64(s.Total))},
	}
	for _, k := range body.Kinds() {
		rows = append(rows, [2]string{k.String() + "s", humanize.Comma(int64(s.Counts[k]))})
	}
	rows = append(rows,
		[2]string{"time", fmt.Sprintf("%s years", humanize.CommafWithDigits(s.Time, 0))},
		[2]string{"time step", fmt.Sprintf("%.0f years", s.TickSize)},
		[2]string{"mean speed", fmt.Sprintf("%.2f", s.MeanSpeed)},
		[2]string{"speed stddev", fmt.Sprintf("%.2f", s.SpeedStdDev)},
	)
	return rows
}

// Describe returns display fields for a body: the common state plus the
// kind-specific attributes.
func Describe(b *body.Body) [][2]string {
	rows := [][2]string{
		{"name", b.Name},
		{"type", b.Kind.String()},
		{"mass", fmt.Sprintf("%.2e kg", b.Mass)},
		{"position", fmt.Sprintf("(%.1f, %.1f)", b.Position.X(), b.Position.Y())},
		{"velocity", fmt.Sprintf("(%.1f, %.1f)", b.Velocity.X(), b.Velocity.Y())},
		{"speed", fmt.Sprintf("%.1f", b.Speed())},
	}

	switch b.Kind {
	case body.Star:
		rows = append(rows,
			[2]string{"luminosity", fmt.Sprintf("%.2f solar", b.Attrs.Luminosity)},
			[2]string{"temperature", fmt.Sprintf("%.0f K", b.Attrs.Temperature)},
			[2]string{"age", fmt.Sprintf("%s years", humanize.SIWithDigits(b.Attrs.Age, 2, ""))},
		)
	case body.Planet:
		rows = append(rows,
			[2]string{"atmosphere", fmt.Sprintf("%t", b.Attrs.Atmosphere)},
			[2]string{"water", fmt.Sprintf("%t", b.Attrs.Water)},
			[2]string{"temperature", fmt.Sprintf("%.0f K", b.Attrs.Temperature)},
		)
	case body.Asteroid:
		rows = append(rows, [2]string{"composition", b.Attrs.Composition})
	case body.Nebula:
		rows = append(rows, [2]string{"density", fmt.Sprintf("%.2f", b.Attrs.Density)})
	case body.BlackHole:
		rows = append(rows, [2]string{"event horizon", fmt.Sprintf("%.1f", b.Attrs.EventHorizonRadius)})
	}
	return rows
}
