package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Seed     uint64
	Config   config.Config
	Step     time.Duration
	MaxTicks int
	Realtime bool

	// Results
	Games     []GameResult
	TotalTime time.Duration
	Stats     engine.Stats
	Totals    Totals
}

type Totals struct {
	Games      int
	Finished   int
	Points     uint64
	BestPoints uint64
	Lines      uint
	MaxLevel   uint
	Ticks      int
	AvgPoints  float64
}

func (r *Report) Finalize() {
	t := Totals{Games: len(r.Games)}
	for _, g := range r.Games {
		if g.GameOver {
			t.Finished++
		}
		t.Points += g.Score.Points
		t.BestPoints = max(t.BestPoints, g.Score.Points)
		t.Lines += g.Score.Lines
		t.MaxLevel = max(t.MaxLevel, g.Score.Level)
		t.Ticks += g.Ticks
	}
	if t.Games > 0 {
		t.AvgPoints = float64(t.Points) / float64(t.Games)
	}
	r.Totals = t
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `# Blockfall Simulation Report

## Configuration
- **Seed:** {{.Seed}}
- **Playfield:** {{.Config.Columns}}x{{.Config.Rows}}
- **Gravity:** {{.Config.Gravity}} (soft drop {{.Config.SoftDropGravity}})
- **Step:** {{.Step}}{{if .Realtime}} (real time){{else}}, max {{.MaxTicks}} ticks per game{{end}}

## Games
| # | Points | Lines | Level | Pieces | Singles | Doubles | Triples | Quads | Ticks | Game Time | Ended |
|---|--------|-------|-------|--------|---------|---------|---------|-------|-------|-----------|-------|
{{- range $i, $g := .Games}}
| {{inc $i}} | {{$g.Score.Points}} | {{$g.Score.Lines}} | {{$g.Score.Level}} | {{$g.Pieces}} | {{index $g.Cleared 0}} | {{index $g.Cleared 1}} | {{index $g.Cleared 2}} | {{index $g.Cleared 3}} | {{$g.Ticks}} | {{$g.Clock}} | {{if $g.GameOver}}game over{{else}}tick limit{{end}} |
{{- end}}

## Totals
- **Games:** {{.Totals.Games}} ({{.Totals.Finished}} reached game over)
- **Points:** {{.Totals.Points}} (best {{.Totals.BestPoints}}, avg {{printf "%.1f" .Totals.AvgPoints}})
- **Lines:** {{.Totals.Lines}}
- **Highest Level:** {{.Totals.MaxLevel}}
- **Ticks:** {{.Totals.Ticks}}
- **Wall Time:** {{.TotalTime}}
{{with .Stats.Scheduler}}
## Systems ({{.Frames}} frames, clock {{.Clock}})
| System | Runs | Avg | Min | Max | Total |
|--------|------|-----|-----|-----|-------|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} | {{.TotalDuration}} |
{{- end}}
{{end}}
## Resources
{{- range .Stats.World.ResourceTypes}}
- {{.}}
{{- end}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
