package config

import "path/filepath"

// Output controls where and how runs are persisted.
type Output struct {
	Dir         string `fig:"dir"`
	Folder      string `fig:"folder"`
	Charts      bool   `fig:"charts"`
	ChartFormat string `fig:"chart_format"`
	CSV         bool   `fig:"csv"`
}

// Path joins the persistence folder and name under the output directory.
func (o Output) Path(name string) string {
	return filepath.Join(o.Dir, o.Folder, name)
}

func (c *config) Output() Output {
	return c.output.Do(func() interface{} {
		out := Output{
			Dir:         ".",
			Folder:      "NumbersGenerated",
			Charts:      true,
			ChartFormat: "png",
			CSV:         true,
		}
		c.section("output", &out)
		if out.ChartFormat != "pdf" {
			out.ChartFormat = "png"
		}
		return out
	}).(Output)
}

// Display limits what the terminal table and the charts show.
type Display struct {
	MaxRows   int `fig:"max_rows"`
	MaxPoints int `fig:"max_points"`
}

func (c *config) Display() Display {
	return c.display.Do(func() interface{} {
		d := Display{MaxRows: 1000, MaxPoints: 500}
		c.section("display", &d)
		return d
	}).(Display)
}

type Server struct {
	Addr string `fig:"addr"`
}

func (c *config) Server() Server {
	return c.server.Do(func() interface{} {
		s := Server{Addr: ":8080"}
		c.section("server", &s)
		return s
	}).(Server)
}
