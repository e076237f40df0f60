// Package presenter runs generators and mappers on behalf of the command
// line and the HTTP server: it validates input, persists the produced
// sequences, draws charts and prints tables.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"prng-go/internal/config"
	"prng-go/internal/metrics"
	"prng-go/internal/solver"
	"prng-go/pkg/distribution"
	"prng-go/pkg/pseudorandom"
	"prng-go/pkg/readseries"
	"prng-go/pkg/uniformity"
)

// ErrNoSource is returned when a mapper is asked to run on an empty Ri sequence.
var ErrNoSource = errors.New("generate numbers with the selected method first")

var csvHeader = []string{"Xi", "Ri", "Ni"}

// Options select the optional steps of a run.
type Options struct {
	// Persist writes the JSON document, the CSV table and the chart.
	Persist bool
	// Check runs the uniformity checks on generated Ri values.
	Check bool
	// Bins is the chi-square bin count used by Check.
	Bins int
	// Fit estimates mean and standard deviation of a normal-inverse histogram.
	Fit bool
}

type Presenter struct {
	log     *logan.Entry
	out     config.Output
	display config.Display
	metrics *metrics.Metrics
	w       io.Writer
}

// New builds a presenter. w may be nil, in which case nothing is printed.
func New(cfg config.Config, m *metrics.Metrics, w io.Writer) *Presenter {
	return &Presenter{
		log:     cfg.Log(),
		out:     cfg.Output(),
		display: cfg.Display(),
		metrics: m,
		w:       w,
	}
}

// WithOutputDir returns a copy of p persisting under dir.
func (p *Presenter) WithOutputDir(dir string) *Presenter {
	c := *p
	c.out.Dir = dir
	return &c
}

// WithWriter returns a copy of p printing tables to w.
func (p *Presenter) WithWriter(w io.Writer) *Presenter {
	c := *p
	c.w = w
	return &c
}

// GeneratorReport is the outcome of one generator run.
type GeneratorReport struct {
	Method  pseudorandom.Method `json:"method"`
	Series  pseudorandom.Series `json:"series"`
	Centers []int64             `json:"centers,omitempty"`
	File    string              `json:"file,omitempty"`
	Checks  []uniformity.Result `json:"checks,omitempty"`
}

// UniformReport is the outcome of one uniform mapping.
type UniformReport struct {
	Ri   []float64 `json:"ri"`
	Ni   []float64 `json:"ni"`
	File string    `json:"file,omitempty"`
}

// NormalReport is the outcome of one normal-inverse mapping.
type NormalReport struct {
	distribution.Result
	Fit  *solver.Fit `json:"fit,omitempty"`
	File string      `json:"file,omitempty"`
}

// RunGenerator validates g, runs it and persists its Ri sequence.
// Parameter errors are returned unwrapped.
func (p *Presenter) RunGenerator(g pseudorandom.Generator, opts Options) (*GeneratorReport, error) {
	method := g.Method()
	log := p.log.WithFields(logan.F{"method": method})

	if err := ValidateGenerator(g); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &GeneratorReport{Method: method}
	var err error
	switch params := g.(type) {
	case pseudorandom.MiddleSquareParams:
		report.Series, report.Centers, err = middleSquare(params)
	case *pseudorandom.MiddleSquareParams:
		report.Series, report.Centers, err = middleSquare(*params)
	default:
		report.Series, err = g.Generate()
	}
	p.metrics.Observe(string(method), start, report.Series.Len(), err)
	if err != nil {
		return nil, err
	}

	log = log.WithField("iterations", report.Series.Len())

	if opts.Check {
		bins := opts.Bins
		if bins < 2 {
			bins = 10
		}
		report.Checks, err = uniformity.Run(report.Series.Ri, bins, uniformity.DefaultAlpha)
		if err != nil {
			return nil, errors.Wrap(err, "failed to run uniformity checks")
		}
	}

	if opts.Persist {
		report.File = p.out.Path(method.FileName())
		if err := p.persistSeries(report); err != nil {
			return nil, err
		}
		log = log.WithField("file", report.File)
	}

	if err := p.printGenerator(report); err != nil {
		return nil, errors.Wrap(err, "failed to print table")
	}

	log.Info("numbers generated")
	return report, nil
}

func middleSquare(p pseudorandom.MiddleSquareParams) (pseudorandom.Series, []int64, error) {
	ms, err := pseudorandom.MiddleSquare(p)
	return ms.Series, ms.Centers, err
}

func (p *Presenter) persistSeries(report *GeneratorReport) error {
	if err := SaveNumbers(report.Series.Ri, report.File); err != nil {
		return err
	}
	if p.out.CSV {
		if err := SaveDenseToCSV(report.Series.Matrix(), csvHeader, p.sibling(report.File, "csv")); err != nil {
			return err
		}
	}
	if p.out.Charts {
		title := fmt.Sprintf("%s Ri", report.Method)
		err := GenerateScatter(p.sibling(report.File, p.out.ChartFormat), title, "Ri", report.Series.Ri, p.display.MaxPoints)
		if err != nil {
			return errors.Wrap(err, "failed to draw chart", logan.F{"method": report.Method})
		}
	}
	return nil
}

// sibling replaces the extension of a persisted JSON file.
func (p *Presenter) sibling(file, ext string) string {
	return strings.TrimSuffix(file, ".json") + "." + ext
}

func (p *Presenter) printGenerator(report *GeneratorReport) error {
	if p.w == nil {
		return nil
	}
	s := report.Series
	if err := writeTable(p.w, p.display.MaxRows,
		column{"Xi", s.Xi}, column{"Ri", s.Ri}, column{"Ni", s.Ni}); err != nil {
		return err
	}
	for _, check := range report.Checks {
		if _, err := fmt.Fprintln(p.w, check.String()); err != nil {
			return err
		}
	}
	return nil
}

// LoadSource reads the Ri sequence persisted by a previous run of method.
func (p *Presenter) LoadSource(method pseudorandom.Method) ([]float64, error) {
	file := p.out.Path(method.FileName())
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, ErrNoSource
	}
	ri, err := readseries.ReadSeries(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source", logan.F{"file": file})
	}
	if len(ri) == 0 {
		return nil, ErrNoSource
	}
	return ri, nil
}

// LoadInput reads an Ri sequence from any JSON document or text table.
func (p *Presenter) LoadInput(file string) ([]float64, error) {
	ri, err := readseries.ReadSeries(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input", logan.F{"file": file})
	}
	if len(ri) == 0 {
		return nil, ErrNoSource
	}
	return ri, nil
}

// RunMapper runs whichever mapper distribution.NewMapper picked.
func (p *Presenter) RunMapper(ri []float64, m distribution.Mapper, opts Options) error {
	var err error
	switch params := m.(type) {
	case distribution.UniformParams:
		_, err = p.RunUniform(ri, params, opts)
	case *distribution.UniformParams:
		_, err = p.RunUniform(ri, *params, opts)
	case distribution.NormalInvParams:
		_, err = p.RunNormal(ri, params, opts)
	case *distribution.NormalInvParams:
		_, err = p.RunNormal(ri, *params, opts)
	default:
		err = errors.From(errors.New("unsupported mapper"), logan.F{"kind": m.Kind()})
	}
	return err
}

// RunUniform maps ri onto [params.Low, params.High).
func (p *Presenter) RunUniform(ri []float64, params distribution.UniformParams, opts Options) (*UniformReport, error) {
	kind := params.Kind()
	if len(ri) == 0 {
		return nil, ErrNoSource
	}

	start := time.Now()
	ni, err := distribution.Uniform(ri, params)
	p.metrics.Observe(string(kind), start, len(ni), err)
	if err != nil {
		return nil, err
	}

	report := &UniformReport{Ri: ri, Ni: ni}
	log := p.log.WithFields(logan.F{"method": kind, "iterations": len(ni)})

	if opts.Persist {
		report.File = p.out.Path(kind.FileName())
		if err := SaveNumbers(ni, report.File); err != nil {
			return nil, err
		}
		if p.out.Charts {
			err := GenerateScatter(p.sibling(report.File, p.out.ChartFormat), "uniform Ni", "Ni", ni, p.display.MaxPoints)
			if err != nil {
				return nil, errors.Wrap(err, "failed to draw chart", logan.F{"method": kind})
			}
		}
		log = log.WithField("file", report.File)
	}

	if p.w != nil {
		if err := writeTable(p.w, p.display.MaxRows, column{"Ri", ri}, column{"Ni", ni}); err != nil {
			return nil, errors.Wrap(err, "failed to print table")
		}
	}

	log.Info("uniform distribution generated")
	return report, nil
}

// RunNormal applies the inverse normal transform to ri and builds its histogram.
func (p *Presenter) RunNormal(ri []float64, params distribution.NormalInvParams, opts Options) (*NormalReport, error) {
	kind := params.Kind()
	if len(ri) == 0 {
		return nil, ErrNoSource
	}

	start := time.Now()
	result, err := distribution.NormalInverse(ri, params)
	p.metrics.Observe(string(kind), start, len(result.Ni), err)
	if err != nil {
		return nil, err
	}

	report := &NormalReport{Result: result}
	log := p.log.WithFields(logan.F{"method": kind, "iterations": len(result.Ni)})

	if opts.Fit {
		fit, err := solver.FitNormal(result.Intervals, result.Frequencies)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fit normal distribution")
		}
		report.Fit = &fit
	}

	if opts.Persist {
		report.File = p.out.Path(kind.FileName())
		if err := SaveNumbers(result.Ni, report.File); err != nil {
			return nil, err
		}
		if p.out.Charts {
			err := GenerateHistogram(p.sibling(report.File, p.out.ChartFormat), "normal-inverse Ni", result.Intervals, result.Frequencies)
			if err != nil {
				return nil, errors.Wrap(err, "failed to draw chart", logan.F{"method": kind})
			}
		}
		log = log.WithField("file", report.File)
	}

	if err := p.printNormal(report); err != nil {
		return nil, errors.Wrap(err, "failed to print table")
	}

	log.Info("normal distribution generated")
	return report, nil
}

func (p *Presenter) printNormal(report *NormalReport) error {
	if p.w == nil {
		return nil
	}
	if err := writeTable(p.w, p.display.MaxRows, column{"Ri", report.Ri}, column{"Ni", report.Ni}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.w); err != nil {
		return err
	}
	if err := writeHistogram(p.w, report.Intervals, report.Frequencies); err != nil {
		return err
	}
	if report.Fit != nil {
		_, err := fmt.Fprintf(p.w, "fit: mean=%.5f std_dev=%.5f residual=%.5f\n",
			report.Fit.Mean, report.Fit.StdDev, report.Fit.Residual)
		return err
	}
	return nil
}
