package cli

import (
	"net/http"
	"os"

	"github.com/alecthomas/kingpin"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"prng-go/internal/config"
	"prng-go/internal/metrics"
	"prng-go/internal/presenter"
	"prng-go/pkg/distribution"
	"prng-go/pkg/pseudorandom"
)

func Run(args []string) bool {
	defer func() {
		if rvr := recover(); rvr != nil {
			logan.New().WithRecover(rvr).Error("app panicked")
		}
	}()

	app := kingpin.New("prng", "pseudo-random number generators and distribution mappers")
	configFile := app.Flag("config", "path to a config file").Short('c').String()
	outputDir := app.Flag("output-dir", "overrides output.dir from the config").String()

	common := func(cmd *kingpin.CmdClause) (lo, hi *float64, iterations *int, check *bool) {
		lo = cmd.Flag("min", "lower bound of Ni").Default("0").Float64()
		hi = cmd.Flag("max", "upper bound of Ni").Default("1").Float64()
		iterations = cmd.Flag("iterations", "amount of numbers to generate").Short('n').Default("100").Int()
		check = cmd.Flag("check", "run uniformity checks on Ri").Bool()
		return
	}

	msCmd := app.Command("middle-square", "run the middle-square method").Alias("ms")
	msSeed := msCmd.Flag("seed", "seed with 3 digits or more").Default("5735").Int64()
	msMin, msMax, msIterations, msCheck := common(msCmd)

	lcCmd := app.Command("linear", "run the linear congruential method").Alias("lc")
	lcSeed := lcCmd.Flag("seed", "initial value xo").Default("5").Uint64()
	lcK := lcCmd.Flag("k", "multiplier parameter, a = 1+2k").Default("3").Uint64()
	lcC := lcCmd.Flag("c", "additive constant").Default("7").Uint64()
	lcG := lcCmd.Flag("g", "modulus exponent, m = 2^g").Default("10").Uint()
	lcMin, lcMax, lcIterations, lcCheck := common(lcCmd)

	mcCmd := app.Command("multiplicative", "run the multiplicative congruential method").Alias("mc")
	mcSeed := mcCmd.Flag("seed", "initial value xo").Default("5").Uint64()
	mcT := mcCmd.Flag("t", "multiplier parameter, a = 8t+3").Default("3").Uint64()
	mcG := mcCmd.Flag("g", "modulus exponent, m = 2^g").Default("10").Uint()
	mcMin, mcMax, mcIterations, mcCheck := common(mcCmd)

	source := func(cmd *kingpin.CmdClause) (method, input *string) {
		method = cmd.Flag("source", "method whose persisted Ri are mapped").
			Default(string(pseudorandom.MethodLinearCongruential)).String()
		input = cmd.Flag("input", "JSON or text file with Ri values, overrides --source").String()
		return
	}

	udCmd := app.Command("uniform", "map Ri onto a uniform distribution")
	udMin := udCmd.Flag("min", "lower bound").Default("0").Float64()
	udMax := udCmd.Flag("max", "upper bound").Default("1").Float64()
	udSource, udInput := source(udCmd)

	ndCmd := app.Command("normal", "map Ri through the inverse normal distribution")
	ndIntervals := ndCmd.Flag("intervals", "amount of histogram intervals").Default("10").Int()
	ndMean := ndCmd.Flag("mean", "mean of the distribution").Default("0").Float64()
	ndStdDev := ndCmd.Flag("std-dev", "standard deviation of the distribution").Default("1").Float64()
	ndFit := ndCmd.Flag("fit", "estimate mean and standard deviation from the histogram").Bool()
	ndSource, ndInput := source(ndCmd)

	serveCmd := app.Command("serve", "serve the generators over HTTP")

	cmd, err := app.Parse(args[1:])
	if err != nil {
		logan.New().WithError(err).Error("failed to parse arguments")
		return false
	}

	cfg := config.New(config.NewGetter(*configFile))
	log := cfg.Log()
	m := metrics.New()

	p := presenter.New(cfg, m, os.Stdout)
	if *outputDir != "" {
		p = p.WithOutputDir(*outputDir)
	}
	persist := presenter.Options{Persist: true}

	switch cmd {
	case msCmd.FullCommand():
		opts := persist
		opts.Check = *msCheck
		_, err = p.RunGenerator(pseudorandom.NewMiddleSquareParams(*msSeed, *msMin, *msMax, *msIterations), opts)
	case lcCmd.FullCommand():
		opts := persist
		opts.Check = *lcCheck
		_, err = p.RunGenerator(pseudorandom.NewLinearCongruentialParams(*lcSeed, *lcK, *lcC, *lcG, *lcMin, *lcMax, *lcIterations), opts)
	case mcCmd.FullCommand():
		opts := persist
		opts.Check = *mcCheck
		_, err = p.RunGenerator(pseudorandom.NewMultiplicativeCongruentialParams(*mcSeed, *mcT, *mcG, *mcMin, *mcMax, *mcIterations), opts)
	case udCmd.FullCommand(), ndCmd.FullCommand():
		isnormal := cmd == ndCmd.FullCommand()
		src, input := *udSource, *udInput
		if isnormal {
			src, input = *ndSource, *ndInput
		}
		var ri []float64
		ri, err = loadRi(p, src, input)
		if err == nil {
			opts := persist
			opts.Fit = *ndFit
			mapper := distribution.NewMapper(isnormal, *udMin, *udMax, *ndIntervals, *ndMean, *ndStdDev)
			err = p.RunMapper(ri, mapper, opts)
		}
	case serveCmd.FullCommand():
		addr := cfg.Server().Addr
		log.WithField("addr", addr).Info("starting server")
		err = http.ListenAndServe(addr, NewHandler(p.WithWriter(nil), m, log))
	default:
		log.Errorf("unknown command %s", cmd)
		return false
	}

	if err != nil {
		log.WithError(err).Error("failed to exec cmd")
		return false
	}
	return true
}

func loadRi(p *presenter.Presenter, source, input string) ([]float64, error) {
	if input != "" {
		return p.LoadInput(input)
	}
	method, err := pseudorandom.ParseMethod(source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse source")
	}
	return p.LoadSource(method)
}
