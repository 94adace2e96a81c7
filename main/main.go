package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/YYHWJJ/tf-quant-finance/io"
	"github.com/YYHWJJ/tf-quant-finance/math/interpolate"
)

func main() {
	var (
		interpolateCfg, fitCfg string
		exampleConfig          string
	)
	vars := map[string]*string{
		"Interpolate":   &interpolateCfg,
		"Fit":           &fitCfg,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interpolateCfg, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&fitCfg, "Fit", "",
		"Configuration file for [Fit] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Interpolate' and 'Fit'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		wrap := io.DefaultInterpolateWrapper()
		err := gcfg.ReadFileInto(wrap, interpolateCfg)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Interpolate

		if !con.ValidKnotFile() {
			log.Fatal("Invalid/non-existent 'KnotFile' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidQuery() {
			log.Fatal("Exactly one of 'QueryFile' and the " +
				"'QueryMin'/'QueryMax'/'QueryPoints' grid must be set.")
		} else if !con.ValidDtype() {
			log.Fatal("Invalid 'Dtype' value. The only accepted values " +
				"are 'float64' and 'float32'.")
		}

		interpolateMain(con)

	case "Fit":
		wrap := io.DefaultFitWrapper()
		err := gcfg.ReadFileInto(wrap, fitCfg)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Fit

		if !con.ValidDataFile() {
			log.Fatal("Invalid/non-existent 'DataFile' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidKnots() {
			log.Fatal("Invalid/non-existent 'Knots' value.")
		} else if !con.ValidSteps() {
			log.Fatal("Invalid 'Steps' value.")
		} else if !con.ValidLearningRate() {
			log.Fatal("Invalid 'LearningRate' value.")
		}

		fitMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		case "Fit":
			fmt.Println(io.ExampleFitFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Interpolate' and 'Fit'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but only one flag may be "+
				"set at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	dx := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*dx
	}
	out[n-1] = hi
	return out
}

func interpolateMain(con *io.InterpolateConfig) {
	xData, yData, err := io.ReadXYTable(con.KnotFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	var qs []float64
	if con.ValidQueryFile() {
		qs, err = io.ReadXTable(con.QueryFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	} else {
		qs = linspace(con.QueryMin, con.QueryMax, con.QueryPoints)
	}

	opts := []interpolate.Option{
		interpolate.LeftSlope(con.LeftSlope),
		interpolate.RightSlope(con.RightSlope),
	}
	if con.Dtype == "float32" {
		opts = append(opts, interpolate.OutputDtype(interpolate.Float32))
	}

	ys, err := interpolate.Interpolate(qs, xData, yData, opts...)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err = io.WriteXYTable(con.Output, qs, ys); err != nil {
		log.Fatal(err.Error())
	}
}

func fitMain(con *io.FitConfig) {
	xs, ys, err := io.ReadXYTable(con.DataFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(xs) == 0 {
		log.Fatal("'DataFile' contains no points.")
	}

	knotXs, knotYs := fit(
		xs, ys, con.Knots, con.Steps, con.LearningRate,
		interpolate.LeftSlope(con.LeftSlope),
		interpolate.RightSlope(con.RightSlope),
	)

	if err = io.WriteXYTable(con.Output, knotXs, knotYs); err != nil {
		log.Fatal(err.Error())
	}
}
