package main

// plot_curve plots a knot table together with the piecewise-linear curve
// through it, including the extrapolated tails.
//
// Usage:
//     go run plot_curve.go knots.txt out.png [leftSlope rightSlope]

import (
	"log"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/YYHWJJ/tf-quant-finance/io"
	"github.com/YYHWJJ/tf-quant-finance/math/interpolate"
)

func main() {
	if len(os.Args) != 3 && len(os.Args) != 5 {
		log.Fatal("Usage: plot_curve knots.txt out.png [leftSlope rightSlope]")
	}

	xData, yData, err := io.ReadXYTable(os.Args[1])
	if err != nil {
		log.Fatal(err.Error())
	}

	leftSlope, rightSlope := 0.0, 0.0
	if len(os.Args) == 5 {
		if leftSlope, err = strconv.ParseFloat(os.Args[3], 64); err != nil {
			log.Fatal(err.Error())
		}
		if rightSlope, err = strconv.ParseFloat(os.Args[4], 64); err != nil {
			log.Fatal(err.Error())
		}
	}

	span := xData[len(xData)-1] - xData[0]
	if span == 0 {
		span = 1
	}
	qs := linspace(xData[0]-0.1*span, xData[len(xData)-1]+0.1*span, 200)

	ys, err := interpolate.Interpolate(
		qs, xData, yData,
		interpolate.LeftSlope(leftSlope), interpolate.RightSlope(rightSlope),
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	plt.Reset()
	plt.Plot(qs, ys, "r", plt.LW(3))
	if len(yData) == len(xData) {
		plt.Plot(xData, yData, "ok")
	}
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$y$", plt.FontSize(16))
	plt.SaveFig(os.Args[2])
	plt.Execute()
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*dx
	}
	out[n-1] = hi
	return out
}
