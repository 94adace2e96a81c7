/*package io handles the configuration files and table files used by the
command line tool.
*/
package io

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Two-column text file containing the knot table. The first column is the
# x coordinate of each knot and the second is its value. Knots must be
# sorted so that the x coordinates strictly increase.
KnotFile = path/to/knots.txt

# File which the interpolated table will be written to.
Output = path/to/output.txt

# The query grid. Either set QueryFile to a one-column text file of query
# points, or set all three of QueryMin, QueryMax, and QueryPoints to
# evaluate a uniform grid.
QueryMin = 0.0
QueryMax = 10.0
QueryPoints = 100
# QueryFile = path/to/queries.txt

#######################
# Optional Parameters #
#######################

# Slopes applied to queries beyond the first and last knots. Defaults are 0,
# which extrapolates with a constant value.
# LeftSlope = 0.0
# RightSlope = 0.0

# Floating point precision of the outputs. Accepted values are float64 (the
# default) and float32.
# Dtype = float64`

	ExampleFitFile = `[Fit]

#######################
# Required Parameters #
#######################

# Two-column text file of observed (x, y) points to fit.
DataFile = path/to/data.txt

# File which the fitted knot table will be written to. It has the same
# format as an [Interpolate] mode KnotFile.
Output = path/to/knots.txt

# Number of knots in the fitted curve. The knot x coordinates are spaced
# uniformly over the range of the data.
Knots = 10

#######################
# Optional Parameters #
#######################

# Gradient descent parameters. The fit minimizes the mean squared residual
# of the curve against the data.
# Steps = 1000
# LearningRate = 0.3

# Extrapolation slopes of the fitted curve. Defaults are 0.
# LeftSlope = 0.0
# RightSlope = 0.0`
)

type InterpolateConfig struct {
	// Required
	KnotFile string
	Output   string

	// Query grid: either QueryFile or all of QueryMin, QueryMax, and
	// QueryPoints.
	QueryFile   string
	QueryMin    float64
	QueryMax    float64
	QueryPoints int

	// Optional
	LeftSlope  float64
	RightSlope float64
	Dtype      string
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{Dtype: "float64"}
	return &InterpolateWrapper{con}
}

func (con *InterpolateConfig) ValidKnotFile() bool {
	return con.KnotFile != ""
}

func (con *InterpolateConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *InterpolateConfig) ValidQueryFile() bool {
	return con.QueryFile != ""
}

func (con *InterpolateConfig) ValidQueryGrid() bool {
	return con.QueryPoints > 0 && con.QueryMax > con.QueryMin
}

// ValidQuery requires that exactly one of QueryFile and the uniform query
// grid is configured.
func (con *InterpolateConfig) ValidQuery() bool {
	return con.ValidQueryFile() != con.ValidQueryGrid()
}

func (con *InterpolateConfig) ValidDtype() bool {
	return con.Dtype == "float64" || con.Dtype == "float32"
}

type FitConfig struct {
	// Required
	DataFile string
	Output   string
	Knots    int

	// Optional
	Steps        int
	LearningRate float64
	LeftSlope    float64
	RightSlope   float64
}

type FitWrapper struct {
	Fit FitConfig
}

func DefaultFitWrapper() *FitWrapper {
	con := FitConfig{
		Steps:        1000,
		LearningRate: 0.3,
	}
	return &FitWrapper{con}
}

func (con *FitConfig) ValidDataFile() bool {
	return con.DataFile != ""
}

func (con *FitConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *FitConfig) ValidKnots() bool {
	return con.Knots >= 1
}

func (con *FitConfig) ValidSteps() bool {
	return con.Steps >= 1
}

func (con *FitConfig) ValidLearningRate() bool {
	return con.LearningRate > 0
}
