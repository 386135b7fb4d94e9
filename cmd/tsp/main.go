// The tsp command reads or generates a symmetric TSP instance and reports
// its exact optimal tour and the wall-clock time taken to find it.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/miladghaznavi/exacttsp/internal/geo"
	"github.com/miladghaznavi/exacttsp/internal/ioformat"
	"github.com/miladghaznavi/exacttsp/tsp"
)

const defaultGridSize = 100

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run contains all of main's logic apart from the process exit, so it can
// be exercised directly in tests without forking a subprocess.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tsp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	seed := fs.Int("s", int(time.Now().Unix()), "random seed")
	geometric := fs.Bool("g", false, "treat problem file as geometric (x y coordinates)")
	ncountRand := fs.Int("k", 0, "generate a random instance with k cities")
	gridSize := fs.Int("b", defaultGridSize, "grid size for random instances")

	usage := func() {
		fmt.Fprintf(stderr, "Usage: %s [-s seed] [-g] [-k ncities] [-b gridsize] [prob_file]\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var path string
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		usage()
		return 1
	}

	if path == "" && *ncountRand <= 0 {
		fmt.Fprintln(stdout, "Must specify a problem file or use -k for random prob")
		usage()
		return 1
	}

	fmt.Fprintf(stdout, "Seed = %d\n", *seed)
	rnd := rand.New(rand.NewSource(int64(*seed)))

	if path != "" {
		fmt.Fprintf(stdout, "Problem name: %s\n", path)
		if *geometric {
			fmt.Fprintln(stdout, "Geometric data")
		}
	}

	graph, err := loadOrBuildGraph(path, *geometric, *ncountRand, *gridSize, rnd, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, "Start to process!")
	solver := tsp.NewSolver(rnd)
	result := solver.OptimumTour(graph)
	fmt.Fprintln(stdout, "Finish!")

	tourLength := tsp.TourWeight(result)
	runningTime := solver.RunningTime().Seconds()

	fmt.Fprintf(stdout, "Running Time: %.2f sec\n", runningTime)
	fmt.Fprintf(stdout, "Optimal Tour: %.2f\n", tourLength)

	return 0
}

func loadOrBuildGraph(path string, geometric bool, ncountRand, gridSize int, rnd *rand.Rand, stdout io.Writer) (*tsp.Graph, error) {
	if path != "" {
		fmt.Fprintln(stdout, "Reading problem file...")
		if geometric {
			parsed, err := ioformat.ReadGeo(path)
			if err != nil {
				return nil, err
			}
			return tsp.FromGeo(parsed)
		}
		parsed, err := ioformat.ReadEdgeList(path)
		if err != nil {
			return nil, err
		}
		return tsp.FromEdgeList(parsed)
	}

	fmt.Fprintln(stdout, "Building random problem...")
	xs, ys, err := geo.BuildXY(ncountRand, gridSize, rnd, true)
	if err != nil {
		return nil, err
	}
	return tsp.NewGeoGraph(xs, ys)
}
