// Command stumpfit trains a boosted stump regressor on a CSV file and
// reports training metrics. The last column is the regression target;
// empty cells and "nan" are treated as missing feature values.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/stumpgo/boosting"
	"github.com/ezoic/stumpgo/metrics"
	"github.com/ezoic/stumpgo/pkg/log"
)

func main() {
	var (
		input        = flag.String("input", "", "CSV file; last column is the target")
		nEstimators  = flag.Int("rounds", 100, "number of boosting rounds")
		learningRate = flag.Float64("lr", 0.1, "shrinkage applied to each stump")
		hasHeader    = flag.Bool("header", true, "skip the first CSV row")
		logLevel     = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()
	log.SetupLogger(*logLevel)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "stumpfit: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	X, y, err := loadCSV(*input, *hasHeader)
	if err != nil {
		log.LogError(err, "Failed to load training data")
		os.Exit(1)
	}

	reg := boosting.NewBoostedStumpRegressor().
		WithNEstimators(*nEstimators).
		WithLearningRate(*learningRate).
		WithVerbosity(1)

	if err := reg.Fit(X, y); err != nil {
		log.LogError(err, "Training failed")
		os.Exit(1)
	}

	pred, err := reg.Predict(X)
	if err != nil {
		log.LogError(err, "Prediction failed")
		os.Exit(1)
	}

	rows, _ := y.Dims()
	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	mse, _ := metrics.MSE(yVec, pred)
	rmse, _ := metrics.RMSE(yVec, pred)
	r2, _ := metrics.R2Score(yVec, pred)

	fmt.Printf("trained %d stumps on %d rows\n", len(reg.Stumps()), rows)
	fmt.Printf("MSE:  %.6f\n", mse)
	fmt.Printf("RMSE: %.6f\n", rmse)
	fmt.Printf("R2:   %.6f\n", r2)
}

func loadCSV(path string, hasHeader bool) (*mat.Dense, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no data rows in %s", path)
	}
	cols := len(records[0])
	if cols < 2 {
		return nil, nil, fmt.Errorf("need at least one feature column and a target column")
	}

	X := mat.NewDense(len(records), cols-1, nil)
	y := mat.NewDense(len(records), 1, nil)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, nil, fmt.Errorf("row %d has %d columns, want %d", i+1, len(rec), cols)
		}
		for j := 0; j < cols-1; j++ {
			X.Set(i, j, parseCell(rec[j]))
		}
		target, err := strconv.ParseFloat(strings.TrimSpace(rec[cols-1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad target %q: %w", i+1, rec[cols-1], err)
		}
		y.Set(i, 0, target)
	}
	return X, y, nil
}

func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
