package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/benchmark"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/dataset"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/utils"
	"github.com/joho/godotenv"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using environment and flags")
	}

	var (
		dataDirFlag  = flag.String("data", getEnv("HASHBENCH_DATA_DIR", "data"), "directory holding dataset files")
		resultsFlag  = flag.String("results", getEnv("HASHBENCH_RESULTS", "resultados.csv"), "CSV results file")
		metricsFlag  = flag.String("metrics", getEnv("HASHBENCH_METRICS", ""), "Prometheus textfile to write, empty for none")
		seedFlag     = flag.Int64("seed", atoi64Default(getEnv("HASHBENCH_SEED", ""), 42), "seed for generated datasets")
		hashFlag     = flag.String("hash", "all", "hash functions to run, comma separated: division, multiplication or all")
		generateFlag = flag.Bool("generate", false, "write work dataset files to the data directory and exit")
		analyzeFlag  = flag.Bool("analyze", false, "print statistics of every dataset file in the data directory and exit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case *generateFlag:
		err = generate(ctx, *dataDirFlag, *seedFlag)
	case *analyzeFlag:
		err = analyze(*dataDirFlag)
	default:
		cfg := runConfig{
			dataDir:     *dataDirFlag,
			resultsFile: *resultsFlag,
			metricsFile: *metricsFlag,
			seed:        *seedFlag,
			hash:        *hashFlag,
		}
		err = run(ctx, cfg)
	}

	if err != nil {
		log.Fatalf("hashbench: %v", err)
	}
}

// runConfig - Settings of a benchmark run
type runConfig struct {
	dataDir     string
	resultsFile string
	metricsFile string
	seed        int64
	hash        string
}

// generate - Writes the work dataset files
func generate(ctx context.Context, dataDir string, seed int64) error {
	fileNames, err := dataset.GenerateWorkFiles(ctx, dataDir, seed)
	if err != nil {
		return err
	}

	for _, fileName := range fileNames {
		log.Printf("wrote %s", fileName)
	}

	return nil
}

// analyze - Prints statistics of every dataset file in dataDir
func analyze(dataDir string) error {
	fileNames, err := dataset.List(dataDir)
	if err != nil {
		return err
	}
	if len(fileNames) == 0 {
		return fmt.Errorf("no dataset files in %s", dataDir)
	}

	for _, fileName := range fileNames {
		if vErr := dataset.Validate(fileName); vErr != nil {
			log.Printf("warning: %v", vErr)
		}

		info, err := dataset.Analyze(fileName)
		if err != nil {
			log.Printf("unable to analyze %s: %v", fileName, err)
			continue
		}
		printInfo(info)
	}

	return nil
}

// printInfo - Prints dataset statistics
func printInfo(info dataset.Info) {
	fmt.Printf("\n=== %s ===\n", info.Name)
	fmt.Printf("Quantity:   %d\n", info.Quantity)
	fmt.Printf("Range:      [%d, %d]\n", info.Min, info.Max)
	fmt.Printf("Mean:       %.2f\n", info.Mean)
	fmt.Printf("Duplicates: %d\n", info.Duplicates)
	fmt.Printf("Digest:     %016x\n", info.Digest)
}

// run - Benchmarks every dataset in the data directory and writes the results
func run(ctx context.Context, cfg runConfig) (err error) {
	kinds, err := parseKinds(cfg.hash)
	if err != nil {
		return
	}

	datasets, search, err := loadDatasets(cfg.dataDir, cfg.seed)
	if err != nil {
		return
	}

	runner := benchmark.NewRunner()
	runner.Kinds = kinds
	for _, size := range runner.TableSizes {
		if !utils.IsPrime(size) {
			log.Printf("warning: table size %d is not prime, expect uneven division hashing", size)
		}
	}

	for _, ds := range datasets {
		log.Printf("benchmarking %s (%d keys)", ds.Name, len(ds.Keys))
	}
	results, err := runner.Run(ctx, datasets, search)
	if err != nil {
		return
	}

	err = benchmark.PrintReport(os.Stdout, results)
	if err != nil {
		return
	}

	err = writeResults(cfg.resultsFile, results)
	if err != nil {
		return
	}
	log.Printf("results written to %s", cfg.resultsFile)

	if cfg.metricsFile != "" {
		err = benchmark.WriteMetrics(cfg.metricsFile, results)
		if err != nil {
			return
		}
		log.Printf("metrics written to %s", cfg.metricsFile)
	}

	return
}

// loadDatasets - Loads the insertion datasets and the search dataset from dataDir. Whatever is missing is
// generated in memory instead.
func loadDatasets(dataDir string, seed int64) (datasets []benchmark.Dataset, search []int64, err error) {
	searchFile := filepath.Join(dataDir, conf.SearchDatasetName)

	fileNames, lErr := dataset.List(dataDir)
	if lErr != nil {
		log.Printf("no dataset directory, generating datasets in memory: %v", lErr)
	}

	for _, fileName := range fileNames {
		if fileName == searchFile {
			continue
		}

		result, err := dataset.Load(fileName)
		if err != nil {
			log.Printf("skipping %s: %v", fileName, err)
			continue
		}
		if len(result.Skipped) > 0 {
			log.Printf("%s: skipped %d invalid lines", fileName, len(result.Skipped))
		}
		if len(result.Keys) != result.Expected {
			log.Printf("%s: expected %d keys, read %d", fileName, result.Expected, len(result.Keys))
		}
		datasets = append(datasets, benchmark.Dataset{Name: filepath.Base(fileName), Keys: result.Keys})
	}

	if len(datasets) == 0 {
		for i, size := range conf.DefaultDatasetSizes {
			keys, gErr := dataset.NewDefaultGenerator(seed + int64(i)).Unique(size)
			if gErr != nil {
				err = gErr
				return
			}
			datasets = append(datasets, benchmark.Dataset{Name: fmt.Sprintf(conf.DatasetNameFormat, size), Keys: keys})
		}
	}

	if result, sErr := dataset.Load(searchFile); sErr == nil {
		search = result.Keys
		return
	}

	search, err = dataset.NewDefaultGenerator(seed - 1).Unique(conf.SearchDatasetSize)

	return
}

// writeResults - Writes results as CSV to fileName
func writeResults(fileName string, results []benchmark.Result) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()

	err = benchmark.WriteCSV(f, results)

	return
}
