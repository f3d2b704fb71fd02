package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/sw965/cifar10/blas32/tensor/3d"
	"github.com/sw965/cifar10/dataset"
	"github.com/sw965/omw/encoding/gobx"
)

type Config struct {
	Root          string `env:"CIFAR10_ROOT" envDefault:"."`
	TrainingLimit int    `env:"CIFAR10_TRAINING_LIMIT" envDefault:"0"`
	TestLimit     int    `env:"CIFAR10_TEST_LIMIT" envDefault:"0"`
	Parallelism   int    `env:"CIFAR10_PARALLELISM" envDefault:"1"`
	Layout        string `env:"CIFAR10_LAYOUT" envDefault:"flat"`
	Output        string `env:"CIFAR10_OUTPUT" envDefault:"cifar10.gob"`
}

func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Layout != "flat" && cfg.Layout != "3d" {
		return Config{}, fmt.Errorf("CIFAR10_LAYOUT must be flat or 3d (got %q)", cfg.Layout)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	paths := dataset.DefaultPaths(cfg.Root)
	bar := progressbar.NewOptions(len(paths.Training)+1,
		progressbar.OptionSetDescription("loading cifar-10"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)

	opts := dataset.Options{
		Paths:         paths,
		TrainingLimit: cfg.TrainingLimit,
		TestLimit:     cfg.TestLimit,
		Parallelism:   cfg.Parallelism,
		Logger:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
		OnFile: func(path string, n int) {
			_ = bar.Add(1)
		},
	}

	switch cfg.Layout {
	case "3d":
		data, err := dataset.Load3D[uint8](opts)
		if err != nil {
			log.Fatalf("failed to load dataset: %v", err)
		}
		reportStats(data.TrainingImages)
		report(data.TrainingLabels, data.TestLabels)
		save(data, cfg.Output)
	default:
		data, err := dataset.Load(opts)
		if err != nil {
			log.Fatalf("failed to load dataset: %v", err)
		}
		report(data.TrainingLabels, data.TestLabels)
		save(data, cfg.Output)
	}
}

func report(training, test []uint8) {
	log.Printf("loaded: Train[%d], Test[%d]", len(training), len(test))
	counts := dataset.LabelCounts(training, len(dataset.ClassNames))
	for i, c := range counts {
		log.Printf("  %-10s %d", dataset.ClassNames[i], c)
	}
}

func reportStats(images []tensor3d.General) {
	mean, std, err := dataset.ChannelStats(images)
	if err != nil {
		log.Printf("channel stats skipped: %v", err)
		return
	}
	log.Printf("channel mean %v, std %v", mean, std)
}

func save(data any, path string) {
	if err := gobx.Save(data, path); err != nil {
		log.Fatalf("failed to save %s: %v", path, err)
	}
	log.Printf("saved to '%s'", path)
}
