// Package lint drives the engine over files and directories.
package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"matchlint/internal"
	"matchlint/internal/scanner"
	tt "matchlint/internal/types"
)

// LintEngine is the part of the engine the drivers need.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
	IsPathIgnored(path string) bool
}

// New builds an engine from an optional configuration file. An empty
// path means defaults only.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.Rules), nil
}

// ProcessSources lints in-memory sources one by one.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessFiles lints every given path, recursing into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessPath lints one file, or every source file under one directory.
// Directory entries are linted concurrently, bounded by the CPU count.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) || engine.IsPathIgnored(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	found, err := scanner.New(path, desiredExtensions...).
		WithFilter(engine.IsPathIgnored).
		Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}
	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, f.Path)
	}

	resultChan := make(chan []tt.Issue, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	var wg sync.WaitGroup
	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			wg.Add(1)
			sem <- struct{}{}
			go func(fp string) {
				defer wg.Done()
				defer func() { <-sem }()

				fileIssues, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
				} else {
					resultChan <- fileIssues
				}
				_ = bar.Add(1)
			}(filePath)
		}
	}
	wg.Wait()
	close(resultChan)
	close(errorChan)

	if err := <-errorChan; err != nil {
		return nil, err
	}

	var issues []tt.Issue
	for result := range resultChan {
		issues = append(issues, result...)
	}
	fmt.Println()
	return issues, nil
}

// ProcessFile lints a single file through the engine.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSource lints raw source through the engine.
func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

var desiredExtensions = []string{".mx"}

func hasDesiredExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range desiredExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// Config represents the overall configuration with a name and a slice of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration file: %w", err)
	}

	return config, nil
}
