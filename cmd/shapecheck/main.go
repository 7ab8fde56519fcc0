// Command shapecheck verifies that every registered uniform block matches the
// WGSL that declares it: first each block's embedded canonical mirror, then
// any .wgsl file under the configured shader directory that redeclares a
// block. Drift is advisory inside the engine, but this command exits non-zero
// on any mismatch so CI can enforce it.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"go.uber.org/zap"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/config"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/effects"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/renderer/shader"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/logger"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shapecheck: %v\n", err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "shapecheck: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	var mismatches atomic.Int64

	// Embedded mirrors first. These ship with the structs, so a failure here
	// means the Go side and its own canonical WGSL have diverged.
	for _, block := range effects.Blocks() {
		if !checkBlock(block, block.Source, "embedded") {
			mismatches.Add(1)
		}
	}

	// Then every shader file on disk that redeclares a registered block.
	files, err := collectShaderFiles(cfg.Shaders.Dir)
	if err != nil {
		logger.Warn("skipping shader directory scan",
			zap.String("dir", cfg.Shaders.Dir),
			zap.Error(err),
		)
	}

	if len(files) > 0 {
		pool := worker.NewDynamicWorkerPool(cfg.Shaders.Workers, 256, 1*time.Second)
		var wg sync.WaitGroup

		for i, path := range files {
			wg.Add(1)
			p := path
			pool.SubmitTask(worker.Task{
				ID: i,
				Do: func() (any, error) {
					defer wg.Done()
					if n := checkFile(p); n > 0 {
						mismatches.Add(int64(n))
					}
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	if n := mismatches.Load(); n > 0 {
		logger.Error("shape check failed", zap.Int64("mismatches", n))
		os.Exit(1)
	}
	logger.Info("shape check passed",
		zap.Int("blocks", len(effects.Blocks())),
		zap.Int("shader_files", len(files)),
	)
}

// collectShaderFiles walks the shader directory and returns every .wgsl path.
func collectShaderFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".wgsl" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// checkFile verifies every registered block the file redeclares and returns
// the number of mismatches found.
func checkFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading shader file", zap.String("file", path), zap.Error(err))
		return 1
	}
	source := string(data)

	declared := shader.DeclaredBlocks(source)
	failed := 0
	for _, block := range effects.Blocks() {
		if !declared[block.Name] {
			continue
		}
		if !checkBlock(block, source, path) {
			failed++
		}
	}
	return failed
}

// checkBlock runs one shape check and logs the outcome. Returns true when the
// block was found with a matching size.
func checkBlock(block effects.Block, source, origin string) bool {
	desc, err := block.Describe()
	if err != nil {
		logger.Error("invalid uniform struct definition",
			zap.String("block", block.Name),
			zap.Error(err),
		)
		return false
	}

	result := shader.VerifyBlock(desc, block.Name, source)
	if result.Matches() {
		logger.Debug("block matches",
			zap.String("block", block.Name),
			zap.String("source", origin),
			zap.Int("bytes", result.HostSize),
		)
		return true
	}

	logger.Error("block mismatch",
		zap.String("block", block.Name),
		zap.String("source", origin),
		zap.Bool("found", result.Found),
		zap.Int("host_size", result.HostSize),
		zap.Int("wgsl_size", result.WGSLSize),
	)
	return false
}
