package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/alitto/pond"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	asd "github.com/sixy6e/go-asd"
	"github.com/sixy6e/go-asd/search"
)

// dump decodes a single ASD file and writes its metadata, wavelength
// axis, and section status alongside it as JSON.
func dump(path, outdir string, logger *zap.Logger) error {
	if outdir == "" {
		outdir = filepath.Dir(path)
	}
	base := filepath.Base(path)

	logger.Info("decoding", zap.String("path", path))
	f, err := asd.Read(path, logger)
	if err != nil {
		return err
	}

	if errs := asd.Validate(f); len(errs) > 0 {
		for _, e := range errs {
			logger.Warn("validation", zap.String("path", path), zap.Error(e))
		}
	}

	report := struct {
		Version     string               `json:"version"`
		Metadata    asd.Metadata         `json:"metadata"`
		Wavelengths []float64            `json:"wavelengths"`
		Sections    map[string]string    `json:"sections"`
		Saturation  []asd.SaturationFlag `json:"saturation"`
	}{
		Version:     f.Version.String(),
		Metadata:    f.Metadata,
		Wavelengths: f.Wavelengths(),
		Sections:    sectionSummary(f),
		Saturation:  f.SaturationErrors(),
	}

	out := filepath.Join(outdir, base+"-report.json")
	if _, err := asd.WriteJson(out, report); err != nil {
		return err
	}
	logger.Info("wrote report", zap.String("path", out))
	return nil
}

func sectionSummary(f *asd.AsdFile) map[string]string {
	names := []string{
		"metadata", "spectrum", "reference header", "reference data",
		"classifier", "dependents", "calibration header",
		"calibration series", "audit log", "signature",
	}
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = f.SectionStatus(n).String()
	}
	return out
}

// batch walks dir for *.asd files and dumps each one concurrently.
func batch(dir, outdir string, logger *zap.Logger) error {
	items, err := search.FindAsd(dir)
	if err != nil {
		return err
	}
	logger.Info("found files", zap.Int("count", len(items)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n := runtime.NumCPU() * 2
	pool := pond.New(n, 0, pond.MinWorkers(n), pond.Context(ctx))
	defer pool.StopAndWait()

	var (
		combined error
		mu       sync.Mutex
	)

	for _, path := range items {
		path := path
		pool.Submit(func() {
			if err := dump(path, outdir, logger); err != nil {
				mu.Lock()
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", path, err))
				mu.Unlock()
			}
		})
	}

	pool.StopAndWait()
	return combined
}

func main() {
	app := &cli.App{
		Name:  "asdtool",
		Usage: "inspect and batch-convert ASD spectral files",
		Commands: []*cli.Command{
			{
				Name: "dump",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Required: true, Usage: "Path to an ASD file."},
					&cli.StringFlag{Name: "outdir", Usage: "Output directory for the report. Defaults to the input's directory."},
					&cli.StringFlag{Name: "log-file", Usage: "Optional path for rotated log output."},
				},
				Action: func(cCtx *cli.Context) error {
					logger, err := asd.NewLogger(asd.LogConfig{Path: cCtx.String("log-file")})
					if err != nil {
						return err
					}
					defer logger.Sync()
					return dump(cCtx.String("path"), cCtx.String("outdir"), logger)
				},
			},
			{
				Name: "batch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Required: true, Usage: "Directory to recursively search for *.asd files."},
					&cli.StringFlag{Name: "outdir", Usage: "Output directory for reports. Defaults to each input's directory."},
					&cli.StringFlag{Name: "log-file", Usage: "Optional path for rotated log output."},
				},
				Action: func(cCtx *cli.Context) error {
					logger, err := asd.NewLogger(asd.LogConfig{Path: cCtx.String("log-file")})
					if err != nil {
						return err
					}
					defer logger.Sync()
					return batch(cCtx.String("dir"), cCtx.String("outdir"), logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
