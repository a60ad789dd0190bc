package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/cortexm/cmd/irqgen/atdf"
	"omibyte.io/cortexm/cmd/irqgen/generator"
	"omibyte.io/cortexm/cmd/irqgen/svd"
	"omibyte.io/cortexm/targets"
)

var ErrUnsupportedInput = errors.New("unsupported input file")

var (
	genOpts = struct {
		in      string
		out     string
		series  string
		device  string
		pkg     string
		targets string
		verbose bool
	}{}

	rootCmd = &cobra.Command{
		Use:          "irqgen",
		Short:        "Generate a device interrupt package",
		Long:         "Generate a Go package with one interrupt constant per NVIC line from an SVD or ATDF device description",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(genOpts.in) == 0 {
				return cmd.Help()
			}
			return run(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), genOpts.verbose))
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&genOpts.in, "in", "i", "", "input SVD or ATDF file")
	rootCmd.Flags().StringVarP(&genOpts.out, "out", "o", getenv("IRQGEN_OUT", "device"), "output directory. Default: $IRQGEN_OUT")
	rootCmd.Flags().StringVarP(&genOpts.series, "series", "s", "", "target series. Default: the series named by the input")
	rootCmd.Flags().StringVarP(&genOpts.device, "device", "d", "", "device to select from an ATDF file")
	rootCmd.Flags().StringVarP(&genOpts.pkg, "package", "p", "", "output package name. Default: the lowercase series")
	rootCmd.Flags().StringVarP(&genOpts.targets, "targets", "t", getenv("IRQGEN_TARGETS", ""), "target table overriding the built-in one. Default: $IRQGEN_TARGETS")
	rootCmd.Flags().BoolVarP(&genOpts.verbose, "verbose", "v", false, "log shared lines and other details")
	rootCmd.AddCommand(targetsCmd)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(w io.Writer, logger *slog.Logger) error {
	device, err := readDevice(genOpts.in, genOpts.device, logger)
	if err != nil {
		return err
	}

	table, err := loadTargets(genOpts.targets)
	if err != nil {
		return err
	}

	series := genOpts.series
	if len(series) == 0 {
		series = device.Series
	}
	target, err := table.FindBySeries(series)
	if err != nil {
		return err
	}

	pkg := genOpts.pkg
	if len(pkg) == 0 {
		pkg = strings.ToLower(target.Series)
	}

	fmt.Fprintln(w, "Generating the interrupt package for the following device:")
	fmt.Fprintf(w, "Device:\t\t%s\n", device.Name)
	fmt.Fprintf(w, "Series:\t\t%s\n", target.Series)
	fmt.Fprintf(w, "Architecture:\t%s\n", target.Architecture)
	fmt.Fprintf(w, "Lines:\t\t%d\n", target.Lines)
	fmt.Fprintf(w, "Priority bits:\t%d\n", target.PriorityBits)
	fmt.Fprintf(w, "Word-only IPR:\t%v\n", target.WordPackedPriority())
	fmt.Fprintf(w, "Interrupts:\t%d\n", len(device.Interrupts))

	fname, err := device.Generate(genOpts.out, pkg, target)
	if err != nil {
		return err
	}

	logger.Info("wrote device package", "file", fname)
	fmt.Fprintln(w, "Done.")
	return nil
}

// readDevice decodes fname by its extension.
func readDevice(fname, name string, logger *slog.Logger) (*generator.Device, error) {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var device *generator.Device
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".svd":
		var def svd.DeviceElement
		if err = xml.Unmarshal(buf, &def); err != nil {
			return nil, fmt.Errorf("xml decode error: %w", err)
		}
		device, err = generator.FromSVD(&def, logger)
	case ".atdf":
		var def atdf.ATDF
		if err = xml.Unmarshal(buf, &def); err != nil {
			return nil, fmt.Errorf("xml decode error: %w", err)
		}
		device, err = generator.FromATDF(&def, name, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, fname)
	}
	if err != nil {
		return nil, err
	}

	device.Source = fname
	return device, nil
}

func loadTargets(fname string) (targets.Targets, error) {
	if len(fname) == 0 {
		return targets.All(), nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return targets.Load(f)
}
