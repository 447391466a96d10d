// Command mathapp builds shapes, prints their area and perimeter, and shows
// the collection serialized before and after reordering.
//
// Usage:
//
//	mathapp                         # run the demo scenario
//	mathapp demo --order-by area --direction asc --format yaml
//	mathapp measure triangle 5 4    # right triangle, hypotenuse computed
//	mathapp measure circle -2       # dimensions are not validated
//	mathapp --config mathapp.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/mathapp"
)

// app carries state shared by all subcommands after flag parsing.
type app struct {
	cfg      Config
	settings settings
	logger   *slog.Logger

	configPath string
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:   "mathapp",
		Short: "Compute area and perimeter for circles, triangles, squares and rectangles",
		Long: `mathapp builds a collection of shapes, prints each shape's area and
perimeter, and serializes the collection before and after ordering it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format (json, yaml)")
	flags.StringVar(&a.cfg.OrderBy, "order-by", a.cfg.OrderBy, "metric to order by (area, perimeter)")
	flags.StringVar(&a.cfg.Direction, "direction", a.cfg.Direction, "order direction (asc, desc)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored log output")

	measure := &cobra.Command{
		Use:   "measure <kind> <dimension...>",
		Short: "Measure a single shape",
		Long: `Measure builds one shape and prints its area and perimeter.

  circle <radius>
  triangle <side1> <side2> [side3]   (side3 defaults to the hypotenuse)
  square <width> <length>
  rectangle <width> <length>

Flags must come before <kind>. Everything after it is a dimension, so
negative values such as -2 are passed through unchanged.`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runMeasure,
	}
	measure.Flags().SetInterspersed(false)

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Run the reference scenario with six sample shapes",
			Args:  cobra.NoArgs,
			RunE:  a.runDemo,
		},
		measure,
	)

	return root
}

// setup merges the config file under any explicitly set flags, validates
// the result and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath != "" {
		fileCfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("format") {
			a.cfg.Format = fileCfg.Format
		}
		if !flags.Changed("order-by") {
			a.cfg.OrderBy = fileCfg.OrderBy
		}
		if !flags.Changed("direction") {
			a.cfg.Direction = fileCfg.Direction
		}
		if !flags.Changed("log-level") {
			a.cfg.LogLevel = fileCfg.LogLevel
		}
	}

	s, err := a.cfg.resolve()
	if err != nil {
		return err
	}
	a.settings = s

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.noColor)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	m := mathapp.NewManager(mathapp.WithLogger(a.logger))

	shapes := []mathapp.Shape{
		m.NewCircle(5),
		m.NewRightTriangle(5, 4),
		m.NewTriangle(5, 5, 5),
		m.NewTriangle(5, 5, 1),
		m.NewSquare(5, 5),
		m.NewRectangle(10, 10),
	}
	for _, s := range shapes {
		printShape(out, s)
	}

	format := strings.ToUpper(a.settings.format.String())

	serialized, err := m.Serialize(a.settings.format)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Shapes serialized to %s format:\n%s\n\n", format, serialized)

	if err := m.OrderBy(a.settings.metric, a.settings.direction); err != nil {
		return err
	}
	serialized, err = m.Serialize(a.settings.format)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Shapes ordering %s by %s and serialized to %s format:\n%s\n\n",
		a.settings.direction, title(a.settings.metric.String()), format, serialized)

	fmt.Fprintf(out, "Number of Shapes in memory: %d\n", m.Count())

	a.logger.Info("demo complete", "shapes", m.Count(), "format", a.settings.format.String())
	return nil
}

func (a *app) runMeasure(cmd *cobra.Command, args []string) error {
	kind, err := mathapp.ParseKind(args[0])
	if err != nil {
		return err
	}

	m := mathapp.NewManager(mathapp.WithLogger(a.logger))
	s, err := buildShape(m, kind, args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printShape(out, s)

	serialized, err := m.Serialize(a.settings.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, serialized)
	return nil
}

func printShape(w io.Writer, s mathapp.Shape) {
	fmt.Fprintln(w, s.Name())
	fmt.Fprintf(w, "- Area: %v\n", s.Area())
	fmt.Fprintf(w, "- Perimeter: %v\n", s.Perimeter())
	fmt.Fprintln(w)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
