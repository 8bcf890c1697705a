package main

import (
	"fmt"
	"os"
	"path/filepath"

	spineexport "github.com/jclounge/spine-export"
	"github.com/jclounge/spine-export/pkg/layers"
	"github.com/jclounge/spine-export/pkg/preview"
	"github.com/jclounge/spine-export/pkg/spine"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = spineexport.Version

var (
	outputDir     string
	jsonFilename  string
	compression   int
	includeHidden bool
	reverseOrder  bool
	autocrop      bool
	configPath    string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spine-export <document.json>",
		Short: "Export a layered document to Spine images and JSON",
		Long:  "A tool that rasterizes each leaf layer of a layered image document to PNG and writes a Spine JSON skeleton placing every image on a single root bone.",
		Args:  cobra.ExactArgs(1),
		Run:   run,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&outputDir, "out-dir", "o", ".", "Output directory (must exist)")
	rootCmd.Flags().StringVarP(&jsonFilename, "json-filename", "j", "", "Skeleton JSON base name (default: document name)")
	rootCmd.Flags().IntVarP(&compression, "compression", "c", 0, "PNG compression level (0-9)")
	rootCmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "Export invisible layers too")
	rootCmd.Flags().BoolVar(&reverseOrder, "reverse", false, "Reverse draw order (slots in stack order)")
	rootCmd.Flags().BoolVar(&autocrop, "autocrop", false, "Autocrop layers before export")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with export defaults")

	previewCmd := &cobra.Command{
		Use:   "preview <document.json>",
		Short: "Composite the layer stack into a single preview PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVarP(&outputDir, "out-dir", "o", ".", "Output directory (must exist)")
	previewCmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "Include invisible layers")
	previewCmd.Flags().BoolVar(&reverseOrder, "reverse", false, "Reverse draw order")
	previewCmd.Flags().BoolVar(&autocrop, "autocrop", false, "Autocrop layers first")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("spine-export version %s\n", version)
		},
	}

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\nSpine Export")
	cyan.Println("============")

	opts := spineexport.Options{
		DocumentPath: args[0],
		Logger:       newLogger(verbose),
	}

	// A config file supplies defaults; explicitly set flags win.
	if configPath != "" {
		cfg, err := spineexport.LoadConfig(configPath)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Apply(&opts)
	}
	flags := cmd.Flags()
	if opts.OutputDir == "" || flags.Changed("out-dir") {
		opts.OutputDir = outputDir
	}
	if flags.Changed("json-filename") {
		opts.Name = jsonFilename
	}
	if flags.Changed("compression") {
		opts.Compression = compression
	}
	if flags.Changed("include-hidden") {
		opts.ExportHidden = includeHidden
	}
	if flags.Changed("reverse") {
		opts.ReverseDrawOrder = reverseOrder
	}
	if flags.Changed("autocrop") {
		opts.Autocrop = autocrop
	}

	result, err := spineexport.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\nExport Summary:")
	fmt.Printf("  • Document: %s\n", result.DocumentName)
	fmt.Printf("  • Slots: %d\n", len(result.Skeleton.Slots))
	fmt.Printf("  • Images: %d\n", len(result.Images))
	fmt.Printf("  • Skeleton: %s\n", result.JSONPath)

	green.Printf("\nExported %d layer(s) to %s\n\n", len(result.Images), opts.OutputDir)
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	doc, err := layers.LoadDocument(args[0])
	if err != nil {
		return err
	}
	logger.Infof("Document: %s (%dx%d)", doc.Name, doc.Canvas.Width, doc.Canvas.Height)

	nodes := doc.Layers
	if autocrop {
		nodes = layers.Autocrop(nodes)
	}

	flat, err := spine.Flatten(nodes, doc.Canvas, spine.FlattenOptions{
		VisibleOnly:  !includeHidden,
		ReverseOrder: reverseOrder,
	})
	if err != nil {
		return err
	}
	logger.Infof("Compositing %d layer(s)", len(flat.Leaves))

	img := preview.Composite(flat, doc.Canvas)
	path := filepath.Join(outputDir, doc.Name+"-preview.png")
	if err := preview.WritePNG(img, path); err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("Wrote preview %s\n", path)
	return nil
}

// cliLogger implements spineexport.Logger on top of charmbracelet/log.
type cliLogger struct {
	l *charmlog.Logger
}

func newLogger(verbose bool) *cliLogger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return &cliLogger{l: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})}
}

func (c *cliLogger) Infof(format string, args ...any)  { c.l.Infof(format, args...) }
func (c *cliLogger) Warnf(format string, args ...any)  { c.l.Warnf(format, args...) }
func (c *cliLogger) Errorf(format string, args ...any) { c.l.Errorf(format, args...) }
