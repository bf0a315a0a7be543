package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	showAll bool

	// Presentation
	longListing bool
	jsonOutput  bool
	treeOutput  bool
	maxDepth    int
	noColor     bool

	// Output destination
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	verbose bool
)

// version is the application version, set via ldflags.
var version string = "dev"

// defaultMaxDepth bounds tree recursion when no configuration overrides
// it; it keeps runaway output (and symlink cycles) in check.
const defaultMaxDepth = 5

var rootCmd = &cobra.Command{
	Use:     "better-ls [PATH]",
	Short:   "better-ls lists directory contents as tables, JSON, or a tree.",
	Long:    `better-ls enumerates the entries of a directory and renders them as a compact table, a detailed table with permissions and owner, pretty-printed JSON records, or a recursive tree with colorized names.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if noColor {
			color.NoColor = true
		}

		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		// Path-level failures abort before any listing output is
		// produced; everything below them is best-effort.
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Println(errorStyle.Sprint("Path does not exist"))
			os.Exit(1)
		case err != nil:
			fmt.Println(errorStyle.Sprint("error reading directory"))
			os.Exit(1)
		case !info.IsDir():
			fmt.Println(errorStyle.Sprintf("%s is not a directory", path))
			os.Exit(1)
		}

		opts := Options{
			Path:       path,
			ShowHidden: showAll,
			Mode:       resolveMode(treeOutput, jsonOutput, longListing),
			MaxDepth:   maxDepth,
		}
		log.Debugf("listing %s (mode %d, max depth %d)", path, opts.Mode, opts.MaxDepth)

		if pdfOutputFile != "" {
			if err := generatePDF(path, listEntries(path, showAll), pdfOutputFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating PDF: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := writeOutput(renderListing(opts), outputFile, copyToClipboard); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show hidden files")
	viper.BindPFlag("all", rootCmd.Flags().Lookup("all"))
	rootCmd.Flags().BoolVarP(&longListing, "long", "l", false, "Use a long listing format")
	viper.BindPFlag("long", rootCmd.Flags().Lookup("long"))
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Emit the listing as JSON records")
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	rootCmd.Flags().BoolVar(&treeOutput, "tree", false, "List files in a tree-like format")
	viper.BindPFlag("tree", rootCmd.Flags().Lookup("tree"))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", defaultMaxDepth, "Maximum tree depth to expand")
	viper.BindPFlag("max_depth", rootCmd.Flags().Lookup("max-depth"))
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
	viper.BindPFlag("no_color", rootCmd.Flags().Lookup("no-color"))

	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save output to specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy output to clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the detailed listing as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log enumeration details to stderr")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	viper.SetDefault("all", false)
	viper.SetDefault("max_depth", defaultMaxDepth)
	viper.SetDefault("no_color", false)

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

// initConfig reads in the config file and BETTERLS_* environment
// variables, if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "betterls"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BETTERLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}

	// Config values back the flags that were not given explicitly.
	if !rootCmd.Flags().Changed("max-depth") {
		maxDepth = viper.GetInt("max_depth")
	}
	if !rootCmd.Flags().Changed("all") {
		showAll = viper.GetBool("all")
	}
	if !rootCmd.Flags().Changed("no-color") {
		noColor = viper.GetBool("no_color")
	}
}

func main() {
	rootCmd.Execute()
}
