package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/segmenta/segmenta"
	"github.com/segmenta/segmenta/chunk"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "segmenta <input>",
	Short: "Split document text into bounded, overlapping chunks",
	Long: `Segmenta splits document text into chunks suitable for indexing or
retrieval. Text is broken at natural boundaries (paragraph, line, word,
character) while every chunk respects a maximum size and consecutive
chunks share a bounded overlap.

Supported inputs: plain text, markdown, HTML, and images (with the ocr
build tag). Output defaults to output/chunks_<epoch>.txt; use -o - to
write to stdout.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChunk,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.segmenta.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringP("output", "o", "", "output file ('-' for stdout, default output/chunks_<epoch>.txt)")
	rootCmd.Flags().Int("chunk-size", 500, "maximum chunk length in characters (recommended 200-500)")
	rootCmd.Flags().Int("chunk-overlap", 100, "maximum overlap between chunks in characters (recommended 50-100)")
	rootCmd.Flags().String("format", "text", "output format: text, json, or jsonl")
	rootCmd.Flags().String("ocr-lang", "eng", "Tesseract language(s) for image sources, e.g. eng+fra")

	mustBindPFlag("output", rootCmd.Flags().Lookup("output"))
	mustBindPFlag("chunk_size", rootCmd.Flags().Lookup("chunk-size"))
	mustBindPFlag("chunk_overlap", rootCmd.Flags().Lookup("chunk-overlap"))
	mustBindPFlag("format", rootCmd.Flags().Lookup("format"))
	mustBindPFlag("ocr_lang", rootCmd.Flags().Lookup("ocr-lang"))
}

// mustBindPFlag binds a viper key to a pflag and panics on failure.
// Binding only fails for a nil flag, which is a programming error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// initConfig reads the optional config file and SEGMENTA_* environment
// variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".segmenta")
		}
	}

	viper.SetEnvPrefix("SEGMENTA")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger. Output goes to stderr so chunk data
// written to stdout stays clean.
func newLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

func runChunk(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	input := args[0]
	chunkSize := viper.GetInt("chunk_size")
	chunkOverlap := viper.GetInt("chunk_overlap")

	format, err := chunk.ParseFormat(viper.GetString("format"))
	if err != nil {
		logger.Error("invalid format", zap.Error(err))
		return err
	}

	start := time.Now()
	logger.Info("starting chunking",
		zap.String("input", input),
		zap.Int("chunk_size", chunkSize),
		zap.Int("chunk_overlap", chunkOverlap),
	)

	col, warnings, err := segmenta.Open(input).
		ChunkSize(chunkSize).
		ChunkOverlap(chunkOverlap).
		OCRLanguage(viper.GetString("ocr_lang")).
		Chunks()

	for _, w := range warnings {
		logger.Warn(w.Message)
	}
	if err != nil {
		logger.Error("chunking failed", zap.Error(err))
		return err
	}

	logger.Info("chunking complete",
		zap.Int("total_chunks", col.Stats.TotalChunks),
		zap.Int("total_characters", col.Stats.TotalCharacters),
		zap.Int("avg_chunk_size", col.Stats.AvgChunkSize),
	)

	outPath := viper.GetString("output")
	if err := writeOutput(outPath, col, format, logger); err != nil {
		logger.Error("writing output failed", zap.Error(err))
		return err
	}

	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// writeOutput writes the collection to the requested destination.
// An empty path falls back to output/chunks_<epoch>.<ext>; "-" writes
// to stdout.
func writeOutput(path string, col *chunk.Collection, format chunk.Format, logger *zap.Logger) error {
	if path == "-" {
		return chunk.Write(os.Stdout, col, format)
	}

	if path == "" {
		ext := "txt"
		if format != chunk.FormatText {
			ext = format.String()
		}
		path = filepath.Join("output", fmt.Sprintf("chunks_%d.%s", time.Now().Unix(), ext))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := chunk.Write(f, col, format); err != nil {
		return err
	}

	logger.Info("chunks saved", zap.String("output", path))
	return f.Close()
}
