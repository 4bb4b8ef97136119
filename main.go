package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/coralledger/favicongen/internal/export"
)

const defaultOutputDir = "assets/favicons"

func main() {
	out := flag.String("out", defaultOutputDir, "output directory for the favicon assets")
	quiet := flag.Bool("quiet", false, "only log errors")
	flag.Parse()

	log := newLogger(*quiet)
	if err := run(*out, log); err != nil {
		log.Fatal().Err(err).Msg("favicon generation failed")
	}
	log.Info().Str("dir", *out).Msg("favicon set complete")
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// run executes the pipeline in order: rasters first, then the icon bundle,
// which reads the 32px master back from disk.
func run(dir string, log zerolog.Logger) error {
	if err := export.WritePNGs(dir, log); err != nil {
		return err
	}
	return export.ComposeICO(dir, log)
}
