package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Showmax/go-fqdn"
	"github.com/rs/zerolog"
)

func main() {
	hashname := flag.String("hash", MD5.String(), "Digest algorithm ("+strings.Join(AlgorithmStrings(), ", ")+")")
	digest := flag.String("digest", "", "Hex encoded digest to crack, prompts for a password to hash if not supplied")
	maxlength := flag.Int("maxlength", 0, "Give up after trying passwords of this length, 0 to never give up")
	progress := flag.Bool("progress", isTerminal(os.Stderr), "Show progress for each password length")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	logger.Info().Msg("Hash Nom Nom - brute force your way back to the password")

	algorithm, err := AlgorithmString(*hashname)
	if err != nil {
		logger.Fatal().Err(err).Msg("Unknown hash algorithm")
	}

	var target []byte
	if *digest != "" {
		target, err = ParseDigest(algorithm, *digest)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid digest")
		}
	} else {
		password, err := readPassword(os.Stdin, os.Stdout)
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not read password")
		}
		target = algorithm.Digest([]byte(password))
		fmt.Printf("Solving for password %v with hash %v\n", password, hex.EncodeToString(target))
	}

	host, err := fqdn.FqdnHostname()
	if err != nil {
		host, _ = os.Hostname()
	}
	logger.Info().Str("host", host).Int("workers", DefaultWorkers).Int("charset", PrintableASCII.Len()).Msg("Starting search")

	opts := []Option{
		WithAlgorithm(algorithm),
		WithMaxLength(*maxlength),
		WithLogger(logger),
		WithRoundHook(func(r Round) {
			fmt.Println(formatRound(r))
		}),
	}
	if *progress {
		opts = append(opts, WithProgress(os.Stderr))
	}

	cracker, err := NewCracker(target, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not set up search")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if _, err := cracker.Run(ctx); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("Search stopped")
	}
}
