// Command bigrsa-demo generates a textbook RSA keypair, encrypts a message
// and decrypts it again, printing every intermediate value.
//
//	go run ./cmd/bigrsa-demo -message "Hello, world!"
//	go run ./cmd/bigrsa-demo -bits 256 -seed demo -v
package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
)

func main() {
	var (
		bits    = flag.Int("bits", bigrsa.DefaultPrimeBits, "bit length of each prime")
		rounds  = flag.Int("rounds", bigrsa.DefaultRounds, "Miller-Rabin rounds per candidate")
		message = flag.String("message", "Hello, world!", "message to encrypt")
		seed    = flag.String("seed", "", "seed for a reproducible (insecure) keypair")
		verbose = flag.Bool("v", false, "log key generation progress")
	)
	flag.Parse()

	log.Printf("bigrsa version: %s", bigrsa.ModuleVersion())

	if err := run(context.Background(), os.Stdout, options{
		bits:    *bits,
		rounds:  *rounds,
		message: *message,
		seed:    *seed,
		verbose: *verbose,
	}); err != nil {
		if errors.Is(err, bigrsa.ErrMessageOutOfRange) {
			log.Fatalf("message too long for a %d-bit prime pair: %v", *bits, err)
		}
		log.Fatalf("demo failed: %v", err)
	}
}

type options struct {
	bits    int
	rounds  int
	message string
	seed    string
	verbose bool
}

func run(ctx context.Context, out io.Writer, opts options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := bigrsa.Config{
		PrimeBits: opts.bits,
		Rounds:    opts.rounds,
		Logger:    logger,
	}
	if opts.seed != "" {
		src, err := entropy.NewDeterministic([]byte(opts.seed))
		if err != nil {
			return err
		}
		cfg.Source = src
		logger.Warn(ctx, "using deterministic randomness; keys are not secret")
	}

	g, err := bigrsa.NewKeyGenerator(cfg)
	if err != nil {
		return err
	}
	kp, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	defer kp.Zeroize()

	fmt.Fprintf(out, "Public Key: %s\n", kp.PublicExponent)
	fmt.Fprintf(out, "Private Key: %s\n", kp.PrivateExponent)
	fmt.Fprintf(out, "Modulus: %s\n", kp.Modulus)

	cipherText, err := kp.Encrypt([]byte(opts.message))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Encrypted Message: %s\n", base64.StdEncoding.EncodeToString(cipherText))

	plain, err := kp.Decrypt(cipherText)
	if err != nil {
		return err
	}
	defer bigrsa.ZeroizeBytes(plain)
	if !utf8.Valid(plain) {
		return fmt.Errorf("decrypted message is not valid UTF-8 (%d bytes)", len(plain))
	}
	fmt.Fprintf(out, "Decrypted Message: %s\n", plain)
	return nil
}
