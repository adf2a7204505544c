// Command keccaksum prints Keccak, SHA-3 or SHAKE checksums of files.
//
//	keccaksum [--variant keccak|sha3|shake] [--bits N] [--length N] [file ...]
//
// With no files, or when a file is "-", standard input is read.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	VariantFlag = cli.StringFlag{
		Name:    "variant",
		Aliases: []string{"a"},
		Usage:   "hash family: keccak, sha3 or shake",
		Value:   "sha3",
	}
	BitsFlag = cli.IntFlag{
		Name:    "bits",
		Aliases: []string{"b"},
		Usage:   "security level: 224, 256, 384 or 512 (keccak, sha3); 128 or 256 (shake)",
		Value:   256,
	}
	LengthFlag = cli.IntFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "shake output length in bytes (default: bits/4)",
	}
	VerboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log debug details to stderr",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "keccaksum"
	app.Usage = "print Keccak, SHA-3 and SHAKE checksums"
	app.UsageText = app.Name + ` [flags] [file ...]`
	app.Flags = []cli.Flag{
		&VariantFlag,
		&BitsFlag,
		&LengthFlag,
		&VerboseFlag,
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	logger, err := newLogger(cliCtx.Bool(VerboseFlag.Name))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := parseConfig(cliCtx.String(VariantFlag.Name), cliCtx.Int(BitsFlag.Name), cliCtx.Int(LengthFlag.Name))
	if err != nil {
		return err
	}

	files := cliCtx.Args().Slice()
	if len(files) == 0 {
		files = []string{"-"}
	}
	return sumFiles(cliCtx.App.Writer, logger.Sugar(), cfg, files)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.DisableStacktrace = true
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		zcfg.Level.SetLevel(zap.DebugLevel)
	}
	return zcfg.Build()
}
