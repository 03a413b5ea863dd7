package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"qr-generator/internal/config"
	"qr-generator/internal/logging"
	"qr-generator/internal/services"
)

const (
	exitOK              = 0
	exitSetupFailure    = 1
	exitGenerationError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Load configuration
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage of qrgen:\n%s", config.Usage())
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		fmt.Fprintf(stderr, "Usage of qrgen:\n%s", config.Usage())
		return exitGenerationError
	}
	req := cfg.Request()

	// Setup logger
	logger, logFile, err := logging.Setup(req.LogDir, cfg.LogLevel, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to set up logging:", err)
		return exitSetupFailure
	}
	defer logFile.Close()

	logger.Info("Starting QR Code generation")
	logger.Infof("Using URL: %s", req.URL)
	logger.Infof("Output dir: %s", req.OutputDir)

	qrService := services.NewQRService(logger)
	outFile, err := qrService.Generate(req.URL, req.OutputDir)
	if err != nil {
		logger.WithError(err).Error("Failed to generate QR code")
		return exitGenerationError
	}

	logger.Infof("QR code saved to: %s", outFile)
	fmt.Fprintln(stdout, outFile)

	if cfg.Preview {
		qrService.RenderTerminal(stderr, req.URL)
	}
	return exitOK
}
