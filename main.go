package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/Justina18/qr-code-app/api"
	"github.com/Justina18/qr-code-app/config"
	"github.com/Justina18/qr-code-app/store"
	"github.com/Justina18/qr-code-app/widget"
)

var version = "v1.0.0"

func main() {
	root := &cobra.Command{
		Use:   "qr-code-app",
		Short: "Configurable QR code generator with live preview and sharing",
	}

	// --- serve command -------------------------------------------------------
	var configPath string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the QR widget web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(serveCmd)

	// --- generate command ----------------------------------------------------
	var genOpts generateOptions
	genCmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Render a QR code PNG to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			return runGenerate(configPath, text, genOpts)
		},
	}
	genCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	genCmd.Flags().IntVar(&genOpts.size, "size", widget.DefaultSize, "Edge length in pixels (clamped to 100-400)")
	genCmd.Flags().StringVar(&genOpts.foreground, "foreground", widget.DefaultForeground, "Foreground hex color")
	genCmd.Flags().StringVar(&genOpts.background, "background", widget.DefaultBackground, "Background hex color")
	genCmd.Flags().BoolVar(&genOpts.noBackground, "no-background", false, "Render on a transparent background")
	genCmd.Flags().StringVar(&genOpts.level, "level", string(widget.LevelMedium), "Error correction level: low|medium|quartile|high")
	genCmd.Flags().StringVar(&genOpts.logoPath, "logo", "", "Path to a logo image to overlay")
	genCmd.Flags().StringVar(&genOpts.outDir, "out", "", "Output directory (default: configured export dir)")
	root.AddCommand(genCmd)

	// --- share command -------------------------------------------------------
	shareCmd := &cobra.Command{
		Use:   "share [text]",
		Short: "Open the WhatsApp share link in the default browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			return runShare(configPath, text)
		},
	}
	shareCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(shareCmd)

	// --- copy command --------------------------------------------------------
	copyCmd := &cobra.Command{
		Use:   "copy [text]",
		Short: "Copy text to the system clipboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			return runCopy(configPath, text)
		},
	}
	copyCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(copyCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qr-code-app %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config, builds the logger and assembles a ready widget.
func setup(configPath string) (*config.Config, *slog.Logger, *widget.Widget, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, nil, nil, fmt.Errorf("ensure data dir: %w", err)
	}

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	logos, err := store.NewLogoStore(cfg.DataDir, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open logo store: %w", err)
	}

	w := widget.New(cfg.DefaultText, cfg.ShareURL, logos, log)
	return cfg, log, w, nil
}

// runServe is the main service entrypoint that wires all components together.
func runServe(configPath string) error {
	cfg, log, w, err := setup(configPath)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("starting qr-code-app", "version", version, "port", cfg.Port, "data_dir", cfg.DataDir)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.NewRouter(api.NewServer(w, cfg, log, version)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("widget is running", "url", fmt.Sprintf("http://localhost:%d/", cfg.Port))

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("goodbye")
	return nil
}

type generateOptions struct {
	size         int
	foreground   string
	background   string
	noBackground bool
	level        string
	logoPath     string
	outDir       string
}

// runGenerate performs a one-shot export of the configured QR code.
func runGenerate(configPath, text string, opts generateOptions) error {
	cfg, _, w, err := setup(configPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if text != "" {
		w.SetText(text)
	}
	w.SetSize(opts.size)
	if err := w.SetForeground(opts.foreground); err != nil {
		return err
	}
	if err := w.SetBackground(opts.background); err != nil {
		return err
	}
	w.SetShowBackground(!opts.noBackground)

	level, err := widget.ParseLevel(opts.level)
	if err != nil {
		return err
	}
	if err := w.SetLevel(level); err != nil {
		return err
	}

	if opts.logoPath != "" {
		f, err := os.Open(opts.logoPath)
		if err != nil {
			return fmt.Errorf("open logo: %w", err)
		}
		_, err = w.SetLogo(f, opts.logoPath)
		f.Close()
		if err != nil {
			return fmt.Errorf("set logo: %w", err)
		}
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = cfg.ExportDir()
	}
	path, err := w.Export(outDir)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

// runShare opens the messaging deep link for text in the default browser.
func runShare(configPath, text string) error {
	_, _, w, err := setup(configPath)
	if err != nil {
		return err
	}
	defer w.Close()

	w.SetText(text)
	url := w.ShareURL()
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open share link: %w", err)
	}
	fmt.Println(url)
	return nil
}

// runCopy writes text to the system clipboard, falling back to the
// configured default when text is empty.
func runCopy(configPath, text string) error {
	_, _, w, err := setup(configPath)
	if err != nil {
		return err
	}
	defer w.Close()

	w.SetText(text)
	payload := w.ShareText()
	if err := clipboard.WriteAll(payload); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Printf("copied %q to clipboard\n", payload)
	return nil
}
