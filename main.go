package main

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tailtheme/api"
	"tailtheme/config"
	"tailtheme/material"
	"tailtheme/model"
	"tailtheme/scheme"
	"tailtheme/storage"
	"tailtheme/swatch"
	"tailtheme/theme"
)

//go:embed web
var webFS embed.FS

var (
	dataDir    string
	listen     string
	listenPort int
	verbose    bool

	seed      string
	contrast  float64
	outPath   string
	copyOut   bool
	saveOut   bool
	serverURL string
	dryRun    bool

	appVersion = "0.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "tailtheme",
	Short: "tailtheme – Material color themes for Tailwind",
	Long:  "Tailtheme generates light and dark Material color themes from a seed color and emits them as Tailwind @theme CSS variables.",
	Run:   runServe,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the live preview server",
	Long:  "Serve generated theme CSS and push theme changes to connected preview pages over WebSocket.",
	Run:   runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate @theme CSS for a seed color",
	Long:  "Generate the light and dark theme variables for a seed color and write them as a Tailwind @theme block.",
	RunE:  runGenerate,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the generated palette in the terminal",
	RunE:  runPreview,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a theme to connected preview pages",
	Long:  "Ask a running preview server to apply a theme to every connected page, or print the property calls with --dry-run.",
	RunE:  runApply,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Manage tailtheme configuration files.",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a default configuration file",
	Long:  "Generate a default tailtheme.config file in the specified data directory (or current directory if not specified).",
	RunE:  runConfigGenerate,
}

func init() {
	wd, _ := os.Getwd()
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", wd, "Data directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&listen, "listen", "all", "IP address to listen on (default: all)")
		cmd.Flags().IntVar(&listenPort, "listen-port", 8080, "Port to listen on (default: 8080)")
	}

	for _, cmd := range []*cobra.Command{generateCmd, previewCmd, applyCmd} {
		cmd.Flags().StringVarP(&seed, "seed", "s", "", "Seed color as #RRGGBB (default: from config)")
		cmd.Flags().Float64VarP(&contrast, "contrast", "c", 0, "Contrast level between -1 and 1 (default: from config)")
	}

	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write CSS to this file instead of stdout")
	generateCmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the generated CSS to the clipboard")
	generateCmd.Flags().BoolVar(&saveOut, "save", false, "Save the generated CSS under the data directory")

	applyCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Preview server URL")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the property calls instead of contacting the server")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(serveCmd, generateCmd, previewCmd, applyCmd, configCmd)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newGenerator() *scheme.Generator {
	return scheme.NewGenerator(material.New())
}

// loadConfig loads config from data-dir and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dataDir
	} else if cfg.DataDir == "" || cfg.DataDir == "." {
		cfg.DataDir = dataDir
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("contrast"); f != nil && f.Changed {
		cfg.Contrast = contrast
	}

	dataDirAbs, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDirAbs

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	variants, err := newGenerator().Generate(cfg.Seed, cfg.Contrast)
	if err != nil {
		return err
	}
	css := theme.GenerateThemeCSS(variants, cfg.Seed, cfg.Contrast)

	out := cfg.Output
	if cmd.Flags().Changed("out") {
		out = outPath
	}
	if out == "" || out == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), css); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(out, []byte(css), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info().Str("path", out).Str("seed", cfg.Seed).Msg("theme written")
	}

	if copyOut {
		if err := clipboard.WriteAll(css); err != nil {
			logger.Warn().Err(err).Msg("copy to clipboard failed")
		} else {
			logger.Info().Msg("theme copied to clipboard")
		}
	}

	if saveOut {
		store := storage.New(cfg.DataDir, logger)
		if err := store.EnsureDirs(); err != nil {
			return fmt.Errorf("ensure data dir: %w", err)
		}
		header := theme.ParseHeader(css)
		rec, err := store.SaveTheme(model.ThemeRecord{
			Seed:        cfg.Seed,
			Contrast:    cfg.Contrast,
			GeneratedAt: header.GeneratedAt,
		}, css)
		if err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		logger.Info().Str("id", rec.ID).Str("path", rec.Path).Msg("theme saved")
	}

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	variants, err := newGenerator().Generate(cfg.Seed, cfg.Contrast)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seed %s, contrast %s\n\n", cfg.Seed, theme.FormatContrast(cfg.Contrast))
	fmt.Fprintln(cmd.OutOrStdout(), swatch.Render(variants, swatch.DefaultStyles()))
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if dryRun {
		variants, err := newGenerator().Generate(cfg.Seed, cfg.Contrast)
		if err != nil {
			return err
		}
		style := &theme.RecordingStyle{}
		theme.ApplyColorScheme(style, variants)
		for _, call := range style.Calls() {
			fmt.Fprintf(cmd.OutOrStdout(), "setProperty(%s, %s)\n", call.Name, call.Value)
		}
		return nil
	}

	body, err := json.Marshal(map[string]any{"seed": cfg.Seed, "contrast": cfg.Contrast})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(serverURL, "/")+"/api/apply", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("apply theme: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("apply theme: %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}
	fmt.Fprint(cmd.OutOrStdout(), string(respBody))
	return nil
}

func runServe(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	if cmd.Flags().Changed("listen") || cmd.Flags().Changed("listen-port") {
		if listen != "" && listen != "all" {
			cfg.ListenAddr = fmt.Sprintf("%s:%d", listen, listenPort)
		} else {
			cfg.ListenAddr = fmt.Sprintf(":%d", listenPort)
		}
	}

	store := storage.New(cfg.DataDir, logger)
	if err := store.EnsureDirs(); err != nil {
		logger.Fatal().Err(err).Msg("ensure data dir")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	themeManager := theme.NewManager(newGenerator(), cfg.Presets, logger)
	themeHandler := theme.NewHandler(themeManager)

	indexHTML, err := webFS.ReadFile("web/index.html")
	if err != nil {
		logger.Fatal().Err(err).Msg("read index.html")
	}
	indexTemplate := template.Must(template.New("index").Parse(string(indexHTML)))

	mux := http.NewServeMux()

	apiServer := api.NewServer(themeManager, store, logger)
	apiServer.Register(mux)

	mux.HandleFunc("/api/theme", themeHandler.HandleTheme)
	mux.HandleFunc("/api/tokens", themeHandler.HandleTokens)
	mux.HandleFunc("/api/presets", themeHandler.HandlePresets)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		currentPreset := "default"
		if presets := themeManager.ListPresets(); len(presets) > 0 {
			currentPreset = presets[0].Name
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTemplate.Execute(w, map[string]any{
			"Title":          "tailtheme",
			"PresetMenuHTML": template.HTML(themeHandler.GeneratePresetMenuHTML(currentPreset)),
			"CurrentPreset":  currentPreset,
			"Seed":           cfg.Seed,
			"Contrast":       theme.FormatContrast(cfg.Contrast),
			"AppVersion":     appVersion,
			"Year":           time.Now().Year(),
		})
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	printListeningAddresses(logger, cfg.ListenAddr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	dataDirAbs, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := config.Default()
	cfg.DataDir = dataDirAbs

	cfgPath := filepath.Join(dataDirAbs, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfgPath)
	return nil
}

func printListeningAddresses(logger zerolog.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		logger.Info().Msgf("listening on http://%s", addr)
		return
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		addrs, err := net.InterfaceAddrs()
		if err != nil {
			logger.Info().Msgf("listening on http://0.0.0.0:%s", port)
			return
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
				logger.Info().Msgf("listening on http://%s:%s", ipnet.IP.String(), port)
			}
		}
		logger.Info().Msgf("listening on http://localhost:%s", port)
		return
	}

	logger.Info().Msgf("listening on http://%s:%s", host, port)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
