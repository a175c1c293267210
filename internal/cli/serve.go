package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/news"
	"github.com/claimlens/claimlens/internal/pipeline"
	"github.com/claimlens/claimlens/internal/server"
)

var (
	serveAddr   string
	allowOrigin string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fact-check HTTP API",
	Long: `Serve exposes the fact-check pipeline over HTTP:

  POST /api/check   {"query": "<claim>"}  ->  fact-check result JSON
  GET  /healthz                           ->  liveness probe

Example:
  claimlens serve
  claimlens serve --addr :9090 --allow-origin https://app.example`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&allowOrigin, "allow-origin", "", "CORS allowed origin (default from config)")
	serveCmd.Flags().BoolVar(&enrich, "enrich", false, "fetch article pages for full text before analysis")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if allowOrigin != "" {
		cfg.Server.AllowedOrigin = allowOrigin
	}
	if enrich {
		cfg.Enrich.Enabled = true
	}

	if err := applyLLMFlags(cfg, llmEnabled, llmProvider, llmModel); err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, news.NewClient(cfg))
	srv := server.NewServer(cfg.Server, p).HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "Received %v, shutting down\n", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
