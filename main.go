package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-web/internal/backend"
	"auction-web/internal/config"
	"auction-web/internal/repository"
	"auction-web/internal/server"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// Global flags
	configPath string
	envFile    string
	port       string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "auction-web",
	Short: "auction-web - page server for the auction site",
	Long: `auction-web serves the interactive parts of the auction pages: the bid
form, checkout, favorites and price alerts, comments and account recovery.
Everything it knows comes from the auction backend.`,
	SilenceUsage: true,
}

// serveCmd starts the page server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the page server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "auction-web.yaml", "path to the YAML config file")
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to the .env file")
	serveCmd.Flags().StringVar(&port, "port", "", "listen port, overrides config and PORT")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the HTTP server and the session sweeper until ctx ends
func serve(ctx context.Context, cfg *config.Config) error {
	utils.SetLevel(cfg.Logging.Level)
	gin.SetMode(gin.ReleaseMode)

	client, err := backend.NewClient(cfg.Backend.URL, cfg.GetBackendTimeout())
	if err != nil {
		return err
	}

	repo := repository.NewMemoryRepo()
	router := server.SetupRouter(server.NewHandlers(cfg, client, repo))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("Starting auction page server", map[string]any{
			"addr":    srv.Addr,
			"backend": cfg.Backend.URL,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		server.RunSessionSweeper(gctx, repo, cfg.GetSessionTTL(), time.Minute)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		utils.Info("Shutting down auction page server", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
