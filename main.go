package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/ronu450/portfolio/internal/config"
	"github.com/ronu450/portfolio/internal/hero"
	"github.com/ronu450/portfolio/internal/media"
	"github.com/ronu450/portfolio/internal/portfolio"
	"github.com/ronu450/portfolio/internal/section"
	"github.com/ronu450/portfolio/internal/store"
)

func main() {
	log.SetPrefix("[WEB] ")
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newServeCommand(), newHeroCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	content, err := portfolio.LoadContent(cfg.ContentFile)
	if err != nil {
		return err
	}

	app := newApp(ctx, cfg, db, content)
	defer app.site.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newApp builds the site state; hero settings are loaded from storage.
func newApp(ctx context.Context, cfg config.Config, storage hero.Storage, content portfolio.Content) *App {
	mediaStore := media.NewStore()
	settings := hero.New(storage, mediaStore)
	settings.Load(ctx)

	return &App{
		cfg:   cfg,
		site:  portfolio.NewSite(content, settings, section.NewIDSource(time.Now)),
		media: mediaStore,
		auth:  newEditorAuth(cfg),
		now:   time.Now,
	}
}

func newHeroCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Inspect or change the persisted hero banner settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the hero video and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHero(cmd.Context(), func(ctx context.Context, s *hero.Settings) error {
				fmt.Fprintf(cmd.OutOrStdout(), "video:    %s\nlocation: %s\n", s.Video(), s.Location())
				return nil
			})
		},
	}

	var video, location string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change the hero video and/or location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			videoSet := cmd.Flags().Changed("video")
			locationSet := cmd.Flags().Changed("location")
			if !videoSet && !locationSet {
				return errors.New("nothing to set: pass --video and/or --location")
			}
			return withHero(cmd.Context(), func(ctx context.Context, s *hero.Settings) error {
				if videoSet {
					s.SetVideo(ctx, video)
				}
				if locationSet {
					s.SetLocation(ctx, location)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "video:    %s\nlocation: %s\n", s.Video(), s.Location())
				return nil
			})
		},
	}
	set.Flags().StringVar(&video, "video", "", "background video URL (empty clears it)")
	set.Flags().StringVar(&location, "location", "", "location label")

	cmd.AddCommand(show, set)
	return cmd
}

func withHero(ctx context.Context, fn func(context.Context, *hero.Settings) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	s := hero.New(db, nil)
	s.Load(ctx)
	return fn(ctx, s)
}
