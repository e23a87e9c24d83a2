package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"

	"chorus/internal/catalog"
	"chorus/internal/config"
	"chorus/internal/domain"
	"chorus/internal/log"
	"chorus/internal/service"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("chorus %s\n", Version)
		return
	}

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// .env is optional; real config comes from file and CHORUS_* env vars
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting chorus", "version", Version)

	if !cfg.IsConfigured() {
		return fmt.Errorf("no catalog service configured: set server.url in config.yaml or CHORUS_SERVER_URL")
	}

	client := catalog.NewClient(cfg.Server.URL, logger)
	session := domain.NewSession()
	sessions := service.NewSessionService(client, session, logger)
	searches := service.NewSearchService(client, logger)

	ctx := context.Background()

	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "login":
		return runLogin(ctx, sessions)
	case "signup":
		return runSignup(ctx, sessions)
	case "search":
		if len(args) < 3 {
			return usage()
		}
		return runSearch(ctx, searches, cfg.Search.Limit, args[1], args[2])
	default:
		return usage()
	}
}

func usage() error {
	return errors.New("usage: chorus login | signup | search <songs|albums|authors|users> <query>")
}

func runLogin(ctx context.Context, sessions *service.SessionService) error {
	var mail, pass string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Mail").Value(&mail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&pass),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	user, err := sessions.Login(ctx, mail, pass)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name(), user.Username())

	favorite, err := sessions.Session().FavoritePlaylist(ctx)
	if errors.Is(err, domain.ErrEmptyCollection) {
		fmt.Println("No playlists yet.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Favorite playlist: %s (%d songs)\n", favorite.Name(), favorite.SongAmount())
	return nil
}

func runSignup(ctx context.Context, sessions *service.SessionService) error {
	var mail, name, username, pass string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Mail").Value(&mail),
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Username").Value(&username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&pass),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if err := sessions.Signup(ctx, mail, name, username, pass); err != nil {
		return err
	}
	fmt.Printf("Account %s created. Run 'chorus login' to sign in.\n", username)
	return nil
}

func runSearch(ctx context.Context, searches *service.SearchService, limit int, kind, query string) error {
	switch kind {
	case "songs":
		songs, err := searches.SearchSongs(ctx, query, "", "", 0, limit)
		if err != nil {
			return err
		}
		for _, s := range songs {
			fmt.Printf("%s  %s  (%s)\n", s.ID, s.Title, s.FormattedDuration())
		}
	case "albums":
		albums, err := searches.SearchAlbums(ctx, query, "", 0, limit)
		if err != nil {
			return err
		}
		for _, a := range albums {
			fmt.Printf("%s  %s by %s  (%d tracks)\n", a.ID, a.Name, a.AuthorName, len(a.Songs))
		}
	case "authors":
		authors, err := searches.SearchAuthors(ctx, query, 0, limit)
		if err != nil {
			return err
		}
		for _, a := range authors {
			fmt.Printf("%s  %s\n", a.ID, a.Name)
		}
	case "users":
		users, err := searches.SearchUsers(ctx, query, query, 0, limit)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s  %s (%s)\n", u.ID(), u.Name(), u.Username())
		}
	default:
		return usage()
	}
	return nil
}
