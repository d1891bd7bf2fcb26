package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codefix-quiz-service/internal/app"
	"codefix-quiz-service/internal/catalog"
	"codefix-quiz-service/internal/config"
	"codefix-quiz-service/internal/domain"
	"codefix-quiz-service/internal/infra/fallback"
	"codefix-quiz-service/internal/infra/memory"
	pginfra "codefix-quiz-service/internal/infra/postgres"
	redisinfra "codefix-quiz-service/internal/infra/redis"
	transport "codefix-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// Challenge banks: Postgres when configured, the built-in catalog as the
	// authored default either way.
	builtin := memory.NewStaticChallengeLoader(catalog.Banks())
	var loader memory.ChallengeLoader = builtin
	if pool != nil {
		loader = &catalogFallbackLoader{
			primary:  pginfra.NewChallengeLoader(pool),
			fallback: builtin,
		}
	}

	bankTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var challengeRepo app.ChallengeRepository
	if redisClient != nil {
		challengeRepo = redisinfra.NewChallengeRepository(redisClient, loader, bankTTL)
	} else {
		challengeRepo = memory.NewChallengeRepository(loader, bankTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore()
	}
	quizService := app.NewQuizService(sessions, challengeRepo, cfg.Quiz.Challenges, cfg.Quiz.TimeLimit)

	// Leaderboard: Postgres primary with a cache tier that also serves reads
	// when the primary is down. Without either backend everything lives in
	// memory and the fallback wrapper would be pointless.
	var primary app.LeaderboardRepository = memory.NewLeaderboardStore()
	if pool != nil {
		primary = pginfra.NewLeaderboardStore(pool)
	}
	leaderboardRepo := primary
	if pool != nil || redisClient != nil {
		var cache app.LeaderboardRepository = memory.NewLeaderboardStore()
		if redisClient != nil {
			cache = redisinfra.NewLeaderboardCache(redisClient)
		}
		leaderboardRepo = fallback.New(primary, cache)
	}

	allowedDomains := cfg.Leaderboard.AllowedEmailDomains
	if len(allowedDomains) == 0 {
		allowedDomains = []string{"gmail.com"}
	}
	leaderboardService := app.NewLeaderboardService(leaderboardRepo, allowedDomains)

	router := transport.NewRouter(
		transport.NewLeaderboardHandler(leaderboardService),
		transport.NewWSHandler(quizService),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting codefix quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// catalogFallbackLoader serves the built-in bank when the database has no
// row for a language yet.
type catalogFallbackLoader struct {
	primary  memory.ChallengeLoader
	fallback memory.ChallengeLoader
}

func (l *catalogFallbackLoader) LoadBank(ctx context.Context, lang domain.Language) (domain.ChallengeBank, error) {
	bank, err := l.primary.LoadBank(ctx, lang)
	if err == domain.ErrBankNotFound {
		return l.fallback.LoadBank(ctx, lang)
	}
	return bank, err
}
