package main

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/circlecat/mentorship-dashboard/internal/application"
	"github.com/circlecat/mentorship-dashboard/internal/config"
	httptransport "github.com/circlecat/mentorship-dashboard/internal/http"
	"github.com/circlecat/mentorship-dashboard/internal/logging"
	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
	"github.com/circlecat/mentorship-dashboard/internal/mockdata"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
	"github.com/circlecat/mentorship-dashboard/internal/persistence/memory"
	"github.com/circlecat/mentorship-dashboard/internal/persistence/sqlite"
)

func main() {
	logger := logging.New(os.Stdout, "info")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger = logging.New(os.Stdout, cfg.LogLevel)

	rounds, err := sqlite.Open(cfg.RoundsDSN)
	if err != nil {
		logger.Error("failed to open round catalog", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := rounds.Close(); cerr != nil {
			logger.Error("failed to close round catalog", "error", cerr)
		}
	}()

	if err := rounds.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	if err := seedRounds(context.Background(), rounds); err != nil {
		logger.Error("failed to seed round catalog", "error", err)
		os.Exit(1)
	}

	store := memory.Open()
	defer func() {
		_ = store.Close()
	}()

	seed := cfg.DatasetSeed
	if seed == 0 {
		seed = randomSeed()
	}
	logger.Info("seeding demo dataset", "seed", seed)

	users, err := seedDataset(context.Background(), store, seed)
	if err != nil {
		logger.Error("failed to seed demo dataset", "error", err)
		os.Exit(1)
	}
	if err := seedAccounts(context.Background(), store, users, cfg.DemoPassword); err != nil {
		logger.Error("failed to seed demo accounts", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	tokenGenerator := sessionTokenGenerator(cfg.SessionSecret)
	now := time.Now

	authService := application.NewAuthService(store, store, nil, tokenGenerator, now, cfg.SessionTTL, logger)
	roundService := application.NewRoundService(rounds, idGenerator, now, logger)
	participationService := application.NewParticipationService(store, rounds, idGenerator, now, logger)
	reportingService := application.NewReportingService(store, logger)
	profileService := application.NewProfileService(store, idGenerator, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:           httptransport.NewAuthHandler(authService, logger),
		Rounds:         httptransport.NewRoundHandler(roundService, logger),
		Participations: httptransport.NewParticipationHandler(participationService, logger),
		Reports:        httptransport.NewReportingHandler(reportingService, logger),
		Profiles:       httptransport.NewProfileHandler(profileService, logger),
	})

	protected := httptransport.RequireSession(authService, logger)(router)
	handler := httptransport.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Login creates the session, and logout must work even when the
		// presented token is already expired. Both skip session validation.
		login := r.URL.Path == "/sessions" && r.Method == http.MethodPost
		logout := r.URL.Path == "/sessions/current" && r.Method == http.MethodDelete
		if login || logout {
			router.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("dashboard API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// seedRounds populates the round catalog with the built-in program history
// when the table is empty. Existing catalogs are left untouched so admin
// edits survive restarts.
func seedRounds(ctx context.Context, repo application.RoundRepository) error {
	existing, err := repo.ListRounds(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, round := range mockdata.DefaultRounds() {
		if err := repo.CreateRound(ctx, round); err != nil {
			return err
		}
	}
	return nil
}

// seedDataset generates and stores the randomized demo population.
func seedDataset(ctx context.Context, store *memory.Store, seed uint64) ([]mentorship.User, error) {
	users := mockdata.NewSeeded(seed).Dataset()
	for _, user := range users {
		if err := store.PutUser(ctx, user); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// seedAccounts creates one login per dataset role plus an administrator, all
// sharing the demo password.
func seedAccounts(ctx context.Context, store *memory.Store, users []mentorship.User, password string) error {
	hash, err := application.CreatePasswordHash(password, application.DefaultArgon2idParams)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	accounts := []persistence.Account{{
		ID:           "account-admin",
		Email:        "admin@company.com",
		DisplayName:  "Program Admin",
		Role:         string(mentorship.RoleAdmin),
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}}

	logins := map[mentorship.Role]string{
		mentorship.RoleEmployee:       "employee@company.com",
		mentorship.RoleIntern:         "intern@company.com",
		mentorship.RoleVolunteer:      "volunteer@company.com",
		mentorship.RoleGoogler:        "googler@company.com",
		mentorship.RoleExternalMentee: "mentee@company.com",
	}

	// The current user is always the first dataset record; dedicate the
	// employee login to them so the signed-in demo experience is stable.
	seen := make(map[mentorship.Role]bool)
	for _, user := range users {
		email, ok := logins[user.Role]
		if !ok || seen[user.Role] {
			continue
		}
		seen[user.Role] = true
		accounts = append(accounts, persistence.Account{
			ID:           "account-" + user.ID,
			Email:        email,
			DisplayName:  user.Name,
			Role:         string(user.Role),
			UserID:       user.ID,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for _, account := range accounts {
		if err := store.CreateAccount(ctx, account); err != nil {
			return err
		}
	}
	return nil
}

func randomSeed() uint64 {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf)
}

// sessionTokenGenerator yields session tokens keyed with the deployment
// secret: 32 random bytes run through HMAC-SHA256 under the secret, hex
// encoded. Token unpredictability then rests on the secret as well as on the
// process random source.
func sessionTokenGenerator(secret string) func() string {
	key := []byte(secret)
	return func() string {
		buf := make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
		}
		mac := hmac.New(sha256.New, key)
		mac.Write(buf)
		return hex.EncodeToString(mac.Sum(nil))
	}
}
