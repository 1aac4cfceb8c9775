package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	adapthttp "gymtrack/internal/adapter/http"
	"gymtrack/internal/adapter/postgres"
	"gymtrack/internal/app"
	"gymtrack/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	cfg := config.Load()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)
	go func() {
		for {
			if err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("session cleanup: %v", err)
			}
			time.Sleep(time.Hour)
		}
	}()

	authSvc := app.NewAuthService(db, sessionRepo)
	programSvc := app.NewProgramService(db)
	exerciseSvc := app.NewExerciseService(db, db)
	workoutSvc := app.NewWorkoutService(db, db)
	recordSvc := app.NewRecordService(db)
	statsSvc := app.NewStatsService(db, db, db, db)

	oidcConfig := adapthttp.OIDCConfig{}
	if cfg.SSOEnabled() {
		provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
		if err != nil {
			log.Fatalf("oidc provider: %v", err)
		}
		oidcConfig = adapthttp.OIDCConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: &oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		}
		log.Printf("sso enabled via %s", cfg.OIDCIssuer)
	}

	h := adapthttp.New(authSvc, programSvc, exerciseSvc, workoutSvc, recordSvc, statsSvc, oidcConfig).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
