// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"gymtrack/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO configuration. When Enabled is
// false the SSO endpoints respond 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to
// application services.
type Server struct {
	auth      *app.AuthService
	programs  *app.ProgramService
	exercises *app.ExerciseService
	workouts  *app.WorkoutService
	records   *app.RecordService
	stats     *app.StatsService

	oidcConfig OIDCConfig

	// disableAuth skips session validation; for tests only.
	disableAuth bool
	testUserID  int64
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, programs *app.ProgramService, exercises *app.ExerciseService, workouts *app.WorkoutService, records *app.RecordService, stats *app.StatsService, oidcConfig OIDCConfig) *Server {
	return &Server{
		auth:       auth,
		programs:   programs,
		exercises:  exercises,
		workouts:   workouts,
		records:    records,
		stats:      stats,
		oidcConfig: oidcConfig,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /auth/signup", s.handleSignup)
	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("GET /auth/config", s.handleAuthConfig)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /programs", s.handleListPrograms)
	protected.HandleFunc("POST /programs", s.handleCreateProgram)
	protected.HandleFunc("GET /programs/{id}", s.handleGetProgram)
	protected.HandleFunc("DELETE /programs/{id}", s.handleDeleteProgram)
	protected.HandleFunc("GET /programs/{id}/exercises", s.handleListExercises)
	protected.HandleFunc("POST /programs/{id}/exercises", s.handleAddExercise)
	protected.HandleFunc("GET /programs/{id}/exercises/find", s.handleFindExercise)
	protected.HandleFunc("GET /programs/{id}/overview", s.handleProgramOverview)
	protected.HandleFunc("POST /workouts", s.handleStartWorkout)
	protected.HandleFunc("POST /workouts/{id}/sets", s.handleRecordStrengthSet)
	protected.HandleFunc("POST /workouts/{id}/cardio", s.handleRecordCardio)
	protected.HandleFunc("GET /records", s.handleGetRecord)
	protected.HandleFunc("GET /history", s.handleHistory)
	protected.HandleFunc("GET /exercises/detail", s.handleExerciseDetail)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
