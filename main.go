package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	auth "Strapcalc/internal/auth"
	cbm "Strapcalc/internal/calc/cbm"
	batch "Strapcalc/internal/calc/premium/batch"
	importer "Strapcalc/internal/calc/premium/importer"
	sweep "Strapcalc/internal/calc/premium/sweep"
	report "Strapcalc/internal/calc/report"
	securing "Strapcalc/internal/calc/securing"
	config "Strapcalc/internal/config"
	history "Strapcalc/internal/history"
	logging "Strapcalc/internal/logging"
	repo "Strapcalc/internal/repo"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, userRepo repo.Repository) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: userRepo, SecureCookie: cfg.TLS()}
	historyH := &history.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	mux.Use(logging.Middleware)
	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	securingH := &securing.Handler{}
	cbmH := &cbm.Handler{}

	api.HandleFunc("/tools/securing/calc", securingH.Calc).Methods("POST")
	api.HandleFunc("/tools/securing/units", securingH.Units).Methods("GET")
	api.HandleFunc("/tools/securing/regions", securingH.Regions).Methods("GET")
	api.HandleFunc("/tools/cbm/calc", cbmH.Calc).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	sweepH := &sweep.Handler{}

	secureApi.HandleFunc("/tools/securing/report", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/securing/batch", batchH.Securing).Methods("POST")
	secureApi.HandleFunc("/tools/securing/import", importerH.Securing).Methods("POST")
	secureApi.HandleFunc("/tools/securing/sweep", sweepH.Angles).Methods("POST")

	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")
}

func openRepository(ctx context.Context, cfg config.Config) (repo.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		logging.Logger.Warn("DATABASE_URL not set, keeping users and history in memory")
		return repo.NewMemoryRepository(), func() {}, nil
	}
	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repo.NewPostgresUserDB(db), func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		logging.Logger.Fatal("load config", zap.Error(err))
	}
	if err := logging.Initialize(cfg.Log); err != nil {
		logging.Logger.Fatal("init logging", zap.Error(err))
	}
	defer logging.Sync()
	if err := cfg.Validate(); err != nil {
		logging.Logger.Fatal("invalid config", zap.Error(err))
	}

	userRepo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		logging.Logger.Fatal("open database", zap.Error(err))
	}
	defer closeRepo()

	mux := mux.NewRouter()
	HandleList(mux, cfg, userRepo)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	logging.Logger.Info("starting server", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS()))
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logging.Logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("server shutdown", zap.Error(err))
	}
	wg.Wait()
	logging.Logger.Info("server stopped")
}
