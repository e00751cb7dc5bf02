package main

import (
	auth "Dripline/internal/auth"
	batch "Dripline/internal/calc/batch"
	deficit "Dripline/internal/calc/deficit"
	electrolytes "Dripline/internal/calc/electrolytes"
	importer "Dripline/internal/calc/importer"
	maintenance "Dripline/internal/calc/maintenance"
	plan "Dripline/internal/calc/plan"
	report "Dripline/internal/calc/report"
	tbw "Dripline/internal/calc/tbw"
	profile "Dripline/internal/profile"
	repo "Dripline/internal/repo"
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
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

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	var planCache repo.PlanCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		planCache = repo.NewRedisPlanCache(addr)
	} else {
		planCache = repo.NewMemoryPlanCache()
	}

	calc := plan.New()
	tbwH := &tbw.Handler{}
	maintenanceH := &maintenance.Handler{}
	deficitH := &deficit.Handler{}
	electrolytesH := &electrolytes.Handler{}
	planH := &plan.Handler{Calculator: calc, Store: userRepo, Cache: planCache}
	batchH := &batch.Handler{Calculator: calc}
	importerH := &importer.Handler{Calculator: calc}
	reportH := &report.Handler{Calculator: calc}

	secureApi.HandleFunc("/tools/tbw/calc", tbwH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/maintenance/calc", maintenanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/deficit/calc", deficitH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/electrolytes/calc", electrolytesH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/plan/calc", planH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/plan/batch", batchH.Plans).Methods("POST")
	secureApi.HandleFunc("/tools/plan/import", importerH.Plans).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/plans", planH.History).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
