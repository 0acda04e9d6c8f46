package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tabeeb-ai-agent/internal/agent"
	"tabeeb-ai-agent/internal/config"
	"tabeeb-ai-agent/internal/consultation"
	"tabeeb-ai-agent/internal/diagnose"
	"tabeeb-ai-agent/internal/engine"
	"tabeeb-ai-agent/internal/platform/telegram"
	"tabeeb-ai-agent/internal/report"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Clients
	aiClient := agent.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	tgClient := telegram.NewClient(cfg.TelegramToken)
	if cfg.DoctorChatID == 0 {
		log.Println("Warning: DOCTOR_CHAT_ID is not set or invalid. Urgent alerts will not be delivered.")
	}

	// 3. Services
	eng := engine.New(engine.Options{
		Mode:               engine.Mode(cfg.Engine.Mode),
		DiagnosisThreshold: cfg.Engine.DiagnosisThreshold,
		Rand:               rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	store := consultation.NewStore()
	delayer := consultation.NewRandomDelayer(
		time.Duration(cfg.Engine.DelayMinMS)*time.Millisecond,
		time.Duration(cfg.Engine.DelayMaxMS)*time.Millisecond,
	)
	reportSvc := report.NewService(tgClient, cfg.DoctorChatID)
	consultationSvc := consultation.NewService(store, eng, delayer, reportSvc)
	consultationHandler := consultation.NewHandler(consultationSvc)
	diagnoseHandler := diagnose.NewHandler(aiClient)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		consultation.RegisterRoutes(r, consultationHandler)
		diagnose.RegisterRoutes(r, diagnoseHandler)
	})

	log.Printf("Engine mode: %s (threshold %d)", cfg.Engine.Mode, cfg.Engine.DiagnosisThreshold)
	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
