package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/stub"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := stub.NewServer(cfg)
	server.OnResetToken = func(email, userID, token string) {
		log.Printf("reset link for %s: /reset-password?id=%s&token=%s", email, userID, token)
	}

	admin, err := server.SeedUser("Admin", cfg.StubAdminEmail, cfg.StubAdminPassword, model.RoleAdmin)
	if err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	log.Printf("seeded admin %s (%s)", admin.Email, admin.ID)

	httpServer := &http.Server{
		Addr:              cfg.StubHTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("feedback-stub listening on %s", cfg.StubHTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
