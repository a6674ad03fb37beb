package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	login "accounts/internal/http/handlers/auth/log_in"
	"accounts/internal/http/handlers/auth/register"
	resetpassword "accounts/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "accounts/internal/http/handlers/auth/send_password_reset_token"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	apiRouter := chi.NewRouter()
	apiRouter.Method(http.MethodPost, "/register", register.New(s.Register))
	apiRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	apiRouter.Method(
		http.MethodPost,
		"/request-reset",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	apiRouter.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api", apiRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
