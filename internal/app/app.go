package app

import (
	"fmt"
	"net/http"
	"verimail/internal/app/deps"
	"verimail/internal/app/services"
	"verimail/internal/http/handlers/auth"
	activateuser "verimail/internal/http/handlers/auth/activate_user"
	loginwithemail "verimail/internal/http/handlers/auth/log_in_with_email"
	logout "verimail/internal/http/handlers/auth/log_out"
	me "verimail/internal/http/handlers/auth/me"
	sendactivationcode "verimail/internal/http/handlers/auth/send_activation_code"
	signupwithemail "verimail/internal/http/handlers/auth/sign_up_with_email"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Use(auth.SetAuthTokenToContext)
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail, isTestMode))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	authRouter.Method(
		http.MethodPost,
		"/activate/send",
		sendactivationcode.New(s.SendActivationCode, isTestMode),
	)
	authRouter.Method(http.MethodPost, "/activate", activateuser.New(s.ActivateUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
