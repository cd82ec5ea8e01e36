package services

import (
	"verimail/internal/app/deps"
	drl "verimail/internal/core/domain/rate_limiter"
	"verimail/internal/core/services"
	activateuser "verimail/internal/core/services/activate_user"
	"verimail/internal/core/services/auth"
	getuserbysessiontoken "verimail/internal/core/services/get_user_by_session_token"
	loginwithemail "verimail/internal/core/services/log_in_with_email"
	logout "verimail/internal/core/services/log_out"
	ratelimiting "verimail/internal/core/services/rate_limiting"
	sendactivationcode "verimail/internal/core/services/send_activation_code"
	signupwithemail "verimail/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail       services.Service[signupwithemail.Input, signupwithemail.Result]
	SendActivationCode    services.Service[sendactivationcode.Input, sendactivationcode.Result]
	ActivateUser          services.Service[activateuser.Input, activateuser.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	issueActivationCode := sendactivationcode.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ActivationCodeGenerator,
		deps.ActivationCodeSender,
		deps.Now,
	)

	s.SignUpWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		signupwithemail.NewWithActivationCodeIssuing(
			deps.Logger,
			issueActivationCode,
			signupwithemail.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PasswordHasher,
				deps.SessionTokenGenerator,
				deps.AccountEventPublisher,
				deps.Now,
			),
		),
	)
	s.SendActivationCode = auth.WithAuthentication(
		deps.SessionRepository,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: 5},
			issueActivationCode,
		),
	)
	s.ActivateUser = auth.WithAuthentication(
		deps.SessionRepository,
		activateuser.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.AccountEventPublisher,
			deps.Now,
		),
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbysessiontoken.New(),
	)

	return s
}
