package signupwithemail

import (
	"context"
	"errors"
	"time"
	accountevent "verimail/internal/core/domain/account_event"
	c "verimail/internal/core/domain/common"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/logging"
	uow "verimail/internal/core/domain/unit_of_work"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "sign-up-with-email::" + string(i.Email)
}

type Result struct {
	User         user.User
	SessionToken user.SessionToken
	// Code is set by the issuing decorator, once the first activation code
	// has been sent.
	Code identity.ActivationCode
}

type service struct {
	log                   logging.Logger
	unitOfWork            uow.UnitOfWork
	passwordHasher        user.PasswordHasher
	sessionTokenGenerator user.SessionTokenGenerator
	eventPublisher        accountevent.Publisher
	now                   func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	sessionTokenGenerator user.SessionTokenGenerator,
	eventPublisher accountevent.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		unitOfWork:            unitOfWork,
		passwordHasher:        passwordHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		eventPublisher:        eventPublisher,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewOptional(input.Email, true),
		PasswordHash: c.NewOptional(passwordHash, true),
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"User with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The session lets the not-yet-active user request and submit codes.
	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	err = uow.Sessions().Create(ctx, user.CreateSessionInput{
		UserID:    createdUser.ID,
		Token:     sessionToken,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create session for the new user.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "New user has been created.", logging.Entry("userID", createdUser.ID))

	if err := s.eventPublisher.PublishRegistered(ctx, createdUser); err != nil {
		s.log.Error(
			ctx,
			"Could not publish account registered event.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
	}

	return Result{User: createdUser, SessionToken: sessionToken}, nil
}
