package activateuser

import (
	"context"
	"errors"
	"time"
	accountevent "verimail/internal/core/domain/account_event"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/logging"
	uow "verimail/internal/core/domain/unit_of_work"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"
	"verimail/internal/core/services/auth"
)

type Input struct {
	User user.User
	Code identity.ActivationCode
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	eventPublisher accountevent.Publisher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	eventPublisher accountevent.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	storedIdentity, err := uow.Identities().GetByUserAndType(ctx, input.User.ID, identity.EmailActivate)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, identity.ErrIdentityDoesNotExist) {
		s.log.Info(
			ctx,
			"No activation code issued for the user.",
			logging.Entry("userID", input.User.ID),
		)
		return result, identity.ErrInvalidActivationCode
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get activation code identity.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !storedIdentity.Matches(input.Code) {
		// Recoverable, the stored code stays and the user may retry.
		s.log.Info(
			ctx,
			"Submitted activation code does not match.",
			logging.Entry("userID", input.User.ID),
		)
		return result, identity.ErrInvalidActivationCode
	}

	u, err := uow.Users().Activate(ctx, input.User.ID, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not activate user.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// Consume the code so a replayed request cannot re-run the activation.
	if err := uow.Identities().DeleteByUserAndType(ctx, u.ID, identity.EmailActivate); err != nil {
		s.log.Error(
			ctx,
			"Could not delete consumed activation code.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "User successfully activated.", logging.Entry("userID", u.ID))

	if err := s.eventPublisher.PublishActivated(ctx, u); err != nil {
		// The activation is already committed, the event is best effort.
		s.log.Error(
			ctx,
			"Could not publish account activated event.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
	}

	return Result{User: u}, nil
}
