package sendactivationcode

import (
	"context"
	"errors"
	"fmt"
	"time"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/logging"
	uow "verimail/internal/core/domain/unit_of_work"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"
	"verimail/internal/core/services/auth"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("send-activation-code::%d", i.User.ID)
}

type Result struct {
	User user.User
	Code identity.ActivationCode
}

type service struct {
	log           logging.Logger
	unitOfWork    uow.UnitOfWork
	codeGenerator identity.ActivationCodeGenerator
	codeSender    identity.ActivationCodeSender
	now           func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	codeGenerator identity.ActivationCodeGenerator,
	codeSender identity.ActivationCodeSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if codeGenerator == nil {
		panic(e.NewNilArgumentError("codeGenerator"))
	}
	if codeSender == nil {
		panic(e.NewNilArgumentError("codeSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		unitOfWork:    unitOfWork,
		codeGenerator: codeGenerator,
		codeSender:    codeSender,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u := input.User
	if !u.Email.IsPresent {
		err = e.NewInvalidStateError(fmt.Sprintf("user %d has no email address", u.ID))
		s.log.Error(ctx, "Cannot issue activation code.", logging.Entry("userID", u.ID), logging.Entry("err", err))
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
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	// Any previously issued code is superseded; at most one live code per user.
	if err := uow.Identities().DeleteByUserAndType(ctx, u.ID, identity.EmailActivate); err != nil {
		s.log.Error(
			ctx,
			"Could not delete previous activation codes.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	code := s.codeGenerator.GenerateActivationCode()
	issuedAt := s.now()
	_, err = uow.Identities().Create(ctx, identity.CreateInput{
		UserID:    u.ID,
		Type:      identity.EmailActivate,
		Secret:    code,
		Label:     identity.LabelRegister,
		Note:      fmt.Sprintf("email verification pending since %s", carbon.Time2Carbon(issuedAt).ToDateTimeString()),
		CreatedAt: issuedAt,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create activation code identity.",
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

	err = s.codeSender.SendActivationCode(ctx, u, code)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send activation code.",
			logging.Entry("userID", u.ID),
			logging.Entry("email", u.Email),
			logging.Entry("err", err),
		)
		return result, &identity.ActivationCodeDeliveryError{Email: u.Email.Value, Err: err}
	}

	s.log.Info(
		ctx,
		"Activation code has been issued and sent.",
		logging.Entry("userID", u.ID),
		logging.Entry("email", u.Email),
	)
	return Result{User: u, Code: code}, nil
}
