package signupwithemail

import (
	"context"
	"errors"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/logging"
	"verimail/internal/core/services"
	sendactivationcode "verimail/internal/core/services/send_activation_code"
)

type serviceWithActivationCodeIssuing struct {
	log          logging.Logger
	issueService services.Service[sendactivationcode.Input, sendactivationcode.Result]
	inner        services.Service[Input, Result]
}

// NewWithActivationCodeIssuing issues the first activation code right after a
// successful sign up, reusing the same issuance path the re-send endpoint uses.
func NewWithActivationCodeIssuing(
	log logging.Logger,
	issueService services.Service[sendactivationcode.Input, sendactivationcode.Result],
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if issueService == nil {
		panic(e.NewNilArgumentError("issueService"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithActivationCodeIssuing{
		log:          log,
		issueService: issueService,
		inner:        inner,
	}
}

func (s *serviceWithActivationCodeIssuing) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip issuing activation code.", logging.Entry("err", err))
		return result, err
	}

	issueResult, err := s.issueService.Run(ctx, sendactivationcode.Input{User: result.User})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue activation code for the new user.",
			logging.Entry("userID", result.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	result.Code = issueResult.Code
	s.log.Info(
		ctx,
		"Activation code has been sent to the new user.",
		logging.Entry("userID", result.User.ID),
	)
	return result, nil
}
