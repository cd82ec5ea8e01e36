package email

import (
	"context"
	"encoding/json"
	"errors"

	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type ActivationCodeSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender             string
	activationTemplate string
}

func NewActivationCodeSender(
	awsConfig aws.Config,
	sender string,
	activationTemplate string,
) *ActivationCodeSender {
	return &ActivationCodeSender{
		ses:                ses.NewFromConfig(awsConfig),
		sender:             sender,
		activationTemplate: activationTemplate,
	}
}

func (s *ActivationCodeSender) SendActivationCode(
	ctx context.Context,
	u user.User,
	code identity.ActivationCode,
) error {
	if !u.Email.IsPresent {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		activationTemplateParams{ActivationCode: string(code)},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email.Value)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.activationTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type activationTemplateParams struct {
	ActivationCode string `json:"activationCode"`
}
