// Command aws manages the SES templates the service sends activation
// emails with. The sender address must be verified with Amazon SES.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"verimail/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	defaultSubject  = "Your activation code"
	defaultHtmlPart = "<p>Your activation code is <strong>{{activationCode}}</strong>.</p>"
	defaultTextPart = "Your activation code is {{activationCode}}."
)

func main() {
	action := flag.String("action", "create", "create or delete the activation email template")
	name := flag.String("name", "", "template name, defaults to AWS_EMAIL_ACTIVATION_TEMPLATE")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	templateName := *name
	if templateName == "" {
		templateName = cfg.AwsEmailActivationTemplate
	}

	svc := ses.NewFromConfig(loadAwsConfig(cfg))

	switch *action {
	case "create":
		createEmailTemplate(svc, templateName)
	case "delete":
		deleteEmailTemplate(svc, templateName)
	default:
		fatal(fmt.Errorf("unknown action: %s", *action))
	}
}

func loadAwsConfig(cfg *config.Config) aws.Config {
	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fatal(err)
	}
	return awsCfg
}

func createEmailTemplate(svc *ses.Client, name string) {
	subject := defaultSubject
	htmlPart := defaultHtmlPart
	textPart := defaultTextPart
	result, err := svc.CreateTemplate(context.Background(), &ses.CreateTemplateInput{
		Template: &types.Template{
			SubjectPart:  &subject,
			HtmlPart:     &htmlPart,
			TextPart:     &textPart,
			TemplateName: &name,
		},
	})
	if err != nil {
		fatal(err)
	}
	fmt.Println("Success:")
	fmt.Println(result)
}

func deleteEmailTemplate(svc *ses.Client, name string) {
	result, err := svc.DeleteTemplate(context.Background(), &ses.DeleteTemplateInput{
		TemplateName: &name,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Println("Success:")
	fmt.Println(result)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
