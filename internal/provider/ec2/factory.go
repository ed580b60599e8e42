// Where: autoshutdown/internal/provider/ec2/factory.go
// What: EC2 client factory.
// Why: Encapsulate SDK configuration, including local endpoints and static keys.
package ec2

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
)

const defaultAWSRegion = "us-east-1"

// Settings controls how the EC2 client is built.
// Empty fields fall back to the SDK default chain.
type Settings struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ClientFactory builds InstanceStoppers.
type ClientFactory interface {
	Stopper(ctx context.Context, settings Settings) (ports.InstanceStopper, error)
}

// NewClientFactory returns the SDK-backed factory.
func NewClientFactory() ClientFactory {
	return awsClientFactory{}
}

type awsClientFactory struct{}

func (awsClientFactory) Stopper(ctx context.Context, settings Settings) (ports.InstanceStopper, error) {
	cfg, err := loadAWSConfig(ctx, settings)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(settings.Endpoint)
	client := ec2.NewFromConfig(cfg, func(options *ec2.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewStopper(client), nil
}

func loadAWSConfig(ctx context.Context, settings Settings) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resolveRegion(settings.Region)),
	}
	if creds := staticCredentials(settings); creds != nil {
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}

func resolveRegion(region string) string {
	if value := strings.TrimSpace(region); value != "" {
		return value
	}
	return defaultAWSRegion
}

// staticCredentials returns nil unless both keys are set, leaving the
// default chain (role, profile, env) in charge.
func staticCredentials(settings Settings) aws.CredentialsProvider {
	accessKey := strings.TrimSpace(settings.AccessKey)
	secretKey := strings.TrimSpace(settings.SecretKey)
	if accessKey == "" || secretKey == "" {
		return nil
	}
	return credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
}
