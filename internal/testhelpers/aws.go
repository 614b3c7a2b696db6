package testhelpers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

const localStackRegion = "eu-west-1"

// LocalStackContainer contains a localstack instance running DynamoDB and the aws config to reach it.
type LocalStackContainer struct {
	Config   aws.Config
	Endpoint string

	*localstack.LocalStackContainer
}

// CreateLocalStackContainer starts localstack with the DynamoDB service.
func CreateLocalStackContainer(ctx context.Context, image string) (*LocalStackContainer, error) {
	lsContainer, err := localstack.Run(ctx, image,
		testcontainers.WithEnv(map[string]string{"SERVICES": "dynamodb"}),
	)
	if err != nil {
		return nil, err
	}

	endpoint, err := lsContainer.PortEndpoint(ctx, "4566/tcp", "http")
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(localStackRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		return nil, err
	}

	return &LocalStackContainer{
		Config:              awsCfg,
		Endpoint:            endpoint,
		LocalStackContainer: lsContainer,
	}, nil
}
