// Package aws adapts the AWS SDK to the inventory provider, artifact store and
// notifier contracts used by the scan pipeline.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client wraps the AWS SDK configuration for creating service clients.
type Client struct {
	cfg awssdk.Config
}

// NewClient creates a new AWS client using the specified profile and region.
func NewClient(ctx context.Context, profile, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Client{cfg: cfg}, nil
}

// Region returns the configured region.
func (c *Client) Region() string {
	return c.cfg.Region
}

// NewProvider creates an inventory provider backed by EC2, ELBv2 and RDS.
func (c *Client) NewProvider() *Provider {
	return NewProvider(ec2.NewFromConfig(c.cfg), elbv2.NewFromConfig(c.cfg), rds.NewFromConfig(c.cfg))
}

// NewArtifactStore creates an S3-backed artifact store for bucket.
func (c *Client) NewArtifactStore(bucket string) *ArtifactStore {
	return NewArtifactStore(s3.NewFromConfig(c.cfg), bucket)
}

// NewTopicNotifier creates an SNS notifier publishing to topicARN.
func (c *Client) NewTopicNotifier(topicARN string) *TopicNotifier {
	return NewTopicNotifier(sns.NewFromConfig(c.cfg), topicARN)
}

// AccountID resolves the account ID of the loaded credentials.
func (c *Client) AccountID(ctx context.Context) (string, error) {
	return AccountID(ctx, sts.NewFromConfig(c.cfg))
}
