// Package awsid resolves the AWS identity behind an account's key pair via
// STS GetCallerIdentity. It lets the operator confirm a CSV row really
// authenticates as the account it claims to be before burning a full scan
// on it. Credentials are scoped to the SDK client, never written to disk.
package awsid

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/drover-cli/drover/pkg/types"
)

// STSClient is the subset of the STS API the verifier needs.
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// ClientFactory builds an STS client for one account's key pair. Tests
// inject a factory returning a mock client.
type ClientFactory func(ctx context.Context, acct types.Account, region string) (STSClient, error)

// Identity is the caller identity resolved for a key pair.
type Identity struct {
	AccountID string `json:"account_id"`
	ARN       string `json:"arn"`
	UserID    string `json:"user_id"`
}

// Verifier checks account key pairs against STS.
type Verifier struct {
	factory ClientFactory
}

// NewVerifier returns a verifier backed by the real AWS SDK.
func NewVerifier() *Verifier {
	return &Verifier{factory: defaultClient}
}

// NewVerifierWithFactory returns a verifier that uses f to build STS
// clients.
func NewVerifierWithFactory(f ClientFactory) *Verifier {
	return &Verifier{factory: f}
}

// Verify calls GetCallerIdentity with the account's key pair and returns the
// resolved identity. An empty region falls back to us-east-1, which is valid
// for the global STS endpoint.
func (v *Verifier) Verify(ctx context.Context, acct types.Account, region string) (Identity, error) {
	if err := acct.Validate(); err != nil {
		return Identity{}, err
	}
	if region == "" {
		region = "us-east-1"
	}

	client, err := v.factory(ctx, acct, region)
	if err != nil {
		return Identity{}, fmt.Errorf("build STS client for account %q: %w", acct.Name, err)
	}

	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("STS GetCallerIdentity for account %q: %w", acct.Name, err)
	}
	if out.Account == nil {
		return Identity{}, fmt.Errorf("STS GetCallerIdentity for account %q returned nil account", acct.Name)
	}

	return Identity{
		AccountID: aws.ToString(out.Account),
		ARN:       aws.ToString(out.Arn),
		UserID:    aws.ToString(out.UserId),
	}, nil
}

// defaultClient builds a real STS client with a static credentials provider
// holding the account's key pair.
func defaultClient(ctx context.Context, acct types.Account, region string) (STSClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(acct.AccessKeyID, acct.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}
	return sts.NewFromConfig(cfg), nil
}
