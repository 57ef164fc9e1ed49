package awsid

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSTS struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (m *mockSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return m.out, m.err
}

func account() types.Account {
	return types.Account{Name: "prod", AccessKeyID: "AKIA", SecretAccessKey: "secret"}
}

func TestVerifier_Verify(t *testing.T) {
	var gotRegion string
	v := NewVerifierWithFactory(func(_ context.Context, _ types.Account, region string) (STSClient, error) {
		gotRegion = region
		return &mockSTS{out: &sts.GetCallerIdentityOutput{
			Account: aws.String("123456789012"),
			Arn:     aws.String("arn:aws:iam::123456789012:user/scanner"),
			UserId:  aws.String("AIDAEXAMPLE"),
		}}, nil
	})

	id, err := v.Verify(context.Background(), account(), "eu-west-1")
	require.NoError(t, err)

	assert.Equal(t, "123456789012", id.AccountID)
	assert.Equal(t, "arn:aws:iam::123456789012:user/scanner", id.ARN)
	assert.Equal(t, "AIDAEXAMPLE", id.UserID)
	assert.Equal(t, "eu-west-1", gotRegion)
}

func TestVerifier_Verify_DefaultRegion(t *testing.T) {
	var gotRegion string
	v := NewVerifierWithFactory(func(_ context.Context, _ types.Account, region string) (STSClient, error) {
		gotRegion = region
		return &mockSTS{out: &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}}, nil
	})

	_, err := v.Verify(context.Background(), account(), "")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", gotRegion)
}

func TestVerifier_Verify_STSError(t *testing.T) {
	v := NewVerifierWithFactory(func(context.Context, types.Account, string) (STSClient, error) {
		return &mockSTS{err: fmt.Errorf("InvalidClientTokenId")}, nil
	})

	_, err := v.Verify(context.Background(), account(), "us-east-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prod")
}

func TestVerifier_Verify_NilAccount(t *testing.T) {
	v := NewVerifierWithFactory(func(context.Context, types.Account, string) (STSClient, error) {
		return &mockSTS{out: &sts.GetCallerIdentityOutput{}}, nil
	})

	_, err := v.Verify(context.Background(), account(), "us-east-1")
	assert.Error(t, err)
}

func TestVerifier_Verify_InvalidAccount(t *testing.T) {
	v := NewVerifierWithFactory(func(context.Context, types.Account, string) (STSClient, error) {
		t.Fatal("factory should not be called for an invalid account")
		return nil, nil
	})

	_, err := v.Verify(context.Background(), types.Account{Name: "prod"}, "us-east-1")
	assert.Error(t, err)
}

func TestVerifier_Verify_FactoryError(t *testing.T) {
	v := NewVerifierWithFactory(func(context.Context, types.Account, string) (STSClient, error) {
		return nil, fmt.Errorf("no such config")
	})

	_, err := v.Verify(context.Background(), account(), "us-east-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build STS client")
}
