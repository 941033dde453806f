package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-hub/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"
)

// sageMakerAPI is the subset of the SageMaker control-plane client the
// gateway depends on. The concrete *sagemaker.Client satisfies it.
type sageMakerAPI interface {
	ListDomains(ctx context.Context, params *sagemaker.ListDomainsInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListDomainsOutput, error)
	DescribeDomain(ctx context.Context, params *sagemaker.DescribeDomainInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeDomainOutput, error)
	DescribeUserProfile(ctx context.Context, params *sagemaker.DescribeUserProfileInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeUserProfileOutput, error)
	CreateUserProfile(ctx context.Context, params *sagemaker.CreateUserProfileInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateUserProfileOutput, error)
	CreatePresignedDomainUrl(ctx context.Context, params *sagemaker.CreatePresignedDomainUrlInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreatePresignedDomainUrlOutput, error)
}

// SageMakerGateway implements domain.StudioClient over the SageMaker API.
// It is a pure transport boundary: every SDK failure is normalized into the
// domain's error kinds and no business semantics live here.
type SageMakerGateway struct {
	api         sageMakerAPI
	callTimeout time.Duration
}

// NewSageMakerGateway creates a gateway around an SDK client.
func NewSageMakerGateway(api sageMakerAPI, callTimeout time.Duration) *SageMakerGateway {
	return &SageMakerGateway{api: api, callTimeout: callTimeout}
}

// isAPIErrorCode reports whether err carries the given SageMaker error
// code. The control plane can surface errors unmodeled (smithy.APIError
// without the generated type), so codes are checked alongside the typed
// errors.
func isAPIErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == code
}

// ListDomains returns the domain listing in backend order.
func (g *SageMakerGateway) ListDomains(ctx context.Context, maxResults int32) ([]domain.DomainSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	out, err := g.api.ListDomains(ctx, &sagemaker.ListDomainsInput{
		MaxResults: aws.Int32(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list domains: %w", domain.ErrUnrecoverableProvisioning, err)
	}

	summaries := make([]domain.DomainSummary, 0, len(out.Domains))
	for _, d := range out.Domains {
		summaries = append(summaries, domain.DomainSummary{
			ID:   aws.ToString(d.DomainId),
			Name: aws.ToString(d.DomainName),
		})
	}
	return summaries, nil
}

// DescribeDomain returns the details of a domain by backend ID.
func (g *SageMakerGateway) DescribeDomain(ctx context.Context, domainID string) (*domain.DomainDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	out, err := g.api.DescribeDomain(ctx, &sagemaker.DescribeDomainInput{
		DomainId: aws.String(domainID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: describe domain: %w", domain.ErrUnrecoverableProvisioning, err)
	}

	return &domain.DomainDetails{
		ID:              aws.ToString(out.DomainId),
		Name:            aws.ToString(out.DomainName),
		DefaultSettings: out.DefaultUserSettings,
	}, nil
}

// DescribeUserProfile returns the profile for (domainID, userName).
// A missing profile is reported as domain.ErrProfileNotFound so the caller
// can treat absence as a normal branch.
func (g *SageMakerGateway) DescribeUserProfile(ctx context.Context, domainID, userName string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	out, err := g.api.DescribeUserProfile(ctx, &sagemaker.DescribeUserProfileInput{
		DomainId:        aws.String(domainID),
		UserProfileName: aws.String(userName),
	})
	if err != nil {
		var notFound *smtypes.ResourceNotFound
		if errors.As(err, &notFound) || isAPIErrorCode(err, "ResourceNotFound") {
			return nil, fmt.Errorf("%w: %s in domain %s", domain.ErrProfileNotFound, userName, domainID)
		}
		return nil, fmt.Errorf("%w: describe user profile: %w", domain.ErrUnrecoverableProvisioning, err)
	}

	return &domain.UserProfile{
		DomainID: aws.ToString(out.DomainId),
		UserName: aws.ToString(out.UserProfileName),
		Status:   domain.ProfileStatus(out.Status),
	}, nil
}

// CreateUserProfile creates a profile, copying the domain's default user
// settings onto it. A create that loses a concurrent race is reported as
// domain.ErrProfileAlreadyExists.
func (g *SageMakerGateway) CreateUserProfile(ctx context.Context, profile domain.NewUserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	settings := &smtypes.UserSettings{
		ExecutionRole: aws.String(profile.ExecutionRoleARN),
	}
	if d := profile.Settings; d != nil {
		settings.SecurityGroups = d.SecurityGroups
		settings.SharingSettings = d.SharingSettings
		settings.JupyterServerAppSettings = d.JupyterServerAppSettings
		settings.KernelGatewayAppSettings = d.KernelGatewayAppSettings
		settings.TensorBoardAppSettings = d.TensorBoardAppSettings
		settings.RStudioServerProAppSettings = d.RStudioServerProAppSettings
		settings.RSessionAppSettings = d.RSessionAppSettings
		settings.CanvasAppSettings = d.CanvasAppSettings
	}

	_, err := g.api.CreateUserProfile(ctx, &sagemaker.CreateUserProfileInput{
		DomainId:        aws.String(profile.DomainID),
		UserProfileName: aws.String(profile.UserName),
		UserSettings:    settings,
		Tags: []smtypes.Tag{
			{Key: aws.String("Domain"), Value: aws.String(profile.DomainName)},
		},
	})
	if err != nil {
		var inUse *smtypes.ResourceInUse
		if errors.As(err, &inUse) || isAPIErrorCode(err, "ResourceInUse") {
			return fmt.Errorf("%w: %s in domain %s", domain.ErrProfileAlreadyExists, profile.UserName, profile.DomainID)
		}
		return fmt.Errorf("%w: create user profile: %w", domain.ErrUnrecoverableProvisioning, err)
	}
	return nil
}

// CreatePresignedDomainURL mints a fresh single-use Studio login URL.
func (g *SageMakerGateway) CreatePresignedDomainURL(ctx context.Context, domainID, userName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	out, err := g.api.CreatePresignedDomainUrl(ctx, &sagemaker.CreatePresignedDomainUrlInput{
		DomainId:        aws.String(domainID),
		UserProfileName: aws.String(userName),
	})
	if err != nil {
		return "", fmt.Errorf("%w: create presigned domain url: %w", domain.ErrUnrecoverableProvisioning, err)
	}

	url := aws.ToString(out.AuthorizedUrl)
	if url == "" {
		return "", fmt.Errorf("%w: presigned url response carried no url", domain.ErrUnrecoverableProvisioning)
	}
	return url, nil
}
