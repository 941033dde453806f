package domain

import "context"

// StudioClient is the narrow facade over the SageMaker control-plane API.
// Implementations normalize every backend failure into ErrProfileNotFound,
// ErrProfileAlreadyExists or ErrUnrecoverableProvisioning; no raw SDK error
// detail crosses this boundary.
type StudioClient interface {
	// ListDomains returns the domain listing, at most maxResults entries,
	// in backend order.
	ListDomains(ctx context.Context, maxResults int32) ([]DomainSummary, error)

	// DescribeDomain returns the details of a domain by backend ID.
	DescribeDomain(ctx context.Context, domainID string) (*DomainDetails, error)

	// DescribeUserProfile returns the profile for (domainID, userName), or
	// ErrProfileNotFound if none exists.
	DescribeUserProfile(ctx context.Context, domainID, userName string) (*UserProfile, error)

	// CreateUserProfile creates a profile. Returns ErrProfileAlreadyExists
	// when a concurrent request won the create race.
	CreateUserProfile(ctx context.Context, profile NewUserProfile) error

	// CreatePresignedDomainURL mints a fresh single-use login URL for the
	// profile.
	CreatePresignedDomainURL(ctx context.Context, domainID, userName string) (string, error)
}
