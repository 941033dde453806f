package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"studio-hub/internal/domain"
)

// CreateLoginURL orchestrates one login-URL request: authorize the caller
// against the requested Studio domain, resolve the domain ID by name,
// ensure the caller's user profile exists, and mint a presigned login URL.
type CreateLoginURL struct {
	client     domain.StudioClient
	accountID  string
	maxResults int32
	logger     *slog.Logger
}

// NewCreateLoginURL creates a new CreateLoginURL usecase. accountID is the
// AWS account hosting the domains; maxResults bounds the domain listing.
func NewCreateLoginURL(client domain.StudioClient, accountID string, maxResults int32, logger *slog.Logger) *CreateLoginURL {
	return &CreateLoginURL{client: client, accountID: accountID, maxResults: maxResults, logger: logger}
}

// Execute runs the flow for one request. Claims and domainName are assumed
// present; the handler validates them before calling here. The returned
// string is the presigned URL exactly as the backend minted it.
func (uc *CreateLoginURL) Execute(ctx context.Context, claims domain.IdentityClaims, domainName string) (string, error) {
	// Authorization precedes resolution: a caller outside the group gets
	// 403 even when the domain does not exist.
	if !claims.InGroup(domainName) {
		return "", fmt.Errorf("%w: user %s, domain %s", domain.ErrUserNotInGroup, claims.UserName, domainName)
	}

	domainID, err := uc.resolveDomainID(ctx, domainName)
	if err != nil {
		return "", err
	}

	if err := uc.ensureProfile(ctx, domainID, domainName, claims.UserName); err != nil {
		return "", err
	}

	url, err := uc.client.CreatePresignedDomainURL(ctx, domainID, claims.UserName)
	if err != nil {
		return "", err
	}

	uc.logger.InfoContext(ctx, "presigned login url issued",
		"user", claims.UserName,
		"domain", domainName,
		"domain_id", domainID)
	return url, nil
}

// resolveDomainID looks the domain up by name on every request. IDs are
// never cached across requests: a stale ID against a recreated domain must
// fail loudly, not act on the wrong resource.
func (uc *CreateLoginURL) resolveDomainID(ctx context.Context, domainName string) (string, error) {
	domains, err := uc.client.ListDomains(ctx, uc.maxResults)
	if err != nil {
		return "", err
	}
	if len(domains) == 0 {
		return "", fmt.Errorf("%w: no domains in account", domain.ErrDomainNotFound)
	}

	// Exact, case-sensitive match; first entry wins. Duplicate names are a
	// backend contract violation.
	for _, d := range domains {
		if d.Name != domainName {
			continue
		}
		if d.ID == "" {
			return "", fmt.Errorf("%w: domain %s listed without id", domain.ErrUnrecoverableProvisioning, domainName)
		}
		return d.ID, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrDomainNotFound, domainName)
}

// ensureProfile makes sure a user profile exists for (domainID, userName),
// creating one from the domain's default settings if absent. An existing
// profile is authoritative regardless of its status.
func (uc *CreateLoginURL) ensureProfile(ctx context.Context, domainID, domainName, userName string) error {
	profile, err := uc.client.DescribeUserProfile(ctx, domainID, userName)
	if err == nil {
		if profile.Status != domain.ProfileStatusInService {
			uc.logger.WarnContext(ctx, "user profile not yet in service",
				"user", userName,
				"domain_id", domainID,
				"status", string(profile.Status))
		}
		return nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}

	details, err := uc.client.DescribeDomain(ctx, domainID)
	if err != nil {
		return err
	}

	createErr := uc.client.CreateUserProfile(ctx, domain.NewUserProfile{
		DomainID:         domainID,
		DomainName:       details.Name,
		UserName:         userName,
		ExecutionRoleARN: fmt.Sprintf("arn:aws:iam::%s:role/%s-sagemaker-role", uc.accountID, details.Name),
		Settings:         details.DefaultSettings,
	})
	if createErr != nil {
		// A concurrent first-time request may have created the profile
		// between describe and create. Existence is all this step needs.
		if errors.Is(createErr, domain.ErrProfileAlreadyExists) {
			uc.logger.InfoContext(ctx, "user profile created concurrently",
				"user", userName,
				"domain_id", domainID)
			return nil
		}
		return createErr
	}

	// The freshly created profile may still be pending when the URL is
	// minted; there is no readiness poll here.
	uc.logger.WarnContext(ctx, "user profile created, may still be provisioning",
		"user", userName,
		"domain", domainName,
		"domain_id", domainID)
	return nil
}
