package domain

import (
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
)

// IdentityClaims is the verified identity assertion extracted from the
// bearer token. Produced once per request and discarded afterwards.
type IdentityClaims struct {
	UserName string
	Groups   []string
}

// InGroup reports whether the claims contain the given group. Membership is
// exact, case-sensitive string equality ("group-as-domain-scope": group
// names and Studio domain names share one namespace).
func (c IdentityClaims) InGroup(group string) bool {
	for _, g := range c.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// DomainSummary is one entry of a domain listing. Name is human-assigned
// and externally stable; ID is the backend identifier and must be
// re-resolved on every request.
type DomainSummary struct {
	ID   string
	Name string
}

// DomainDetails describes a single Studio domain, including the default
// user settings copied onto newly created profiles. The settings blob is
// passed through to profile creation uninterpreted.
type DomainDetails struct {
	ID              string
	Name            string
	DefaultSettings *smtypes.UserSettings
}

// ProfileStatus is the lifecycle status of a user profile.
type ProfileStatus string

// ProfileStatusInService marks a fully provisioned profile. Any other
// value is an in-progress state.
const ProfileStatusInService ProfileStatus = "InService"

// UserProfile is the per-user, per-domain workspace record.
type UserProfile struct {
	DomainID string
	UserName string
	Status   ProfileStatus
}

// NewUserProfile carries everything needed to create a user profile.
type NewUserProfile struct {
	DomainID         string
	DomainName       string
	UserName         string
	ExecutionRoleARN string
	Settings         *smtypes.UserSettings
}
