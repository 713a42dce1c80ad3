package app

import jsoniter "github.com/json-iterator/go"

// Member types as reported by the collectives api.
const (
	MemberTypeUser         = "USER"
	MemberTypeOrganization = "ORGANIZATION"
)

// MembersRequest describes which members of a collective should be fetched.
// Exactly one of BackerType, TierSlug and Contributors must be set.
type MembersRequest struct {
	CollectiveSlug string
	BackerType     string
	TierSlug       string
	Contributors   bool
}

// contributorsBackerType is the backer type the page uses for code contributors.
const contributorsBackerType = "contributors"

// NewMembersRequest creates request from page params.
// Backer type "contributors" switches the request into contributors mode.
func NewMembersRequest(collectiveSlug, backerType, tierSlug string) MembersRequest {
	if backerType == contributorsBackerType {
		return MembersRequest{
			CollectiveSlug: collectiveSlug,
			TierSlug:       tierSlug,
			Contributors:   true,
		}
	}

	return MembersRequest{
		CollectiveSlug: collectiveSlug,
		BackerType:     backerType,
		TierSlug:       tierSlug,
	}
}

func (r MembersRequest) discriminators() int {
	var n int
	if r.BackerType != "" {
		n++
	}
	if r.TierSlug != "" {
		n++
	}
	if r.Contributors {
		n++
	}
	return n
}

// Validate checks collective slug and that exactly one discriminator is set.
func (r MembersRequest) Validate() error {
	if r.CollectiveSlug == "" {
		return InvalidRequestError("collective slug cannot be empty")
	}
	switch r.discriminators() {
	case 0:
		return InvalidRequestError("one of backer type, tier slug or contributors mode is required")
	case 1:
		return nil
	default:
		return InvalidRequestError("only one of backer type, tier slug or contributors mode can be set")
	}
}

// Member is a normalized member of a collective: a user or an organization.
type Member struct {
	ID            int            `json:"-"`
	Slug          string         `json:"slug"`
	Type          string         `json:"type"`
	Image         string         `json:"image,omitempty"`
	Website       string         `json:"website,omitempty"`
	TwitterHandle string         `json:"twitterHandle,omitempty"`
	Stats         map[string]int `json:"stats,omitempty"`
}

// MembersStats is an aggregated members count.
// Slug is set only for tier stats.
type MembersStats struct {
	Slug  string `json:"slug,omitempty"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BackersStats holds backer counts of a collective.
type BackersStats struct {
	All           int `json:"all"`
	Users         int `json:"users"`
	Organizations int `json:"organizations"`
}

// CollectiveStats holds money and backer stats of a collective.
type CollectiveStats struct {
	Balance      int          `json:"balance"`
	Backers      BackersStats `json:"backers"`
	YearlyBudget int          `json:"yearlyBudget"`
}

// Collective entity.
type Collective struct {
	ID       int                 `json:"id"`
	Slug     string              `json:"slug"`
	Image    string              `json:"image,omitempty"`
	Currency string              `json:"currency,omitempty"`
	Data     jsoniter.RawMessage `json:"data,omitempty"`
	Stats    *CollectiveStats    `json:"stats,omitempty"`
}

// CollectiveImage is a minimal collective projection used for page headers.
type CollectiveImage struct {
	ID    int    `json:"id"`
	Image string `json:"image,omitempty"`
}

// CollectivePage holds all data needed to render collective page.
type CollectivePage struct {
	Collective *Collective `json:"collective"`
	Sponsors   []Member    `json:"sponsors"`
	Backers    []Member    `json:"backers"`
}
