package app

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Derived profile links of code contributors.
const (
	contributorAvatarURL  = "https://avatars.githubusercontent.com/%s?s=96"
	contributorProfileURL = "https://github.com/%s"
)

// Contributor stats key holding commits count.
const commitsStat = "c"

type memberResponse struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Slug          string `json:"slug"`
	Image         string `json:"image"`
	Website       string `json:"website"`
	TwitterHandle string `json:"twitterHandle"`
}

func (m memberResponse) toMember() Member {
	return Member{
		ID:            m.ID,
		Slug:          m.Slug,
		Type:          m.Type,
		Image:         m.Image,
		Website:       m.Website,
		TwitterHandle: m.TwitterHandle,
	}
}

type membersByTypeResponse struct {
	AllMembers []struct {
		ID     int             `json:"id"`
		Member *memberResponse `json:"member"`
	} `json:"allMembers"`
}

func (r membersByTypeResponse) ToMembers() []Member {
	ms := make([]Member, 0, len(r.AllMembers))
	for _, edge := range r.AllMembers {
		if edge.Member == nil {
			continue
		}
		ms = append(ms, edge.Member.toMember())
	}

	return DedupeByID(ms)
}

type ordersByTierResponse struct {
	Collective *struct {
		Tiers []struct {
			Orders []struct {
				ID             int             `json:"id"`
				FromCollective *memberResponse `json:"fromCollective"`
			} `json:"orders"`
		} `json:"tiers"`
	} `json:"Collective"`
}

func (r ordersByTierResponse) ToMembers(collectiveSlug, tierSlug string) ([]Member, error) {
	if r.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}
	if len(r.Collective.Tiers) == 0 {
		return nil, tierNotFound(collectiveSlug, tierSlug)
	}

	orders := r.Collective.Tiers[0].Orders
	ms := make([]Member, 0, len(orders))
	for _, o := range orders {
		if o.FromCollective == nil {
			continue
		}
		ms = append(ms, o.FromCollective.toMember())
	}

	return DedupeByID(ms), nil
}

type contributorsResponse struct {
	Collective *struct {
		ID   int                 `json:"id"`
		Data jsoniter.RawMessage `json:"data"`
	} `json:"Collective"`
}

// ToMembers builds user records from the github contributors map kept in
// collective's data blob. Map order is preserved.
func (r contributorsResponse) ToMembers(collectiveSlug string) ([]Member, error) {
	if r.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}

	ms := []Member{}
	if len(r.Collective.Data) == 0 {
		return ms, nil
	}

	var blob struct {
		GithubContributors jsoniter.RawMessage `json:"githubContributors"`
	}
	if err := json.Unmarshal(r.Collective.Data, &blob); err != nil {
		return nil, errors.Wrap(err, "unmarshalling collective data")
	}
	if len(blob.GithubContributors) == 0 {
		return ms, nil
	}

	iter := json.BorrowIterator(blob.GithubContributors)
	defer json.ReturnIterator(iter)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, username string) bool {
		ms = append(ms, contributorMember(username, readCount(it)))
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrap(iter.Error, "reading github contributors")
	}

	return ms, nil
}

// readCount reads commits count. Fractions are truncated, non-numbers count as zero.
func readCount(it *jsoniter.Iterator) int {
	if it.WhatIsNext() != jsoniter.NumberValue {
		it.Skip()
		return 0
	}
	return int(it.ReadFloat64())
}

func contributorMember(username string, commits int) Member {
	return Member{
		Slug:    username,
		Type:    MemberTypeUser,
		Image:   fmt.Sprintf(contributorAvatarURL, username),
		Website: fmt.Sprintf(contributorProfileURL, username),
		Stats:   map[string]int{commitsStat: commits},
	}
}

type backerStatsResponse struct {
	Collective *struct {
		Stats struct {
			Backers BackersStats `json:"backers"`
		} `json:"stats"`
	} `json:"Collective"`
}

func (r backerStatsResponse) ToStats(collectiveSlug, backerType string) (*MembersStats, error) {
	if r.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}

	backers := r.Collective.Stats.Backers
	count := backers.Users
	if IsSponsorType(backerType) {
		count = backers.Organizations
	}

	return &MembersStats{
		Name:  backerType,
		Count: count,
	}, nil
}

type tierStatsResponse struct {
	Collective *struct {
		Tiers []struct {
			Slug  string `json:"slug"`
			Name  string `json:"name"`
			Stats struct {
				TotalDistinctOrders int `json:"totalDistinctOrders"`
			} `json:"stats"`
		} `json:"tiers"`
	} `json:"Collective"`
}

func (r tierStatsResponse) ToStats(collectiveSlug, tierSlug string) (*MembersStats, error) {
	if r.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}
	if len(r.Collective.Tiers) == 0 {
		return nil, tierNotFound(collectiveSlug, tierSlug)
	}

	tier := r.Collective.Tiers[0]
	return &MembersStats{
		Slug:  tier.Slug,
		Name:  tier.Name,
		Count: tier.Stats.TotalDistinctOrders,
	}, nil
}

type collectiveResponse struct {
	Collective *Collective `json:"Collective"`
}

type collectiveImageResponse struct {
	Collective *CollectiveImage `json:"Collective"`
}

// DedupeByID returns members with unique ids, keeping the first one seen.
// Order of members is preserved.
func DedupeByID(members []Member) []Member {
	seen := make(map[int]bool, len(members))
	result := make([]Member, 0, len(members))
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		result = append(result, m)
	}

	return result
}

func collectiveNotFound(slug string) error {
	return NotFoundError(fmt.Sprintf("collective %q not found", slug))
}

func tierNotFound(collectiveSlug, tierSlug string) error {
	return NotFoundError(fmt.Sprintf("tier %q of collective %q not found", tierSlug, collectiveSlug))
}
