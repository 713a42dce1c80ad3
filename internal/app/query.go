package app

import (
	"fmt"
	"strings"
)

// TemplateID identifies graphql query template.
type TemplateID string

// Query templates known to the dispatcher.
const (
	TemplateCollective      TemplateID = "collective"
	TemplateCollectiveImage TemplateID = "collectiveImage"
	TemplateContributors    TemplateID = "contributors"
	TemplateMembersByType   TemplateID = "membersByType"
	TemplateOrdersByTier    TemplateID = "ordersByTier"
	TemplateBackerStats     TemplateID = "backerStats"
	TemplateTierStats       TemplateID = "tierStats"
)

// Members are listed by the amount they donated, biggest first.
const membersOrderBy = "totalDonations"

type template struct {
	text     string
	required []string
}

var templates = map[TemplateID]template{
	TemplateCollective: {
		required: []string{"collectiveSlug"},
		text: `query Collective($collectiveSlug: String!) {
  Collective(slug: $collectiveSlug) {
    id
    slug
    image
    currency
    data
    stats {
      balance
      backers {
        all
        users
        organizations
      }
      yearlyBudget
    }
  }
}`,
	},
	TemplateCollectiveImage: {
		required: []string{"collectiveSlug"},
		text: `query Collective($collectiveSlug: String!) {
  Collective(slug: $collectiveSlug) {
    id
    image
  }
}`,
	},
	TemplateContributors: {
		required: []string{"collectiveSlug"},
		text: `query Collective($collectiveSlug: String!) {
  Collective(slug: $collectiveSlug) {
    id
    data
  }
}`,
	},
	TemplateMembersByType: {
		required: []string{"collectiveSlug", "type", "orderBy"},
		text: `query allMembers($collectiveSlug: String!, $type: String!, $orderBy: String!) {
  allMembers(collectiveSlug: $collectiveSlug, type: $type, orderBy: $orderBy) {
    id
    createdAt
    member {
      id
      type
      slug
      image
      website
      twitterHandle
    }
  }
}`,
	},
	TemplateOrdersByTier: {
		required: []string{"collectiveSlug", "tierSlug"},
		text: `query Collective($collectiveSlug: String!, $tierSlug: String!) {
  Collective(slug: $collectiveSlug) {
    tiers(slug: $tierSlug) {
      orders {
        id
        createdAt
        fromCollective {
          id
          type
          slug
          image
          website
          twitterHandle
        }
      }
    }
  }
}`,
	},
	TemplateBackerStats: {
		required: []string{"collectiveSlug"},
		text: `query Collective($collectiveSlug: String!) {
  Collective(slug: $collectiveSlug) {
    stats {
      backers {
        all
        users
        organizations
      }
    }
  }
}`,
	},
	TemplateTierStats: {
		required: []string{"collectiveSlug", "tierSlug"},
		text: `query Collective($collectiveSlug: String!, $tierSlug: String) {
  Collective(slug: $collectiveSlug) {
    tiers(slug: $tierSlug) {
      slug
      name
      stats {
        totalDistinctOrders
      }
    }
  }
}`,
	},
}

// Variables are graphql query variables.
type Variables map[string]interface{}

// Query is a graphql query: template and its variables bindings.
type Query struct {
	Template  TemplateID
	Variables Variables
}

// Text returns graphql document of query template.
// Returns empty string for unknown template.
func (q Query) Text() string {
	return templates[q.Template].text
}

// Validate checks that template is known and all required variables are bound.
func (q Query) Validate() error {
	t, ok := templates[q.Template]
	if !ok {
		return InvalidRequestError(fmt.Sprintf("unknown query template %q", q.Template))
	}
	for _, name := range t.required {
		v, ok := q.Variables[name]
		if !ok || v == nil || v == "" {
			return InvalidRequestError(fmt.Sprintf("query %s: variable %q is required", q.Template, name))
		}
	}

	return nil
}

// IsSponsorType tells if backer type describes organizations.
// Any backer type containing "sponsor", in any letter case, does.
func IsSponsorType(backerType string) bool {
	return strings.Contains(strings.ToLower(backerType), "sponsor")
}

// MemberTypeOf classifies backer type into member type.
func MemberTypeOf(backerType string) string {
	if IsSponsorType(backerType) {
		return MemberTypeOrganization
	}
	return MemberTypeUser
}

// SelectMembersQuery returns query fetching members for given request.
// Contributors mode wins over backer type, backer type wins over tier slug.
func SelectMembersQuery(r MembersRequest) (Query, error) {
	if err := r.Validate(); err != nil {
		return Query{}, err
	}

	switch {
	case r.Contributors:
		return Query{
			Template:  TemplateContributors,
			Variables: Variables{"collectiveSlug": r.CollectiveSlug},
		}, nil
	case r.BackerType != "":
		return Query{
			Template: TemplateMembersByType,
			Variables: Variables{
				"collectiveSlug": r.CollectiveSlug,
				"type":           MemberTypeOf(r.BackerType),
				"orderBy":        membersOrderBy,
			},
		}, nil
	default:
		return Query{
			Template: TemplateOrdersByTier,
			Variables: Variables{
				"collectiveSlug": r.CollectiveSlug,
				"tierSlug":       r.TierSlug,
			},
		}, nil
	}
}

// SelectStatsQuery returns query fetching members stats for given request.
// Contributors mode has no stats.
func SelectStatsQuery(r MembersRequest) (Query, error) {
	if err := r.Validate(); err != nil {
		return Query{}, err
	}

	switch {
	case r.Contributors:
		return Query{}, InvalidRequestError("members stats are not available in contributors mode")
	case r.BackerType != "":
		return Query{
			Template:  TemplateBackerStats,
			Variables: Variables{"collectiveSlug": r.CollectiveSlug},
		}, nil
	default:
		return Query{
			Template: TemplateTierStats,
			Variables: Variables{
				"collectiveSlug": r.CollectiveSlug,
				"tierSlug":       r.TierSlug,
			},
		}, nil
	}
}
