package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

// Backer types listed on the collective page.
const (
	pageSponsorsBackerType = "sponsors"
	pageBackersBackerType  = "backers"
)

// Page returns everything collective page renders: collective details,
// sponsoring organizations and individual backers.
// Parts are fetched concurrently. First failure cancels the rest.
func (d *Dispatcher) Page(ctx context.Context, collectiveSlug string) (*CollectivePage, error) {
	if collectiveSlug == "" {
		return nil, InvalidRequestError("collective slug cannot be empty")
	}

	var page CollectivePage
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		c, err := d.FetchCollective(ctx, collectiveSlug)
		if err != nil {
			return errors.Wrap(err, "fetching collective")
		}
		page.Collective = c
		return nil
	})
	p.Go(func(ctx context.Context) error {
		ms, err := d.FetchMembers(ctx, NewMembersRequest(collectiveSlug, pageSponsorsBackerType, ""))
		if err != nil {
			return errors.Wrap(err, "fetching sponsors")
		}
		page.Sponsors = ms
		return nil
	})
	p.Go(func(ctx context.Context) error {
		ms, err := d.FetchMembers(ctx, NewMembersRequest(collectiveSlug, pageBackersBackerType, ""))
		if err != nil {
			return errors.Wrap(err, "fetching backers")
		}
		page.Backers = ms
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &page, nil
}
