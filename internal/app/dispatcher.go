package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transport executes graphql queries against collectives api.
// Returns raw json of response's data field. Every failure is a *TransportError.
//go:generate mockgen -destination mock/transport.go -package mock github.com/kazup01/frontend/internal/app Transport
type Transport interface {
	Execute(ctx context.Context, q Query) ([]byte, error)
}

// Dispatcher is main apps entry point. It selects a query for the request,
// executes it with the transport and normalizes the response.
//
// Every call issues exactly one transport request. Dispatcher holds no state
// between calls and is safe for concurrent use.
type Dispatcher struct {
	transport Transport
	l         logrus.FieldLogger
}

// NewDispatcher creates new Dispatcher instance.
func NewDispatcher(transport Transport, l logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		l:         l,
	}
}

// FetchMembers returns normalized members of a collective.
// Members fetched by backer type or tier are unique by id.
func (d *Dispatcher) FetchMembers(ctx context.Context, r MembersRequest) ([]Member, error) {
	q, err := SelectMembersQuery(r)
	if err != nil {
		return nil, err
	}

	switch q.Template {
	case TemplateContributors:
		var resp contributorsResponse
		if err := d.execute(ctx, q, &resp); err != nil {
			return nil, err
		}
		members, err := resp.ToMembers(r.CollectiveSlug)
		if err != nil && !IsNotFoundError(err) {
			return nil, NewTransportError("decoding contributors", err)
		}
		return members, err

	case TemplateMembersByType:
		var resp membersByTypeResponse
		if err := d.execute(ctx, q, &resp); err != nil {
			return nil, err
		}
		return resp.ToMembers(), nil

	default:
		var resp ordersByTierResponse
		if err := d.execute(ctx, q, &resp); err != nil {
			return nil, err
		}
		return resp.ToMembers(r.CollectiveSlug, r.TierSlug)
	}
}

// FetchMembersStats returns members count for backer type or tier.
// Name of backer type stats is the backer type itself.
func (d *Dispatcher) FetchMembersStats(ctx context.Context, r MembersRequest) (*MembersStats, error) {
	q, err := SelectStatsQuery(r)
	if err != nil {
		return nil, err
	}

	if q.Template == TemplateBackerStats {
		var resp backerStatsResponse
		if err := d.execute(ctx, q, &resp); err != nil {
			return nil, err
		}
		return resp.ToStats(r.CollectiveSlug, r.BackerType)
	}

	var resp tierStatsResponse
	if err := d.execute(ctx, q, &resp); err != nil {
		return nil, err
	}
	return resp.ToStats(r.CollectiveSlug, r.TierSlug)
}

// FetchCollective returns collective details with its stats.
func (d *Dispatcher) FetchCollective(ctx context.Context, collectiveSlug string) (*Collective, error) {
	q := Query{
		Template:  TemplateCollective,
		Variables: Variables{"collectiveSlug": collectiveSlug},
	}

	var resp collectiveResponse
	if err := d.execute(ctx, q, &resp); err != nil {
		return nil, err
	}
	if resp.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}

	return resp.Collective, nil
}

// FetchCollectiveImage returns collective id and image.
func (d *Dispatcher) FetchCollectiveImage(ctx context.Context, collectiveSlug string) (*CollectiveImage, error) {
	q := Query{
		Template:  TemplateCollectiveImage,
		Variables: Variables{"collectiveSlug": collectiveSlug},
	}

	var resp collectiveImageResponse
	if err := d.execute(ctx, q, &resp); err != nil {
		return nil, err
	}
	if resp.Collective == nil {
		return nil, collectiveNotFound(collectiveSlug)
	}

	return resp.Collective, nil
}

// execute validates query, runs it and unmarshals response data into v.
func (d *Dispatcher) execute(ctx context.Context, q Query, v interface{}) error {
	if err := q.Validate(); err != nil {
		return err
	}

	l := d.l.WithField("template", q.Template)
	l.Debug("executing query")

	data, err := d.transport.Execute(ctx, q)
	if err != nil {
		l.Debugf("query failed: %v", err)
		if IsTransportError(err) {
			return err
		}
		return NewTransportError("executing query "+string(q.Template), err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return NewTransportError("decoding query "+string(q.Template), errors.Wrap(err, "unmarshalling response"))
	}

	return nil
}
