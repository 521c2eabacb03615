package client

import (
	"context"
	"fmt"
	"net/url"

	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// ActorsClient implements the esig.ActorsClient interface.
type ActorsClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewActorsClient creates a new ActorsClient.
func NewActorsClient(httpClient *http_internal.Client, set *schema.Set) *ActorsClient {
	return &ActorsClient{
		httpClient: httpClient,
		schema:     set,
	}
}

func actorsPath(packageID, stakeholderID string) string {
	return resourcePath("/packages/%s/stakeholders/%s/actors", packageID, stakeholderID)
}

// List lists the actors of a stakeholder.
func (c *ActorsClient) List(ctx context.Context, packageID, stakeholderID string) ([]esig.Actor, error) {
	resp, err := c.httpClient.Get(ctx, actorsPath(packageID, stakeholderID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing actors: %w", err)
	}

	var actors []esig.Actor

	err = decodeVariantList(c.schema.Actors, resp.Body, &actors)
	if err != nil {
		return nil, fmt.Errorf("parsing actors response: %w", err)
	}

	return actors, nil
}

// Create adds an actor to a stakeholder of a draft package.
func (c *ActorsClient) Create(ctx context.Context, packageID, stakeholderID string, actor esig.ActorInput) (*esig.Actor, error) {
	if actor == nil {
		return nil, fmt.Errorf("creating actor: %w", esig.ErrInputRequired)
	}

	payload, err := encodeVariant(c.schema.Actors, string(actor.ActorType()), actor)
	if err != nil {
		return nil, fmt.Errorf("creating actor: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, actorsPath(packageID, stakeholderID), payload)
	if err != nil {
		return nil, fmt.Errorf("creating actor: %w", err)
	}

	var created esig.Actor

	err = decodeVariant(c.schema.Actors, payload, resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing actor response: %w", err)
	}

	return &created, nil
}

// Get retrieves a specific actor.
func (c *ActorsClient) Get(ctx context.Context, packageID, stakeholderID, actorID string) (*esig.Actor, error) {
	resp, err := c.httpClient.Get(ctx, actorsPath(packageID, stakeholderID)+"/"+url.PathEscape(actorID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting actor: %w", err)
	}

	var actor esig.Actor

	err = decodeVariant(c.schema.Actors, nil, resp.Body, &actor)
	if err != nil {
		return nil, fmt.Errorf("parsing actor response: %w", err)
	}

	return &actor, nil
}

// Delete removes an actor from a draft package.
func (c *ActorsClient) Delete(ctx context.Context, packageID, stakeholderID, actorID string) error {
	_, err := c.httpClient.Delete(ctx, actorsPath(packageID, stakeholderID)+"/"+url.PathEscape(actorID))
	if err != nil {
		return fmt.Errorf("deleting actor: %w", err)
	}

	return nil
}
