package client

import (
	"context"
	"fmt"
	"net/url"

	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// validatable is implemented by inputs carrying plain field checks.
type validatable interface {
	Validate() error
}

// StakeholdersClient implements the esig.StakeholdersClient interface.
type StakeholdersClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewStakeholdersClient creates a new StakeholdersClient.
func NewStakeholdersClient(httpClient *http_internal.Client, set *schema.Set) *StakeholdersClient {
	return &StakeholdersClient{
		httpClient: httpClient,
		schema:     set,
	}
}

func stakeholdersPath(packageID string) string {
	return resourcePath("/packages/%s/stakeholders", packageID)
}

// List lists the stakeholders of a package.
func (c *StakeholdersClient) List(ctx context.Context, packageID string) ([]esig.Stakeholder, error) {
	resp, err := c.httpClient.Get(ctx, stakeholdersPath(packageID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing stakeholders: %w", err)
	}

	var stakeholders []esig.Stakeholder

	err = decodeVariantList(c.schema.Stakeholders, resp.Body, &stakeholders)
	if err != nil {
		return nil, fmt.Errorf("parsing stakeholders response: %w", err)
	}

	return stakeholders, nil
}

// Create adds a stakeholder, with its actors, to a draft package.
func (c *StakeholdersClient) Create(ctx context.Context, packageID string, stakeholder esig.StakeholderInput) (*esig.Stakeholder, error) {
	if stakeholder == nil {
		return nil, fmt.Errorf("creating stakeholder: %w", esig.ErrInputRequired)
	}

	if v, ok := stakeholder.(validatable); ok {
		err := v.Validate()
		if err != nil {
			return nil, err
		}
	}

	payload, err := encodeVariant(c.schema.Stakeholders, string(stakeholder.StakeholderType()), stakeholder)
	if err != nil {
		return nil, fmt.Errorf("creating stakeholder: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, stakeholdersPath(packageID), payload)
	if err != nil {
		return nil, fmt.Errorf("creating stakeholder: %w", err)
	}

	var created esig.Stakeholder

	err = decodeVariant(c.schema.Stakeholders, payload, resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing stakeholder response: %w", err)
	}

	return &created, nil
}

// Get retrieves a specific stakeholder.
func (c *StakeholdersClient) Get(ctx context.Context, packageID, stakeholderID string) (*esig.Stakeholder, error) {
	resp, err := c.httpClient.Get(ctx, stakeholdersPath(packageID)+"/"+url.PathEscape(stakeholderID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting stakeholder: %w", err)
	}

	var stakeholder esig.Stakeholder

	err = decodeVariant(c.schema.Stakeholders, nil, resp.Body, &stakeholder)
	if err != nil {
		return nil, fmt.Errorf("parsing stakeholder response: %w", err)
	}

	return &stakeholder, nil
}
