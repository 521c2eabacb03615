package client

import (
	"context"
	"fmt"
	"net/url"

	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// ElementsClient implements the esig.ElementsClient interface.
type ElementsClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewElementsClient creates a new ElementsClient.
func NewElementsClient(httpClient *http_internal.Client, set *schema.Set) *ElementsClient {
	return &ElementsClient{
		httpClient: httpClient,
		schema:     set,
	}
}

func elementsPath(packageID, documentID string) string {
	return resourcePath("/packages/%s/documents/%s/elements", packageID, documentID)
}

// Create adds an element of any type to a document. The element's Type
// selects the shape it is validated against.
func (c *ElementsClient) Create(ctx context.Context, packageID, documentID string, element esig.ElementInput) (*esig.Element, error) {
	if element == nil {
		return nil, fmt.Errorf("creating element: %w", esig.ErrInputRequired)
	}

	payload, err := encodeVariant(c.schema.Elements, string(element.ElementType()), element)
	if err != nil {
		return nil, fmt.Errorf("creating element: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, elementsPath(packageID, documentID), payload)
	if err != nil {
		return nil, fmt.Errorf("creating element: %w", err)
	}

	var created esig.Element

	err = decodeVariant(c.schema.Elements, payload, resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing element response: %w", err)
	}

	return &created, nil
}

func (c *ElementsClient) createTyped(ctx context.Context, packageID, documentID string, element esig.ElementInput) (*esig.Element, error) {
	created, err := c.Create(ctx, packageID, documentID, element)
	if err != nil {
		return nil, err
	}

	if created.Type != "" && created.Type != element.ElementType() {
		return nil, fmt.Errorf("%w: want %s, got %s", esig.ErrUnexpectedElementType, element.ElementType(), created.Type)
	}

	return created, nil
}

// CreateCheckboxField adds a checkbox to a document.
func (c *ElementsClient) CreateCheckboxField(ctx context.Context, packageID, documentID string, field *esig.CheckboxFieldInput) (*esig.Element, error) {
	return c.createTyped(ctx, packageID, documentID, field)
}

// CreateRadioGroup adds a radio group to a document.
func (c *ElementsClient) CreateRadioGroup(ctx context.Context, packageID, documentID string, group *esig.RadioGroupInput) (*esig.Element, error) {
	return c.createTyped(ctx, packageID, documentID, group)
}

// CreateSigningField adds a signing field to a document.
func (c *ElementsClient) CreateSigningField(ctx context.Context, packageID, documentID string, field *esig.SigningFieldInput) (*esig.Element, error) {
	return c.createTyped(ctx, packageID, documentID, field)
}

// CreateTextBoxField adds a text box to a document.
func (c *ElementsClient) CreateTextBoxField(ctx context.Context, packageID, documentID string, field *esig.TextBoxFieldInput) (*esig.Element, error) {
	return c.createTyped(ctx, packageID, documentID, field)
}

// List lists the elements of a document.
func (c *ElementsClient) List(ctx context.Context, packageID, documentID string) ([]esig.Element, error) {
	return c.list(ctx, elementsPath(packageID, documentID))
}

// ListUnplaced lists elements of a package that are not yet assigned to an actor.
func (c *ElementsClient) ListUnplaced(ctx context.Context, packageID string) ([]esig.Element, error) {
	return c.list(ctx, resourcePath("/packages/%s/unplacedElements", packageID))
}

func (c *ElementsClient) list(ctx context.Context, path string) ([]esig.Element, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing elements: %w", err)
	}

	var elements []esig.Element

	err = decodeVariantList(c.schema.Elements, resp.Body, &elements)
	if err != nil {
		return nil, fmt.Errorf("parsing elements response: %w", err)
	}

	return elements, nil
}

// Get retrieves a specific element.
func (c *ElementsClient) Get(ctx context.Context, packageID, documentID, elementID string) (*esig.Element, error) {
	resp, err := c.httpClient.Get(ctx, elementsPath(packageID, documentID)+"/"+url.PathEscape(elementID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting element: %w", err)
	}

	var element esig.Element

	err = decodeVariant(c.schema.Elements, nil, resp.Body, &element)
	if err != nil {
		return nil, fmt.Errorf("parsing element response: %w", err)
	}

	return &element, nil
}

// Delete removes an element from a document.
func (c *ElementsClient) Delete(ctx context.Context, packageID, documentID, elementID string) error {
	_, err := c.httpClient.Delete(ctx, elementsPath(packageID, documentID)+"/"+url.PathEscape(elementID))
	if err != nil {
		return fmt.Errorf("deleting element: %w", err)
	}

	return nil
}
