package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

const actorsPathV4 = v4Prefix + "/packages/package-id/stakeholders/stakeholder-id/actors"

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestActorsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("form filler", func(t *testing.T) {
		t.Parallel()

		var sent map[string]interface{}

		server := serve(t, TestOperation{
			Method:       http.MethodPost,
			ExpectedPath: actorsPathV4,
			StatusCode:   http.StatusCreated,
			Response: map[string]interface{}{
				"Id":           "actor-id",
				"Type":         "formFiller",
				"Status":       "Draft",
				"RedirectUrl":  "https://example.com/done",
				"RedirectType": "AfterCompletion",
			},
		}, &sent)

		client := NewTestClient(t, server.URL)

		actor, err := client.Actors().Create(context.Background(), "package-id", "stakeholder-id",
			&esig.FormFillerActorInput{
				RedirectURL:  esig.NewNullable("https://example.com/done"),
				RedirectType: esig.NewNullable(esig.RedirectAfterCompletion),
				Elements: []esig.FormElementInput{
					&esig.TextBoxFieldInput{ElementLocator: esig.ElementLocator{Marker: "#TXT"}, Name: "comment"},
				},
			})
		require.NoError(t, err)

		assert.Equal(t, "formFiller", sent["Type"])
		assert.Equal(t, "AfterCompletion", sent["RedirectType"])

		assert.Equal(t, esig.ActorTypeFormFiller, actor.Type)
		assert.Equal(t, esig.RedirectAfterCompletion, actor.RedirectType.OrZero())
		assert.True(t, actor.BackButtonURL.IsNull())
	})

	t.Run("redirect type requires url", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, failIfCalled(t).URL)

		_, err := client.Actors().Create(context.Background(), "package-id", "stakeholder-id",
			&esig.SignerActorInput{RedirectType: esig.NewNullable(esig.RedirectImmediately)})
		require.ErrorIs(t, err, shape.ErrConditionalFieldViolation)

		var violation *shape.ConditionalFieldViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{schema.RuleRedirectTypeRequiresURL}, violation.Rules())
	})

	t.Run("receiver reports every violation", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, failIfCalled(t).URL)

		_, err := client.Actors().Create(context.Background(), "package-id", "stakeholder-id", esig.RawActor{
			"Type":         "receiver",
			"RedirectType": "AfterSession",
			"RedirectUrl":  "https://example.com",
		})

		var violation *shape.ConditionalFieldViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, []string{schema.RuleRedirectTypeNotAllowed, schema.RuleReceiverHasNoNavigation}, violation.Rules())
	})

	t.Run("signer rejects form elements", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, failIfCalled(t).URL)

		_, err := client.Actors().Create(context.Background(), "package-id", "stakeholder-id", esig.RawActor{
			"Type":     "signer",
			"Elements": []interface{}{map[string]interface{}{"Type": "checkboxfield", "Marker": "#CHK"}},
		})
		require.ErrorIs(t, err, shape.ErrUnknownVariant)
		require.ErrorIs(t, err, shape.ErrInvalidVariantShape)
	})

	t.Run("nil actor", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, failIfCalled(t).URL)

		_, err := client.Actors().Create(context.Background(), "package-id", "stakeholder-id", nil)
		require.ErrorIs(t, err, esig.ErrInputRequired)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestActorsClient_Operations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	RunOperation(t, TestOperation{
		Name:         "list",
		Method:       http.MethodGet,
		ExpectedPath: actorsPathV4,
		Response:     `[{"Id":"a","Type":"receiver","Status":"Waiting"},{"Id":"b","Type":"approver","Status":"Available"}]`,
	}, func(t *testing.T, c *Client) error {
		actors, err := c.Actors().List(ctx, "package-id", "stakeholder-id")
		if err == nil {
			assert.Len(t, actors, 2)
		}

		return err
	})

	RunOperation(t, TestOperation{
		Name:         "get finished signer",
		Method:       http.MethodGet,
		ExpectedPath: actorsPathV4 + "/actor-id",
		Response: map[string]interface{}{
			"Id":     "actor-id",
			"Type":   "signer",
			"Status": "Finished",
			"Result": map[string]interface{}{
				"CompletedBy":   map[string]interface{}{"Email": "jane@example.com"},
				"CompletedDate": "2026-01-02T10:00:00Z",
				"SigningMethod": "manual",
			},
		},
	}, func(t *testing.T, c *Client) error {
		actor, err := c.Actors().Get(ctx, "package-id", "stakeholder-id", "actor-id")
		if err == nil {
			require.NotNil(t, actor.Result)
			assert.Equal(t, "manual", actor.Result.SigningMethod.OrZero())
		}

		return err
	})

	RunOperation(t, TestOperation{
		Name:         "get rejected actor without result",
		Method:       http.MethodGet,
		ExpectedPath: actorsPathV4 + "/actor-id",
		Response:     map[string]interface{}{"Id": "actor-id", "Type": "signer", "Status": "Rejected"},
		WantErr:      true,
		ErrMessage:   schema.RuleRejectedActorHasResult,
	}, func(t *testing.T, c *Client) error {
		_, err := c.Actors().Get(ctx, "package-id", "stakeholder-id", "actor-id")

		return err
	})

	RunOperation(t, TestOperation{
		Name:         "delete",
		Method:       http.MethodDelete,
		ExpectedPath: actorsPathV4 + "/actor-id",
		StatusCode:   http.StatusNoContent,
	}, func(t *testing.T, c *Client) error {
		return c.Actors().Delete(ctx, "package-id", "stakeholder-id", "actor-id")
	})
}

func TestActorsClient_EscapesIDs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, v4Prefix+"/packages/pkg%2F1/stakeholders/holder%201/actors/actor%3F1", r.URL.EscapedPath())

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	err := client.Actors().Delete(context.Background(), "pkg/1", "holder 1", "actor?1")
	require.NoError(t, err)
}
