package client

import (
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

// encodeVariant validates input as the discriminator's variant and returns
// the payload to send.
func encodeVariant(registry *shape.Registry, discriminator string, input any) (shape.Object, error) {
	obj, err := schema.ToObject(input)
	if err != nil {
		return nil, err
	}

	payload, err := registry.Encode(discriminator, obj)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", registry.Name, err)
	}

	return payload, nil
}

// encodeObject validates input against a single variant.
func encodeObject(variant *shape.Variant, input any) (shape.Object, error) {
	obj, err := schema.ToObject(input)
	if err != nil {
		return nil, err
	}

	payload, err := variant.Encode(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	return payload, nil
}

// decodeVariant reconciles a single response object into out. known is the
// payload that was sent, or nil for reads.
func decodeVariant(registry *shape.Registry, known shape.Object, body []byte, out any) error {
	server, err := parseObject(body)
	if err != nil {
		return err
	}

	reconciled, err := registry.Reconcile(known, server)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", registry.Name, err)
	}

	return schema.FromObject(reconciled, out)
}

// decodeVariantList reconciles every item of a JSON array into out.
func decodeVariantList(registry *shape.Registry, body []byte, out any) error {
	items, err := parseList(body)
	if err != nil {
		return err
	}

	reconciled := make([]any, len(items))

	for i, item := range items {
		obj, err := registry.Reconcile(nil, item)
		if err != nil {
			return fmt.Errorf("decoding %s %d: %w", registry.Name, i, err)
		}

		reconciled[i] = obj
	}

	return fromValue(reconciled, out)
}

// decodeObject reconciles a response against a single variant.
func decodeObject(variant *shape.Variant, body []byte, out any) error {
	server, err := parseObject(body)
	if err != nil {
		return err
	}

	reconciled, err := variant.Reconcile(server)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return schema.FromObject(reconciled, out)
}

// decodeObjectList reconciles every item of a JSON array against a single
// variant.
func decodeObjectList(variant *shape.Variant, body []byte, out any) error {
	items, err := parseList(body)
	if err != nil {
		return err
	}

	reconciled := make([]any, len(items))

	for i, item := range items {
		obj, err := variant.Reconcile(item)
		if err != nil {
			return fmt.Errorf("decoding item %d: %w", i, err)
		}

		reconciled[i] = obj
	}

	return fromValue(reconciled, out)
}

func parseObject(body []byte) (shape.Object, error) {
	var obj shape.Object

	err := json.Unmarshal(body, &obj)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if obj == nil {
		return nil, fmt.Errorf("parsing response: %w", shape.ErrNotAnObject)
	}

	return obj, nil
}

func parseList(body []byte) ([]shape.Object, error) {
	var items []shape.Object

	err := json.Unmarshal(body, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return items, nil
}

func fromValue(value any, out any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	return nil
}
