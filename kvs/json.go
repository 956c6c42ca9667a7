package kvs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quakelabs/riskcomponents/curve"
)

// SetJSON encodes the value and stores it under the key.
func SetJSON(ctx context.Context, store Store, key string, v interface{}) error {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode value for key %s: %w", key, err)
	}

	return store.Set(ctx, key, d)
}

// GetJSON loads the key and decodes it into out.
func GetJSON(ctx context.Context, store Store, key string, out interface{}) error {
	d, err := store.Get(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal(d, out)
}

// SetCurve stores a curve in its serialized dictionary form.
func SetCurve(ctx context.Context, store Store, key string, c *curve.Curve) error {
	d, err := c.ToJSON()
	if err != nil {
		return err
	}

	return store.Set(ctx, key, d)
}

// GetCurve loads a curve from its serialized dictionary form.
func GetCurve(ctx context.Context, store Store, key string) (*curve.Curve, error) {
	d, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return curve.FromJSON(d)
}
