// Package events publishes catalog change notifications to downstream
// consumers (authorization caches, reporting) once a write has committed.
package events

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Entity names the aggregate a change belongs to.
type Entity string

const (
	EntityBin           Entity = "BIN"
	EntitySubtype       Entity = "SUBTYPE"
	EntityAgency        Entity = "AGENCY"
	EntityValidation    Entity = "VALIDATION"
	EntityValidationMap Entity = "VALIDATION_MAP"
	EntityCommercePlan  Entity = "COMMERCE_PLAN"
	EntityPlanItem      Entity = "PLAN_ITEM"
	EntitySubtypePlan   Entity = "SUBTYPE_PLAN"
)

// Action names what happened to the entity.
type Action string

const (
	ActionCreated       Action = "CREATED"
	ActionUpdated       Action = "UPDATED"
	ActionStatusChanged Action = "STATUS_CHANGED"
	ActionAttached      Action = "ATTACHED"
	ActionItemsAdded    Action = "ITEMS_ADDED"
	ActionItemRemoved   Action = "ITEM_REMOVED"
	ActionAssigned      Action = "ASSIGNED"
)

// CatalogChanged describes one committed catalog write.
type CatalogChanged struct {
	Entity      Entity
	// Key is the natural key of the entity, e.g. "123456" or "ABC/AG01".
	Key         string
	Action      Action
	Status      string
	Actor       string
	// SubtypeCode and Bin are set when the change affects rule resolution
	// of a single (subtype, effective BIN) pair.
	SubtypeCode string
	Bin         string
	OccurredAt  time.Time
}

// Encode writes the change as a JSON object. Empty optional fields are
// omitted.
func (c CatalogChanged) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("entity")
	e.Str(string(c.Entity))
	e.FieldStart("key")
	e.Str(c.Key)
	e.FieldStart("action")
	e.Str(string(c.Action))
	for _, f := range [...]struct{ name, value string }{
		{"status", c.Status},
		{"actor", c.Actor},
		{"subtypeCode", c.SubtypeCode},
		{"bin", c.Bin},
	} {
		if f.value == "" {
			continue
		}
		e.FieldStart(f.name)
		e.Str(f.value)
	}
	e.FieldStart("occurredAt")
	e.Str(c.OccurredAt.Format(time.RFC3339Nano))
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (c CatalogChanged) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	c.Encode(&e)

	return e.Bytes(), nil
}

// Decode reads a change written by Encode. Unknown fields are skipped.
func (c *CatalogChanged) Decode(d *jx.Decoder) error {
	if c == nil {
		return errors.New("invalid: unable to decode CatalogChanged to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "occurredAt":
			raw, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"occurredAt\"")
			}
			at, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return errors.Wrap(err, "decode field \"occurredAt\"")
			}
			c.OccurredAt = at

			return nil
		case "entity", "key", "action", "status", "actor", "subtypeCode", "bin":
		default:
			return d.Skip()
		}

		v, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "decode field %q", k)
		}
		switch string(k) {
		case "entity":
			c.Entity = Entity(v)
		case "key":
			c.Key = v
		case "action":
			c.Action = Action(v)
		case "status":
			c.Status = v
		case "actor":
			c.Actor = v
		case "subtypeCode":
			c.SubtypeCode = v
		case "bin":
			c.Bin = v
		}

		return nil
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CatalogChanged) UnmarshalJSON(data []byte) error {
	return c.Decode(jx.DecodeBytes(data))
}

// Record encodes the change as a Kafka record keyed by entity and key, so
// every change of one entity lands on the same partition.
func (c CatalogChanged) Record() (*kgo.Record, error) {
	value, err := c.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "could not encode catalog change")
	}

	return &kgo.Record{
		Key:   []byte(string(c.Entity) + ":" + c.Key),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "entity", Value: []byte(c.Entity)},
			{Key: "action", Value: []byte(c.Action)},
		},
		Timestamp: c.OccurredAt,
	}, nil
}

// Publisher delivers catalog changes.
type Publisher interface {
	Publish(ctx context.Context, change CatalogChanged) error
	Close()
}

// Nop discards every change. It is used when Kafka is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, CatalogChanged) error { return nil }
func (Nop) Close()                                        {}
