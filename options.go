package saveslot

import (
	"time"

	"github.com/agentstation/saveslot/pkg/codec"
	"github.com/agentstation/saveslot/pkg/constants"
	"github.com/agentstation/saveslot/pkg/storage"
)

// Metadata is the read-only game state reconciliation consults: the
// identity stamped onto synthesized summaries and the host-reported
// bounds of the slot and party spaces.
type Metadata struct {
	// GameID identifies the running game; synthesized summaries carry it.
	GameID string

	// Title is the current game title, used as the placeholder summary
	// title.
	Title string

	// MaxSlots is the highest valid savefile slot number.
	MaxSlots int

	// MaxPartySize caps how many party members a summary records.
	MaxPartySize int
}

// MetadataSource supplies current game metadata. Hosts whose metadata can
// change at runtime implement this; everyone else uses StaticMetadata.
type MetadataSource interface {
	Metadata() Metadata
}

// StaticMetadata is a fixed MetadataSource.
type StaticMetadata Metadata

// Metadata implements MetadataSource.
func (m StaticMetadata) Metadata() Metadata {
	return Metadata(m)
}

// options are the configured options for a client.
type options struct {
	storage    storage.Provider
	indexCodec codec.Index
	saveCodec  codec.Save
	metadata   MetadataSource
	now        func() time.Time
}

// defaults returns the default options.
func defaults() *options {
	jsonCodec := codec.NewJSON()
	return &options{
		indexCodec: jsonCodec,
		saveCodec:  jsonCodec,
		metadata: StaticMetadata{
			MaxSlots:     constants.DefaultMaxSlots,
			MaxPartySize: constants.DefaultMaxPartySize,
		},
		now: time.Now,
	}
}

// apply applies the given options, skipping nils.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Option is a function that configures a Client.
type Option func(*options)

// WithStorage configures the storage provider holding the save slots.
// Required.
func WithStorage(p storage.Provider) Option {
	return func(o *options) {
		o.storage = p
	}
}

// WithIndexCodec configures the codec for the index blob in the reserved
// slot. Defaults to JSON.
func WithIndexCodec(c codec.Index) Option {
	return func(o *options) {
		if c != nil {
			o.indexCodec = c
		}
	}
}

// WithSaveCodec configures the codec for decoding save blobs during
// synthesis. Defaults to JSON.
func WithSaveCodec(c codec.Save) Option {
	return func(o *options) {
		if c != nil {
			o.saveCodec = c
		}
	}
}

// WithMetadata configures the game metadata source.
func WithMetadata(src MetadataSource) Option {
	return func(o *options) {
		if src != nil {
			o.metadata = src
		}
	}
}

// WithNow configures the clock used for synthesized summary timestamps.
// Tests inject a fixed clock here.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// resolveMetadata resolves the current metadata, falling back to library
// defaults for unset bounds.
func (o *options) resolveMetadata() Metadata {
	meta := o.metadata.Metadata()
	if meta.MaxSlots <= 0 {
		meta.MaxSlots = constants.DefaultMaxSlots
	}
	if meta.MaxPartySize <= 0 {
		meta.MaxPartySize = constants.DefaultMaxPartySize
	}
	return meta
}
