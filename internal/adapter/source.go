package adapter

import "context"

// Source is one upstream feed of raw supplement records. Implementations
// stream vendor payloads as loosely-typed maps; canonicalization is the
// normalizer's job, so a Source never touches catalogs or daily values.
//
// Records calls emit once per raw record, in feed order. A non-nil error
// from emit aborts the stream and is returned as-is; vendor-side trouble
// (timeouts, open circuit, quota) is returned after emitting whatever
// arrived before the fault.
type Source interface {
	// Tag identifies the catalog binding for every record this source emits.
	Tag() string
	Records(ctx context.Context, emit func(raw map[string]any) error) error
}
