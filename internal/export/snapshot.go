package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
)

// WriteSnapshot encodes the snapshot as indented JSON.
func WriteSnapshot(out io.Writer, snap *portssvc.Snapshot) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot. Dates may be
// plain strings or {seconds, nanoseconds} objects. Every record must pass
// its own validation, so a missing date is an error rather than year one.
func ReadSnapshot(in io.Reader) (*portssvc.Snapshot, error) {
	var snap portssvc.Snapshot
	dec := json.NewDecoder(in)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: invalid snapshot: %w", apperrors.ErrValidation, err)
	}

	for i, s := range snap.Sales {
		if err := checkRecord("sales", i, s.ID, s); err != nil {
			return nil, err
		}
	}
	for i, p := range snap.Purchases {
		if err := checkRecord("purchases", i, p.ID, p); err != nil {
			return nil, err
		}
	}
	for i, e := range snap.Expenses {
		if err := checkRecord("expenses", i, e.ID, e); err != nil {
			return nil, err
		}
	}
	for i, inv := range snap.Investments {
		if err := checkRecord("investments", i, inv.ID, inv); err != nil {
			return nil, err
		}
	}
	for i, a := range snap.Assets {
		if err := checkRecord("assets", i, a.ID, a); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

type validatable interface {
	Validate() error
}

func checkRecord(collection string, index int, id string, r validatable) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %s[%d] (id %q): %w", collection, index, id, err)
	}
	return nil
}
