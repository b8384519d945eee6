package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"ShinnPerfume/internal/kv"
)

// Service implements catalog CRUD on top of a key-value store. The category
// is only a key namespace, so every listing is a prefix scan.
type Service struct {
	Store    kv.Store
	Log      *zap.Logger
	Defaults func() []Perfume
}

func NewService(store kv.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: store, Log: log, Defaults: DefaultPerfumes}
}

// Dump is the diagnostic view of everything stored under the perfume prefix.
type Dump struct {
	Count int       `json:"count"`
	Her   []Perfume `json:"her"`
	Him   []Perfume `json:"him"`
	All   []Perfume `json:"all"`
}

func (s *Service) ListAll(ctx context.Context) ([]Perfume, error) {
	return s.scan(ctx, KeyPrefix)
}

func (s *Service) ListByCategory(ctx context.Context, c Category) ([]Perfume, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	return s.scan(ctx, categoryPrefix(c))
}

// Create writes p at its derived key. An existing record with the same
// (category, id) is replaced.
func (s *Service) Create(ctx context.Context, p Perfume) (Perfume, error) {
	if err := p.validate(); err != nil {
		return Perfume{}, err
	}
	if err := s.put(ctx, p); err != nil {
		return Perfume{}, err
	}
	return p, nil
}

// Update shallow-merges fields over the stored record. Fields the record does
// not know are ignored; identity always comes from (c, id).
func (s *Service) Update(ctx context.Context, c Category, id int, fields map[string]json.RawMessage) (Perfume, error) {
	var merged Perfume

	_, err := s.Store.Update(ctx, Key(c, id), func(old []byte, found bool) ([]byte, error) {
		if !found {
			return nil, ErrNotFound
		}
		p, err := mergeFields(old, fields)
		if err != nil {
			return nil, err
		}
		p.Category, p.ID = c, id
		merged = p
		return json.Marshal(p)
	})
	switch {
	case err == nil:
		return merged, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidArgument):
		return Perfume{}, err
	default:
		return Perfume{}, fmt.Errorf("update %s: %w", Key(c, id), err)
	}
}

// Delete removes the record; deleting a missing record is not an error.
func (s *Service) Delete(ctx context.Context, c Category, id int) error {
	if err := s.Store.Delete(ctx, Key(c, id)); err != nil {
		return fmt.Errorf("delete %s: %w", Key(c, id), err)
	}
	return nil
}

// BulkInit upserts every record. Records are validated up front, but writes
// are independent: a store failure mid-batch leaves the earlier ones written.
func (s *Service) BulkInit(ctx context.Context, perfumes []Perfume) (int, error) {
	for i, p := range perfumes {
		if err := p.validate(); err != nil {
			return 0, fmt.Errorf("perfumes[%d]: %w", i, err)
		}
	}

	written := 0
	for _, p := range perfumes {
		if err := s.put(ctx, p); err != nil {
			return written, err
		}
		written++
	}

	s.Log.Info("catalog initialized", zap.Int("count", written))
	return written, nil
}

func (s *Service) Dump(ctx context.Context) (Dump, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return Dump{}, err
	}

	d := Dump{Count: len(all), All: all, Her: []Perfume{}, Him: []Perfume{}}
	for _, p := range all {
		switch p.Category {
		case Her:
			d.Her = append(d.Her, p)
		case Him:
			d.Him = append(d.Him, p)
		}
	}
	return d, nil
}

// ClearAll deletes every key under the perfume prefix and reports how many
// were removed before any failure.
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	entries, err := s.Store.ScanPrefix(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", KeyPrefix, err)
	}

	removed := 0
	for _, e := range entries {
		if err := s.Store.Delete(ctx, e.Key); err != nil {
			return removed, fmt.Errorf("delete %s: %w", e.Key, err)
		}
		removed++
	}

	s.Log.Info("catalog cleared", zap.Int("count", removed))
	return removed, nil
}

// ResetToDefaults clears the catalog and seeds it with the default dataset.
func (s *Service) ResetToDefaults(ctx context.Context) (int, error) {
	if _, err := s.ClearAll(ctx); err != nil {
		return 0, err
	}
	return s.BulkInit(ctx, s.Defaults())
}

func (s *Service) put(ctx context.Context, p Perfume) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, p.Key(), raw); err != nil {
		return fmt.Errorf("set %s: %w", p.Key(), err)
	}
	return nil
}

func (s *Service) scan(ctx context.Context, prefix string) ([]Perfume, error) {
	entries, err := s.Store.ScanPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}

	out := make([]Perfume, 0, len(entries))
	for _, e := range entries {
		var p Perfume
		if err := json.Unmarshal(e.Value, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func mergeFields(old []byte, fields map[string]json.RawMessage) (Perfume, error) {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(old, &doc); err != nil {
		return Perfume{}, fmt.Errorf("decode stored record: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return Perfume{}, err
	}
	var p Perfume
	if err := json.Unmarshal(raw, &p); err != nil {
		return Perfume{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return p, nil
}
