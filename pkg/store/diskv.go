// Package store persists completed picks so `monthpick history` can
// list them. The calendar engine itself never touches disk; only the
// command surface records here.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/monthpick/pkg/calendar"
)

// Kind discriminates single-date picks from completed ranges.
type Kind string

const (
	KindDate  Kind = "date"
	KindRange Kind = "range"
)

// Pick is one recorded selection.
type Pick struct {
	Kind     Kind      `json:"kind"`
	Date     time.Time `json:"date,omitempty"`
	Start    time.Time `json:"start,omitempty"`
	End      time.Time `json:"end,omitempty"`
	PickedAt time.Time `json:"pickedAt"`
}

// NewDatePick records a single-date selection made now.
func NewDatePick(date time.Time, now time.Time) *Pick {
	return &Pick{Kind: KindDate, Date: calendar.DateOf(date), PickedAt: now}
}

// NewRangePick records a completed range selection made now.
func NewRangePick(start, end time.Time, now time.Time) *Pick {
	return &Pick{Kind: KindRange, Start: calendar.DateOf(start), End: calendar.DateOf(end), PickedAt: now}
}

// Describe renders the pick for listings.
func (p *Pick) Describe() string {
	if p.Kind == KindRange {
		return fmt.Sprintf("%s .. %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	}
	return p.Date.Format("2006-01-02")
}

// Persistence is the pick history contract.
type Persistence interface {
	List(ctx context.Context) []*Pick
	Record(p *Pick) error
	Clear(ctx context.Context) error
}

// Load creates a Persistence backed by diskv using the provided
// config, falling back to LoadConfig when cfg is nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps every pick in the base directory.
func flatTransform(string) []string { return []string{} }

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Pick, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	pick := &Pick{}
	if err := json.Unmarshal(val, pick); err != nil {
		return nil, err
	}
	return pick, nil
}

func (p *persistence) List(ctx context.Context) []*Pick {
	all := make([]*Pick, 0)
	for key := range p.d.Keys(ctx.Done()) {
		pick, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, pick)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].PickedAt.Before(all[j].PickedAt)
	})
	return all
}

func (p *persistence) Record(pick *Pick) error {
	if pick == nil {
		return fmt.Errorf("can not record a nil pick")
	}
	if pick.PickedAt.IsZero() {
		pick.PickedAt = time.Now()
	}
	b, err := json.Marshal(pick)
	if err != nil {
		return err
	}
	return p.d.Write(pick.PickedAt.UTC().Format(time.RFC3339Nano), b)
}

func (p *persistence) Clear(ctx context.Context) error {
	for key := range p.d.Keys(ctx.Done()) {
		if err := p.d.Erase(key); err != nil {
			return err
		}
	}
	return nil
}
