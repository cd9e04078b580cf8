// SPDX-License-Identifier: MIT

// Package cache implements the Cache Store (spec §4.3): one JSON
// document per collection in a configurable directory, written
// atomically (temp sibling file, fsync, rename) the way the teacher's
// NATS storage layer treats each write as all-or-nothing, just against
// a filesystem instead of a KV bucket.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/pkg/constants"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// Store is the Cache Store for one run's cache directory.
type Store struct {
	dir string
}

// New constructs a Store rooted at dir, creating it if absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewConfig("CACHE_DIR", "cannot create cache directory: "+dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// write atomically marshals v to filename: write to a temp sibling,
// fsync, rename over the target (spec §4.3).
func (s *Store) write(filename string, v any) error {
	target := s.path(filename)
	tmp := target + ".tmp"

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewCacheCorrupt(target, err)
	}

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return apperrors.NewCacheCorrupt(target, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return apperrors.NewCacheCorrupt(target, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return apperrors.NewCacheCorrupt(target, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return apperrors.NewCacheCorrupt(target, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return apperrors.NewCacheCorrupt(target, err)
	}
	return nil
}

// read unmarshals filename into v. A missing file is tolerated: v is
// left unmodified and no error is returned, so callers that default v
// to an empty collection get an empty collection back (spec §4.3).
func (s *Store) read(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.NewCacheCorrupt(path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewCacheCorrupt(path, err)
	}
	return nil
}

// Members reads members.json, defaulting to an empty slice.
func (s *Store) Members(ctx context.Context) ([]*model.Member, error) {
	members := []*model.Member{}
	if err := s.read(constants.CacheFileMembers, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SaveMembers atomically writes the full member roster.
func (s *Store) SaveMembers(ctx context.Context, members []*model.Member) error {
	return s.write(constants.CacheFileMembers, members)
}

// Bills reads bills.json as the leg_id → Bill map, defaulting to empty.
func (s *Store) Bills(ctx context.Context) (map[string]*model.Bill, error) {
	bills := map[string]*model.Bill{}
	if err := s.read(constants.CacheFileBills, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// SaveBills atomically writes the full bill collection.
func (s *Store) SaveBills(ctx context.Context, bills map[string]*model.Bill) error {
	return s.write(constants.CacheFileBills, bills)
}

// CommitteeRoster is one roster entry as persisted in
// committee_rosters.json, keyed by committee_code.
type CommitteeRoster struct {
	MemberID string              `json:"member_id"`
	Role     model.CommitteeRole `json:"role"`
}

func (s *Store) Committees(ctx context.Context) ([]*model.Committee, error) {
	committees := []*model.Committee{}
	if err := s.read(constants.CacheFileCommittees, &committees); err != nil {
		return nil, err
	}
	return committees, nil
}

func (s *Store) SaveCommittees(ctx context.Context, committees []*model.Committee) error {
	return s.write(constants.CacheFileCommittees, committees)
}

// CommitteeRosters reads committee_rosters.json, keyed by
// committee_code, defaulting to empty.
func (s *Store) CommitteeRosters(ctx context.Context) (map[string][]CommitteeRoster, error) {
	m := map[string][]CommitteeRoster{}
	if err := s.read(constants.CacheFileCommitteeRosters, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) SaveCommitteeRosters(ctx context.Context, m map[string][]CommitteeRoster) error {
	return s.write(constants.CacheFileCommitteeRosters, m)
}

func (s *Store) CommitteeBills(ctx context.Context) (map[string][]string, error) {
	m := map[string][]string{}
	if err := s.read(constants.CacheFileCommitteeBills, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) SaveCommitteeBills(ctx context.Context, m map[string][]string) error {
	return s.write(constants.CacheFileCommitteeBills, m)
}

func (s *Store) VoteEvents(ctx context.Context) ([]*model.VoteEvent, error) {
	events := []*model.VoteEvent{}
	if err := s.read(constants.CacheFileVoteEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) SaveVoteEvents(ctx context.Context, events []*model.VoteEvent) error {
	return s.write(constants.CacheFileVoteEvents, events)
}

func (s *Store) WitnessSlips(ctx context.Context) ([]*model.WitnessSlip, error) {
	slips := []*model.WitnessSlip{}
	if err := s.read(constants.CacheFileWitnessSlips, &slips); err != nil {
		return nil, err
	}
	return slips, nil
}

func (s *Store) SaveWitnessSlips(ctx context.Context, slips []*model.WitnessSlip) error {
	return s.write(constants.CacheFileWitnessSlips, slips)
}

func (s *Store) Scorecards(ctx context.Context) (map[string]*model.Scorecard, error) {
	m := map[string]*model.Scorecard{}
	if err := s.read(constants.CacheFileScorecards, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) SaveScorecards(ctx context.Context, m map[string]*model.Scorecard) error {
	return s.write(constants.CacheFileScorecards, m)
}

func (s *Store) Moneyball(ctx context.Context) (map[string]*model.MoneyballProfile, error) {
	m := map[string]*model.MoneyballProfile{}
	if err := s.read(constants.CacheFileMoneyball, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) SaveMoneyball(ctx context.Context, m map[string]*model.MoneyballProfile) error {
	return s.write(constants.CacheFileMoneyball, m)
}

// Metadata is the scrape_metadata.json contents: run timestamps and
// per-component fetch counters, plus the resumable vote/slip scan
// cursor (spec §4.4).
type Metadata struct {
	LastBillScrapeAt time.Time      `json:"last_bill_scrape_at"`
	BillIndexCount   int            `json:"bill_index_count"`
	FetchCounters    map[string]int `json:"fetch_counters,omitempty"`
	VoteScanCursor   string         `json:"vote_scan_cursor,omitempty"`
}

func (s *Store) Metadata(ctx context.Context) (*Metadata, error) {
	meta := &Metadata{FetchCounters: map[string]int{}}
	if err := s.read(constants.CacheFileScrapeMetadata, meta); err != nil {
		return nil, err
	}
	if meta.FetchCounters == nil {
		meta.FetchCounters = map[string]int{}
	}
	return meta, nil
}

func (s *Store) SaveMetadata(ctx context.Context, meta *Metadata) error {
	return s.write(constants.CacheFileScrapeMetadata, meta)
}

// IsAnalyticsFresh reports whether scorecards.json's mtime is newer
// than members.json's (spec §4.3). Callers must recompute when stale.
func (s *Store) IsAnalyticsFresh() bool {
	membersInfo, err := os.Stat(s.path(constants.CacheFileMembers))
	if err != nil {
		return false
	}
	scorecardsInfo, err := os.Stat(s.path(constants.CacheFileScorecards))
	if err != nil {
		return false
	}
	return scorecardsInfo.ModTime().After(membersInfo.ModTime())
}

// CheckpointInterval is how many completed bill detail fetches the
// Scrapers' bill pipeline accumulates before persisting its in-progress
// results to disk, so an interrupted long scrape can resume from the
// last checkpoint instead of from scratch (spec §4.3).
const CheckpointInterval = 50

// LogStaleUse emits the StaleCacheUsed informational error for a
// component that failed to refresh and is serving its previous value.
func LogStaleUse(ctx context.Context, component string, cause error) {
	notice := apperrors.NewStaleCacheUsed(component, cause)
	slog.WarnContext(ctx, notice.Error(), "component", component)
}
