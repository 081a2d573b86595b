// Package repositories persists live state to BadgerDB and rebuilds it
// against a freshly connected chat session.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/errors"
	"pugchamp/timeparse"
)

// The whole artifact is two keys written in one transaction: the
// ordered session records and the ordered zone-directory entries. A
// crash mid-write leaves the previously committed pair intact.
const (
	sessionsKey = "snapshot:pugs"
	zonesKey    = "snapshot:zones"
)

// SessionRecord is the durable shape of one session. Users, channels
// and guilds are stored as identifiers and re-resolved on restore.
type SessionRecord struct {
	Name        string   `json:"name"`
	At          int64    `json:"at"` // unix seconds
	ZoneAbbr    string   `json:"zone"`
	Description string   `json:"description"`
	ModeratorID string   `json:"moderator_id"`
	PlayerIDs   []string `json:"player_ids"`
	WatcherIDs  []string `json:"watcher_ids"`
	GuildID     string   `json:"guild_id"`
	ChannelID   string   `json:"channel_id"`
}

type ZoneRecord struct {
	UserID string `json:"user_id"`
	Abbr   string `json:"zone"`
}

type SnapshotRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *badger.DB, log *slog.Logger) SnapshotRepository {
	return SnapshotRepository{db: db, log: log}
}

// Store overwrites the artifact with the current state of both
// registries.
func (r SnapshotRepository) Store(sessions *domain.SessionRegistry, zones *timeparse.Directory) error {
	sessionRecords := lo.Map(sessions.All(), func(s *domain.Session, _ int) SessionRecord {
		return toSessionRecord(s)
	})
	zoneRecords := lo.Map(zones.All(), func(e timeparse.Entry, _ int) ZoneRecord {
		return ZoneRecord{UserID: e.UserID, Abbr: e.Zone.Abbr}
	})

	sessionBytes, err := json.Marshal(sessionRecords)
	if err != nil {
		return fmt.Errorf("%w: encoding sessions: %v", errors.ErrPersistence, err)
	}
	zoneBytes, err := json.Marshal(zoneRecords)
	if err != nil {
		return fmt.Errorf("%w: encoding zones: %v", errors.ErrPersistence, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(sessionsKey), sessionBytes); err != nil {
			return err
		}
		return txn.Set([]byte(zonesKey), zoneBytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

// Restore rebuilds both registries from the artifact, re-resolving
// every stored identifier against the live chat session. An entry that
// no longer resolves is logged and skipped; it never aborts the rest.
// A missing artifact is a first boot, not an error.
func (r SnapshotRepository) Restore(chat contract.ChatSession, notifier domain.Notifier) (*domain.SessionRegistry, *timeparse.Directory, error) {
	var sessionRecords []SessionRecord
	var zoneRecords []ZoneRecord

	err := r.db.View(func(txn *badger.Txn) error {
		if err := readJSON(txn, sessionsKey, &sessionRecords); err != nil {
			return err
		}
		return readJSON(txn, zonesKey, &zoneRecords)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading artifact: %v", errors.ErrPersistence, err)
	}

	sessions := domain.NewSessionRegistry()
	for _, rec := range sessionRecords {
		sess, err := r.rebuildSession(rec, chat, notifier)
		if err != nil {
			r.log.Warn("Dropping unrestorable PUG", "name", rec.Name, "error", err)
			continue
		}
		if err := sessions.Create(sess); err != nil {
			r.log.Warn("Dropping duplicate PUG record", "name", rec.Name)
		}
	}

	zones := timeparse.NewDirectory()
	for _, rec := range zoneRecords {
		zone, err := timeparse.ParseZone(rec.Abbr)
		if err != nil {
			r.log.Warn("Dropping zone entry with unknown abbreviation", "user", rec.UserID, "zone", rec.Abbr)
			continue
		}
		if _, err := chat.ResolveUser(rec.UserID); err != nil {
			r.log.Warn("Dropping zone entry for unresolvable user", "user", rec.UserID)
			continue
		}
		zones.Register(rec.UserID, zone)
	}

	return sessions, zones, nil
}

func (r SnapshotRepository) rebuildSession(rec SessionRecord, chat contract.ChatSession, notifier domain.Notifier) (*domain.Session, error) {
	zone, err := timeparse.ParseZone(rec.ZoneAbbr)
	if err != nil {
		return nil, err
	}
	if err := chat.ResolveChannel(rec.GuildID, rec.ChannelID); err != nil {
		return nil, fmt.Errorf("home channel: %w", err)
	}
	moderator, err := chat.ResolveUser(rec.ModeratorID)
	if err != nil {
		return nil, fmt.Errorf("moderator: %w", err)
	}

	at := time.Unix(rec.At, 0).In(zone.Location())
	home := domain.HomeContext{GuildID: rec.GuildID, ChannelID: rec.ChannelID}
	sess := domain.NewSession(rec.Name, at, rec.Description, moderator, home, notifier)

	for _, id := range rec.PlayerIDs {
		u, err := chat.ResolveUser(id)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", id, err)
		}
		sess.RegisterPlayer(u)
	}
	for _, id := range rec.WatcherIDs {
		u, err := chat.ResolveUser(id)
		if err != nil {
			return nil, fmt.Errorf("watcher %s: %w", id, err)
		}
		sess.RegisterWatcher(u)
	}
	return sess, nil
}

func toSessionRecord(s *domain.Session) SessionRecord {
	return SessionRecord{
		Name:        s.Name(),
		At:          s.At().Unix(),
		ZoneAbbr:    s.At().Format("MST"),
		Description: s.Description(),
		ModeratorID: s.Moderator().ID,
		PlayerIDs:   lo.Map(s.Players(), func(u domain.User, _ int) string { return u.ID }),
		WatcherIDs:  lo.Map(s.Watchers(), func(u domain.User, _ int) string { return u.ID }),
		GuildID:     s.Home().GuildID,
		ChannelID:   s.Home().ChannelID,
	}
}

// readJSON decodes the value at key into out; a missing key leaves out
// untouched.
func readJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
