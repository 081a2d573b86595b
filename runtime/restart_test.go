package runtime

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"pugchamp/command"
	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/repositories"
	"pugchamp/timeparse"
)

// End-to-end crash-safety check: commands flow through the engine into
// a real badger snapshot, and a fresh restore reproduces the state.
func TestEngine_StateSurvivesRestart(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	repo := repositories.NewSnapshotRepository(db, log)

	chat := &stubChat{}
	chat.grant("mod", "mod-role")
	env := &command.Env{
		Sessions:          domain.NewSessionRegistry(),
		Zones:             timeparse.NewDirectory(),
		Chat:              chat,
		Notifier:          noNotifier{},
		Log:               log,
		Prefix:            "!",
		ModRoleID:         "mod-role",
		NoDMRoleID:        "nodm-role",
		AnnounceChannelID: "announce",
	}
	dispatcher := command.NewDispatcher(env, command.NewBuiltinRegistry("!"))
	source := stubSource{msgs: make(chan contract.Message), joins: make(chan contract.JoinEvent)}
	engine := NewEngine(log, env, dispatcher, repo, source, "hi {user}")

	from := func(authorID, content string) contract.Message {
		return contract.Message{
			Author:    domain.User{ID: authorID, Name: authorID},
			GuildID:   "guild",
			ChannelID: "general",
			Content:   content,
		}
	}
	engine.HandleMessage(from("mod", "!create Scrim, 7:30 pm EST 12-25-2030, weekly"))
	engine.HandleMessage(from("alice", "!join Scrim"))
	engine.HandleMessage(from("bob", "!join Scrim"))
	engine.HandleMessage(from("wanda", "!watch Scrim"))
	engine.HandleMessage(from("alice", "!timezone pst"))

	// "Restart": rebuild both registries from the artifact alone
	sessions, zones, err := repo.Restore(chat, noNotifier{})
	req.NoError(err)

	sess, err := sessions.Get("Scrim")
	req.NoError(err)
	req.Equal("weekly", sess.Description())
	req.Len(sess.Players(), 2)
	req.Len(sess.Watchers(), 1)
	req.Equal("EST", sess.At().Format("MST"))

	zone, ok := zones.Lookup("alice")
	req.True(ok)
	req.Equal("PST", zone.Abbr)
}
