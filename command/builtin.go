package command

import (
	"fmt"
	"strings"

	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/errors"
	"pugchamp/timeparse"
)

const timeFormatHelp = "Time should be in the format HH:MM [am/pm] [time zone] [MM-DD[-YYYY]]. " +
	"The zone is optional if you already registered one, the date defaults to today, " +
	"and the year defaults to this year. Register your time zone with the timezone command."

// NewBuiltinRegistry assembles the full command surface. The prefix is
// only used to render usage text; dispatch strips it before lookup.
func NewBuiltinRegistry(prefix string) *Registry {
	reg := NewRegistry()

	reg.Register(NewMessageCommand("create", true, true,
		prefix+"create [PUG name], [time], [optional: description]",
		"Creates a PUG at the given time. "+timeFormatHelp,
		createPUG))

	reg.Register(NewMessageCommand("cancel", true, true,
		prefix+"cancel [PUG name]",
		"Deletes the named PUG and informs its players and watchers of the cancellation. "+
			"This action is irreversible and does not ask \"Are you sure?\", so be careful.",
		cancelPUG))

	reg.Register(NewMessageCommand("reschedule", true, true,
		prefix+"reschedule [PUG name], [new time]",
		"Changes the named PUG to occur at the given time and informs all players and watchers. "+timeFormatHelp,
		reschedulePUG))

	reg.Register(NewMessageCommand("transfer", true, true,
		prefix+"transfer [PUG name], [optional: @user]",
		"Makes the named user the new mod of the named PUG, or the command author if no user is named. "+
			"The user must themselves be a mod.",
		transferPUG))

	reg.Register(NewMessageCommand("close", true, true,
		prefix+"close [PUG name]",
		"Closes and deletes the named PUG without notifying anyone.",
		closePUG))

	reg.Register(NewUserCommand("watch", false, true,
		prefix+"watch [PUG name]",
		"Registers you as a watcher of the named PUG. You will get updates about it without "+
			"counting as a player. If you are currently a player, you will no longer be one.",
		watchPUG))

	reg.Register(NewUserCommand("join", false, true,
		prefix+"join [PUG name]",
		"Registers you as a player in the named PUG. If you are currently a watcher, you will no longer be one.",
		joinPUG))

	reg.Register(NewMessageCommand("add", true, true,
		prefix+"add @user, [PUG name]",
		"Adds the mentioned user as a player in the named PUG, as though they had typed "+prefix+"join themselves.",
		addPlayer))

	reg.Register(NewUserCommand("leave", false, true,
		prefix+"leave [PUG name]",
		"Removes you from the named PUG. You will no longer get updates about it.",
		leavePUG))

	reg.Register(NewMessageCommand("remove", true, true,
		prefix+"remove @user, [PUG name]",
		"Removes the mentioned user from the named PUG, as though they had typed "+prefix+"leave themselves.",
		removePlayer))

	reg.Register(NewUserCommand("list", false, false,
		prefix+"list [optional: time zone]",
		"Lists all active PUGs with times converted to the given time zone. "+
			"For more about a specific PUG, use "+prefix+"info.",
		listPUGs))

	reg.Register(NewUserCommand("info", false, false,
		prefix+"info [PUG name], [optional: time zone]",
		"Returns info about the named PUG, with times in the given time zone - more detailed than "+prefix+"list.",
		infoPUG))

	reg.Register(NewUserCommand("players", false, false,
		prefix+"players [PUG name]",
		"Returns a list of people playing in the named PUG.",
		playersOf))

	reg.Register(NewUserCommand("watchers", false, false,
		prefix+"watchers [PUG name]",
		"Returns a list of people watching the named PUG.",
		watchersOf))

	reg.Register(NewMessageCommand("dms", false, false,
		prefix+"dms [on/off]",
		"Turns direct-message notifications on or off for you.",
		toggleDMs))

	reg.Register(NewUserCommand("timezone", false, true,
		prefix+"timezone [time zone]",
		"Registers the given time zone as yours; commands that involve time will use it when none is given. "+
			"On its own, displays your currently registered time zone.",
		registerZone))

	reg.Register(NewUserCommand("genji", false, false,
		prefix+"genji",
		"Needs healing.",
		func(_ *Env, _ *Scanner, _ domain.User) (string, error) {
			return "I need healing!", nil
		}))

	reg.Register(newHelpCommand(reg, prefix, false))
	reg.Register(newHelpCommand(reg, prefix, true).Reveal())

	return reg
}

func createPUG(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	name, err := sc.NextField()
	if err != nil {
		return "", err
	}
	if _, err := env.Sessions.Get(name); err == nil {
		return "", errors.ErrDuplicateName
	}
	timeText, err := sc.NextField()
	if err != nil {
		return "", err
	}
	at, err := timeparse.Parse(timeText, env.fallbackZone(msg.Author))
	if err != nil {
		return "", err
	}
	description := sc.Rest()
	if env.Moderator != nil {
		description = env.Moderator.CensorDescription(description)
	}

	home := domain.HomeContext{GuildID: msg.GuildID, ChannelID: env.AnnounceChannelID}
	sess := domain.NewSession(name, at, description, msg.Author, home, env.Notifier)
	if err := env.Sessions.Create(sess); err != nil {
		return "", err
	}
	sess.AnnounceCreation()
	return "PUG created successfully.", nil
}

func cancelPUG(env *Env, sc *Scanner, _ contract.Message) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.Cancel()
	_ = env.Sessions.Remove(sess.Name())
	return "PUG successfully canceled.", nil
}

func reschedulePUG(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	timeText, err := sc.NextField()
	if err != nil {
		return "", err
	}
	at, err := timeparse.Parse(timeText, env.fallbackZone(msg.Author))
	if err != nil {
		return "", err
	}
	sess.Reschedule(at)
	return "PUG rescheduled successfully.", nil
}

func transferPUG(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	target := msg.Author
	if len(msg.Mentions) > 0 {
		target = msg.Mentions[0]
		if !env.Chat.HasRole(msg.GuildID, target, env.ModRoleID) {
			return "", fmt.Errorf("%w: the new mod must themselves be a moderator", errors.ErrBadArgument)
		}
	}
	sess.ChangeMod(target)
	return "PUG successfully transferred to " + target.Name + ".", nil
}

func closePUG(env *Env, sc *Scanner, _ contract.Message) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	_ = env.Sessions.Remove(sess.Name())
	return "PUG successfully closed. Thank you for using PUGchamp!", nil
}

func watchPUG(env *Env, sc *Scanner, user domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.RegisterWatcher(user)
	return "You are now watching " + sess.Name() + ".", nil
}

func joinPUG(env *Env, sc *Scanner, user domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.RegisterPlayer(user)
	return "You are now playing in " + sess.Name() + ".", nil
}

func addPlayer(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	target, err := mentionedUser(msg)
	if err != nil {
		return "", err
	}
	// skip the mention token, the name follows it
	if _, err := sc.NextToken(); err != nil {
		return "", err
	}
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.RegisterPlayer(target)
	return "Player added successfully.", nil
}

func leavePUG(env *Env, sc *Scanner, user domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.RemovePlayer(user)
	return "Left PUG successfully.", nil
}

func removePlayer(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	target, err := mentionedUser(msg)
	if err != nil {
		return "", err
	}
	if _, err := sc.NextToken(); err != nil {
		return "", err
	}
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	sess.RemovePlayer(target)
	return "Player removed successfully.", nil
}

func listPUGs(env *Env, sc *Scanner, user domain.User) (string, error) {
	zone, err := env.zoneFor(user, sc)
	if err != nil {
		return "", err
	}
	if env.Sessions.Len() == 0 {
		return "No PUGs are currently scheduled.", nil
	}
	var b strings.Builder
	b.WriteString("Here are the currently active PUGs:")
	for _, sess := range env.Sessions.All() {
		b.WriteString("\n" + sess.BriefInfo(zone.Location()))
	}
	return b.String(), nil
}

func infoPUG(env *Env, sc *Scanner, user domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	zone, err := env.zoneFor(user, sc)
	if err != nil {
		return "", err
	}
	return sess.FullInfo(zone.Location()), nil
}

func playersOf(env *Env, sc *Scanner, _ domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	return sess.PlayerList(), nil
}

func watchersOf(env *Env, sc *Scanner, _ domain.User) (string, error) {
	sess, err := namedSession(env, sc)
	if err != nil {
		return "", err
	}
	return sess.WatcherList(), nil
}

// toggleDMs flips membership of the opt-out role. Role state lives on
// the chat platform, not in the snapshot, so this is not a mutator.
func toggleDMs(env *Env, sc *Scanner, msg contract.Message) (string, error) {
	state, err := sc.NextToken()
	if err != nil {
		return "", err
	}
	switch strings.ToLower(state) {
	case "off":
		if err := env.Chat.AddRole(msg.GuildID, msg.Author, env.NoDMRoleID); err != nil {
			return "", fmt.Errorf("%w: could not update your DM preference", errors.ErrBadArgument)
		}
	case "on":
		if err := env.Chat.RemoveRole(msg.GuildID, msg.Author, env.NoDMRoleID); err != nil {
			return "", fmt.Errorf("%w: could not update your DM preference", errors.ErrBadArgument)
		}
	default:
		return "", fmt.Errorf("%w: expected on or off", errors.ErrBadArgument)
	}
	return "DMs turned " + strings.ToLower(state) + ".", nil
}

func registerZone(env *Env, sc *Scanner, user domain.User) (string, error) {
	if !sc.HasNext() {
		if z, ok := env.Zones.Lookup(user.ID); ok {
			return "Your time zone is currently " + z.Abbr + ".", nil
		}
		return "You don't have a time zone registered. Do so now! It'll be helpful, trust me.", nil
	}
	tok, err := sc.NextToken()
	if err != nil {
		return "", err
	}
	zone, err := timeparse.ParseZone(tok)
	if err != nil {
		return "", err
	}
	env.Zones.Register(user.ID, zone)
	return "Time zone registered successfully! Make sure to switch between the standard and " +
		"daylight variants yourself if your region observes daylight saving.", nil
}

// newHelpCommand builds help or modhelp. The registry and prefix come
// in as explicit dependencies rather than being captured from an
// enclosing scope.
func newHelpCommand(reg *Registry, prefix string, revealModOnly bool) *Command {
	keyword := "help"
	help := "Lists all commands. Use " + prefix + "help [command name] for more detailed usage information."
	if revealModOnly {
		keyword = "modhelp"
		help = "Just like " + prefix + "help, but for the mod-only commands."
	}

	return NewUserCommand(keyword, revealModOnly, false,
		prefix+keyword+" [optional: command name]",
		help,
		func(_ *Env, sc *Scanner, _ domain.User) (string, error) {
			if sc.HasNext() {
				name, err := sc.NextToken()
				if err != nil {
					return "", err
				}
				name = strings.ToLower(strings.TrimPrefix(name, prefix))
				cmd, ok := reg.Get(name)
				if !ok || cmd.Hidden() != revealModOnly {
					return "No command with that name!", nil
				}
				return cmd.Usage + "\n" + cmd.Help, nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Here is a list of all commands - use %s%s [command name] for usage.", prefix, keyword)
			for _, cmd := range reg.All() {
				if cmd.Hidden() == revealModOnly {
					b.WriteString("\n - " + cmd.Keyword)
				}
			}
			return b.String(), nil
		})
}

func namedSession(env *Env, sc *Scanner) (*domain.Session, error) {
	name, err := sc.NextField()
	if err != nil {
		return nil, err
	}
	return env.Sessions.Get(name)
}

func mentionedUser(msg contract.Message) (domain.User, error) {
	if len(msg.Mentions) == 0 {
		return domain.User{}, fmt.Errorf("%w: mention the user to operate on", errors.ErrMissingArgument)
	}
	return msg.Mentions[0], nil
}
