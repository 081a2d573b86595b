package main

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Prefix                string `env:"COMMAND_PREFIX,default=!" validate:"required,max=3"`
	GuildID               string `env:"GUILD_ID,required=true" validate:"required"`
	AnnouncementChannelID string `env:"ANNOUNCEMENT_CHANNEL_ID,required=true" validate:"required"`
	ModRoleID             string `env:"MOD_ROLE_ID,required=true" validate:"required"`
	NoDMRoleID            string `env:"NO_DM_ROLE_ID,required=true" validate:"required"`
	BadgerFilepath        string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel              string `env:"LOG_LEVEL,default=INFO"`
	BannedWords           string `env:"BANNED_WORDS"` // comma-separated
	WelcomeMessage        string `env:"WELCOME_MESSAGE"`
}

var validate = validator.New()

func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c Config) BannedWordList() []string {
	if c.BannedWords == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Split(c.BannedWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (c Config) Welcome() string {
	if c.WelcomeMessage != "" {
		return c.WelcomeMessage
	}
	return "Hello {user} and welcome to the PUGs! The help command will tell you everything I can do."
}
