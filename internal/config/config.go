package config

import (
	"os"
	"strings"
)

const defaultListenAddr = ":8080"
const defaultChannelID = "BankistApp"
const defaultChannelKey = "BankistKey001"

type Config struct {
	ListenAddr string
	ChannelID  string
	ChannelKey string
}

func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if addr == "" {
		addr = defaultListenAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	return Config{
		ListenAddr: addr,
		ChannelID:  channelID,
		ChannelKey: channelKey,
	}, nil
}
