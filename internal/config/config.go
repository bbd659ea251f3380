package config

import (
	"os"
	"strings"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=transfer_service_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultServerAddr = ":8080"
const defaultMigrationsDir = "migrations"
const defaultChannelID = "TransferApp"
const defaultChannelKey = "TransferKey001"

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	ServerAddr     string
	ChannelID      string
	ChannelKey     string
	ChannelKeyHash string
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	serverAddr := strings.TrimSpace(os.Getenv("SERVER_ADDR"))
	if serverAddr == "" {
		serverAddr = defaultServerAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	// CHANNEL_KEY_HASH (bcrypt) takes precedence over the plain key when set.
	channelKeyHash := strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH"))

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" && channelKeyHash == "" {
		channelKey = defaultChannelKey
	}

	return Config{
		DatabaseDSN:    normalizeConnectionString(conn),
		MigrationsDir:  migrationsDir,
		ServerAddr:     serverAddr,
		ChannelID:      channelID,
		ChannelKey:     channelKey,
		ChannelKeyHash: channelKeyHash,
	}, nil
}

// normalizeConnectionString accepts either a libpq key=value DSN or a
// .NET-style "Host=...;Port=..." connection string and produces the libpq
// form lib/pq understands.
func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
