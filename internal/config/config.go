package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr          string
	DataDir       string
	Seed          int64
	BalancePreset string
	BalanceFile   string
}

func LoadFromEnv() (Config, error) {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("BLOCKPARTY_ADDR", ":8080")
	}

	cfg := Config{
		Addr:          addr,
		DataDir:       envDefault("BLOCKPARTY_DATA_DIR", ""),
		Seed:          envInt64Default("BLOCKPARTY_SEED", 0),
		BalancePreset: strings.ToLower(envDefault("BLOCKPARTY_BALANCE", "default")),
		BalanceFile:   strings.TrimSpace(os.Getenv("BLOCKPARTY_BALANCE_FILE")),
	}
	return cfg, nil
}

// Balance resolves the preset then applies the optional balance file on top.
func (c Config) Balance() (Balance, error) {
	bal, err := BalancePreset(c.BalancePreset)
	if err != nil {
		return bal, err
	}
	if c.BalanceFile == "" {
		return bal, nil
	}
	return LoadBalance(c.BalanceFile, bal)
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt64Default(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
