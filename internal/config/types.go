package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IDList is an ordered list of Telegram user ids. It accepts two surface
// forms from the environment: a comma separated list ("1, 2,3") or a JSON
// array ("[4,5,6]").
type IDList []int64

func (l *IDList) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var ids []int64
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return fmt.Errorf("not a valid JSON id array: %w", err)
		}
		*l = ids
		return nil
	}
	ids := make(IDList, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("not a valid id list element %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// CommonConfig is the section shared by both bot deployments.
type CommonConfig struct {
	APIID         int    `env:"API_ID,required"`
	APIHash       string `env:"API_HASH,required"`
	BotToken      string `env:"BOT_TOKEN,required"`
	AdminIDs      IDList `env:"ADMIN_IDS,required"`
	GPLinksAPIKey string `env:"GPLINKS_API_KEY"`
	RenderURL     string `env:"RENDER_URL" envDefault:"http://localhost:8000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	// AutoShorten is not tag-parsed: AUTO_SHORTEN has lax truthy semantics
	// (unrecognized values fall back instead of failing), so it is derived
	// from the snapshot after the tag parse.
	AutoShorten bool

	botUsername string
}

// SetBotUsername records the username reported by Telegram once the bot has
// authenticated. Only the first call has any effect.
func (c *CommonConfig) SetBotUsername(name string) {
	if c.botUsername != "" {
		return
	}
	c.botUsername = name
}

func (c *CommonConfig) BotUsername() string {
	return c.botUsername
}

// FileStoreConfig is the schema of the file-store bot deployment, which
// keeps uploads in a Telegram storage chat.
type FileStoreConfig struct {
	CommonConfig
	StorageChatID    int64    `env:"STORAGE_CHAT_ID"`
	MaxFileSizeMB    int64    `env:"MAX_FILE_SIZE" envDefault:"2000"`
	AllowedFileTypes []string `env:"ALLOWED_FILE_TYPES" envDefault:"document,video,audio"`
}

func (c *FileStoreConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB << 20
}

// WasabiConfig is the schema of the wasabi upload bot deployment, which
// pushes uploads to Wasabi object storage and sells subscriptions.
type WasabiConfig struct {
	CommonConfig
	WasabiAccessKey   string `env:"WASABI_ACCESS_KEY,required"`
	WasabiSecretKey   string `env:"WASABI_SECRET_KEY,required"`
	WasabiBucket      string `env:"WASABI_BUCKET" envDefault:"wasabi-upload-bot"`
	WasabiRegion      string `env:"WASABI_REGION" envDefault:"us-east-1"`
	MaxFileSize       int64  `env:"MAX_FILE_SIZE" envDefault:"4294967296"`
	ChunkSize         int64  `env:"CHUNK_SIZE" envDefault:"104857600"`
	SubscriptionPrice int64  `env:"SUBSCRIPTION_PRICE" envDefault:"100"`
	SubscriptionDays  int64  `env:"SUBSCRIPTION_DAYS" envDefault:"30"`
}

// wasabiRegions is the set of service regions wasabi exposes s3 endpoints
// for (s3.<region>.wasabisys.com).
var wasabiRegions = map[string]struct{}{
	"us-east-1":      {},
	"us-east-2":      {},
	"us-central-1":   {},
	"us-west-1":      {},
	"ca-central-1":   {},
	"eu-central-1":   {},
	"eu-central-2":   {},
	"eu-west-1":      {},
	"eu-west-2":      {},
	"eu-south-1":     {},
	"ap-northeast-1": {},
	"ap-northeast-2": {},
	"ap-southeast-1": {},
	"ap-southeast-2": {},
}
