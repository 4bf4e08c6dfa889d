package config

import (
	"fmt"
	"strings"
)

// Redact truncates a secret to a short prefix suitable for logs.
func Redact(s string) string {
	if s == "" {
		return "<unset>"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

// HumanBytes renders n in the first 1024-based unit where the remaining
// magnitude drops below 1024, capped at TB.
func HumanBytes(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", v, units[i])
}

func (c *CommonConfig) writeSummary(b *strings.Builder) {
	fmt.Fprintf(b, "api_id: %d\n", c.APIID)
	fmt.Fprintf(b, "api_hash: %s\n", Redact(c.APIHash))
	fmt.Fprintf(b, "bot_token: %s\n", Redact(c.BotToken))
	fmt.Fprintf(b, "admin_ids: %v\n", []int64(c.AdminIDs))
	fmt.Fprintf(b, "gplinks_api_key: %s\n", Redact(c.GPLinksAPIKey))
	fmt.Fprintf(b, "auto_shorten: %t\n", c.AutoShorten)
	fmt.Fprintf(b, "render_url: %s\n", c.RenderURL)
	if c.botUsername != "" {
		fmt.Fprintf(b, "bot_username: %s\n", c.botUsername)
	}
}

// Summary is a redacted report of the loaded configuration. Secrets are
// truncated, byte quantities are human scaled.
func (c *FileStoreConfig) Summary() string {
	var b strings.Builder
	c.writeSummary(&b)
	fmt.Fprintf(&b, "storage_chat_id: %d\n", c.StorageChatID)
	fmt.Fprintf(&b, "max_file_size: %s\n", HumanBytes(c.MaxFileSizeBytes()))
	fmt.Fprintf(&b, "allowed_file_types: %s\n", strings.Join(c.AllowedFileTypes, ","))
	return b.String()
}

// Summary is a redacted report of the loaded configuration. Secrets are
// truncated, byte quantities are human scaled.
func (c *WasabiConfig) Summary() string {
	var b strings.Builder
	c.writeSummary(&b)
	fmt.Fprintf(&b, "wasabi_access_key: %s\n", Redact(c.WasabiAccessKey))
	fmt.Fprintf(&b, "wasabi_secret_key: %s\n", Redact(c.WasabiSecretKey))
	fmt.Fprintf(&b, "wasabi_bucket: %s\n", c.WasabiBucket)
	fmt.Fprintf(&b, "wasabi_region: %s\n", c.WasabiRegion)
	fmt.Fprintf(&b, "max_file_size: %s\n", HumanBytes(c.MaxFileSize))
	fmt.Fprintf(&b, "chunk_size: %s\n", HumanBytes(c.ChunkSize))
	fmt.Fprintf(&b, "subscription_price: %d\n", c.SubscriptionPrice)
	fmt.Fprintf(&b, "subscription_days: %d\n", c.SubscriptionDays)
	return b.String()
}
