package config

import "fmt"

// Cross-field checks run after the per-field tag parse. They report the
// first violated constraint, naming the offending key.

func (c *CommonConfig) validateCommon() error {
	if c.APIID <= 0 {
		return NewInvalidConfigError("API_ID", "must be a positive integer", nil)
	}
	if len(c.AdminIDs) == 0 {
		return NewInvalidConfigError("ADMIN_IDS", "must contain at least one id", nil)
	}
	for _, id := range c.AdminIDs {
		if id <= 0 {
			return NewInvalidConfigError("ADMIN_IDS", fmt.Sprintf("id %d is not positive", id), nil)
		}
	}
	return nil
}

func (c *FileStoreConfig) validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if c.MaxFileSizeMB <= 0 {
		return NewInvalidConfigError("MAX_FILE_SIZE", "must be a positive integer", nil)
	}
	return nil
}

func (c *WasabiConfig) validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if c.MaxFileSize <= 0 {
		return NewInvalidConfigError("MAX_FILE_SIZE", "must be a positive integer", nil)
	}
	if c.ChunkSize <= 0 {
		return NewInvalidConfigError("CHUNK_SIZE", "must be a positive integer", nil)
	}
	if c.ChunkSize > c.MaxFileSize {
		return NewInvalidConfigError("CHUNK_SIZE", fmt.Sprintf("%d exceeds MAX_FILE_SIZE %d", c.ChunkSize, c.MaxFileSize), nil)
	}
	if _, ok := wasabiRegions[c.WasabiRegion]; !ok {
		return NewInvalidConfigError("WASABI_REGION", fmt.Sprintf("%s is not a known wasabi region", c.WasabiRegion), nil)
	}
	if c.SubscriptionPrice <= 0 {
		return NewInvalidConfigError("SUBSCRIPTION_PRICE", "must be a positive integer", nil)
	}
	if c.SubscriptionDays <= 0 {
		return NewInvalidConfigError("SUBSCRIPTION_DAYS", "must be a positive integer", nil)
	}
	return nil
}
