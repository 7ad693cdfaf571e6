package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
	"github.com/PineFruitDev/TSTemplateBot/pkg/retrier"
	"github.com/bwmarrin/discordgo"
)

// publishLimiter paces bulk-overwrite calls across scopes. Discord rate
// limits command registration aggressively, so the limiter backs off on 429s
// and recovers slowly.
var publishLimiter = retrier.NewLimiter(4, 1, 8)

// retryableREST reports whether a Discord API error is worth retrying:
// rate limits and server-side failures are, everything else is not.
func retryableREST(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return false
	}
	code := restErr.Response.StatusCode
	return code == http.StatusTooManyRequests || code >= 500
}

// PublishCommands bulk-overwrites the application command set for every
// configured scope. An empty guild list publishes globally; otherwise each
// guild gets its own overwrite, which Discord applies instantly (global
// registration can take up to an hour to propagate).
func PublishCommands(ctx context.Context, s *discordgo.Session, appID string, guildIDs []string, defs []*discordgo.ApplicationCommand) error {
	if appID == "" {
		self, err := fetchSelf(ctx, s)
		if err != nil {
			return fmt.Errorf("resolve application id: %w", err)
		}
		appID = self.ID
	}

	scopes := guildIDs
	if len(scopes) == 0 {
		scopes = []string{""}
	}

	cfg := retrier.DefaultConfig()
	cfg.Retryable = retryableREST
	cfg.OnRetry = func(attempt int, err error) {
		logger.Warn("command publish retry", "attempt", attempt, "error", err)
	}

	for _, guildID := range scopes {
		err := retrier.Do(ctx, publishLimiter, cfg, func() error {
			_, err := s.ApplicationCommandBulkOverwrite(appID, guildID, defs)
			return err
		})
		if err != nil {
			if guildID == "" {
				return fmt.Errorf("overwrite global commands: %w", err)
			}
			return fmt.Errorf("overwrite commands for guild %s: %w", guildID, err)
		}
		logger.Info("commands published", "scope", scopeName(guildID), "count", len(defs))
	}
	return nil
}

// fetchSelf resolves the bot user, preferring gateway state over a REST call.
func fetchSelf(ctx context.Context, s *discordgo.Session) (*discordgo.User, error) {
	if s.State != nil && s.State.User != nil {
		return s.State.User, nil
	}
	var self *discordgo.User
	cfg := retrier.DefaultConfig()
	cfg.Retryable = retryableREST
	err := retrier.Do(ctx, publishLimiter, cfg, func() error {
		u, err := s.User("@me")
		if err != nil {
			return err
		}
		self = u
		return nil
	})
	return self, err
}

func scopeName(guildID string) string {
	if guildID == "" {
		return "global"
	}
	return "guild " + guildID
}
