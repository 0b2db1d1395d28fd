// Package telegram is the Telegram transport. Each chat maps to its own
// session, so group chats and direct messages keep separate memory.
package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/service/assistant"
	"github.com/Jayani-123/tasbot/internal/service/command"
	"github.com/Jayani-123/tasbot/pkg/log"
)

const baseContextKey = "base_context"

const greeting = "G'day! I'm TasBot, your Tasmania travel mate. Ask me about places to stay, things to do, the weather, or trip budgets. Try /help for commands."

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	router    *command.Router
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	asst *assistant.Assistant,
	router *command.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: asst,
		router:    router,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: restrict to the owner when one is configured
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if bot.ownerID != 0 && c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	return b.sender.sendMarkdown(ctx, c.Chat(), greeting, false)
}

func (b *Bot) handleMessage(c tele.Context) error {
	// Create a context for this request
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	if out, handled := b.router.Execute(ctx, sessionID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	reply := b.assistant.Chat(ctx, sessionID, c.Text())
	if err := b.sender.sendMarkdown(ctx, c.Chat(), reply, false); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram reply")
		return c.Send(fmt.Sprintf("error: %v", err))
	}
	return nil
}
