// Package bot implements a small Telegram presence for operators: WARN+
// log records are forwarded to a configured chat (see lib/logger's
// Telegram handler), and /status answers with the current balance board.
package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"

	"enbminer/entity"
	"enbminer/lib/sl"
)

// LeaderboardService is implemented by impl/core.
type LeaderboardService interface {
	Leaderboard(kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error)
}

type TgBot struct {
	log     *slog.Logger
	api     *tgbotapi.Bot
	chatId  int64
	boards  LeaderboardService
	updater *ext.Updater
}

func NewTgBot(apiKey string, chatId int64, boards LeaderboardService, log *slog.Logger) (*TgBot, error) {
	tgBot := &TgBot{
		log:    log.With(sl.Module("tgbot")),
		chatId: chatId,
		boards: boards,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

func (t *TgBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			t.log.Error("handling update:", sl.Err(err))
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	t.updater = ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("status", t.status))

	err := t.updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	t.updater.Idle()
	return nil
}

func (t *TgBot) Stop() {
	if t.updater != nil {
		t.log.Info("stopping telegram bot")
		t.updater.Stop()
	}
}

// status answers only in the configured operator chat.
func (t *TgBot) status(_ *tgbotapi.Bot, ctx *ext.Context) error {
	if ctx.EffectiveChat.Id != t.chatId || t.boards == nil {
		return nil
	}
	entries, err := t.boards.Leaderboard(entity.BoardBalance, 5)
	if err != nil {
		t.plainResponse(t.chatId, Sanitize(fmt.Sprintf("status failed: %v", err)))
		return nil
	}
	msg := "*Top balances*"
	for _, e := range entries {
		msg += Sanitize(fmt.Sprintf("\n%d. %s — %d ENB", e.Rank, e.WalletAddress, e.Value))
	}
	if len(entries) == 0 {
		msg += Sanitize("\nno activated accounts yet")
	}
	t.plainResponse(t.chatId, msg)
	return nil
}

// SendMessageWithLevel forwards a log record to the operator chat with a
// level marker. Used by the slog Telegram handler.
func (t *TgBot) SendMessageWithLevel(msg string, level slog.Level) {
	if t.chatId == 0 {
		return
	}
	marker := "ℹ️"
	switch {
	case level >= slog.LevelError:
		marker = "🔴"
	case level >= slog.LevelWarn:
		marker = "🟡"
	}
	t.plainResponse(t.chatId, marker+" "+msg)
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	if text == "" {
		t.log.With("id", chatId).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		t.log.With(slog.Int64("id", chatId)).Warn("sending message", sl.Err(err))
		_, err = t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(slog.Int64("id", chatId)).Error("sending safe message", sl.Err(err))
		}
	}
}

func Sanitize(input string) string {
	reservedChars := "\\_{}#+-.!|()[]=*"
	sanitized := ""
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			sanitized += "\\" + string(char)
		} else {
			sanitized += string(char)
		}
	}
	return sanitized
}
