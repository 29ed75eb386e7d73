package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/camuig/stock-tracker/internal/config"
	"github.com/camuig/stock-tracker/internal/logger"
)

// Sender is the part of tgbotapi.BotAPI the notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier struct {
	bot     Sender
	chatID  int64
	enabled bool
	logger  *logger.Logger
}

func NewNotifier(cfg *config.Config, log *logger.Logger) *Notifier {
	if !cfg.Telegram.Enabled {
		return &Notifier{enabled: false, logger: log}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Error("failed to create telegram bot", "error", err)
		return &Notifier{enabled: false, logger: log}
	}

	log.Info("telegram bot connected", "username", bot.Self.UserName)

	return NewNotifierWithSender(bot, cfg.Telegram.ChatID, log)
}

// NewNotifierWithSender builds an enabled notifier around an existing sender.
func NewNotifierWithSender(bot Sender, chatID int64, log *logger.Logger) *Notifier {
	return &Notifier{
		bot:     bot,
		chatID:  chatID,
		enabled: true,
		logger:  log,
	}
}

func (n *Notifier) NotifyStockSet(count int) {
	n.send(fmt.Sprintf("📋 Stock list loaded: %d tickers", count))
}

func (n *Notifier) NotifySubscriptionFailed(ticker string, ticks int, err error) {
	msg := fmt.Sprintf("⚠️ *Quotes stopped* %s\nTicks received: %d\n%s", escape(ticker), ticks, escape(err.Error()))
	n.send(msg)
}

func (n *Notifier) NotifyError(context string, err error) {
	msg := fmt.Sprintf("⚠️ *Error* \\[%s]\n%s", escape(context), escape(err.Error()))
	n.send(msg)
}

func (n *Notifier) NotifyStatus(message string) {
	n.send(message)
}

func (n *Notifier) send(text string) {
	if !n.enabled {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("send telegram message", "error", err)
	}
}

// escape keeps free text such as error messages from being parsed as markup.
func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}
