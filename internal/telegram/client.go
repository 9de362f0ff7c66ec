// Package telegram pushes dataset summaries to a Telegram chat via the Bot
// API. It formats statistics into a MarkdownV2 message and retries delivery
// a bounded number of times. Delivery sits outside the data pipeline, so
// the pipeline's no-retry rule does not apply here.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fingrid-tools/gridview/internal/models"
)

// Client handles Telegram notifications
type Client struct {
	bot        *tgbotapi.BotAPI
	chatID     int64
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	return &Client{
		bot:        bot,
		chatID:     chatIDInt,
		maxRetries: 3,
		retryDelay: time.Second,
	}, nil
}

// SendSummary sends the statistics summary for one dataset.
func (c *Client) SendSummary(ds *models.DataSet, stats *models.Statistics) error {
	msg := tgbotapi.NewMessage(c.chatID, formatSummary(ds, stats))
	msg.ParseMode = "MarkdownV2"

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelay * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatSummary formats a dataset's statistics into a Telegram message
func formatSummary(ds *models.DataSet, stats *models.Statistics) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("*Fingrid variable %d*\n", ds.VariableID))
	b.WriteString(fmt.Sprintf("Range: %s\n\n", escapeMarkdownV2(fmt.Sprintf("%s .. %s",
		ds.Range.Start.UTC().Format("2006-01-02 15:04"),
		ds.Range.End.UTC().Format("2006-01-02 15:04")))))

	b.WriteString(fmt.Sprintf("Count: %d\n", stats.Count))
	b.WriteString(fmt.Sprintf("Average: %s\n", escapeMarkdownV2(fmt.Sprintf("%.2f", stats.Mean))))
	b.WriteString(fmt.Sprintf("Maximum: %s\n", escapeMarkdownV2(fmt.Sprintf("%.2f", stats.Max))))
	b.WriteString(fmt.Sprintf("Minimum: %s\n", escapeMarkdownV2(fmt.Sprintf("%.2f", stats.Min))))
	b.WriteString(fmt.Sprintf("Median: %s\n", escapeMarkdownV2(fmt.Sprintf("%.2f", stats.Median))))
	b.WriteString(fmt.Sprintf("Std dev: %s\n", escapeMarkdownV2(fmt.Sprintf("%.2f", stats.StdDev))))

	b.WriteString(fmt.Sprintf("\nQuery: %s\n", escapeMarkdownV2(ds.QueryID)))

	return b.String()
}

// escapeMarkdownV2 escapes the characters Telegram's MarkdownV2 parser
// treats as markup.
func escapeMarkdownV2(text string) string {
	var b strings.Builder
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(char)
	}
	return b.String()
}
