package services

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"contribhub/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const reminderBody = "Friendly reminder: submit your contribution for this month."

// ReminderBroadcaster records the reminder as an in-app broadcast.
type ReminderBroadcaster interface {
	Broadcast(body string) (models.Notification, error)
}

// ReminderService periodically broadcasts a contribution reminder while the
// reminders setting is enabled. When Telegram credentials are configured the
// same text is pushed to the configured chat. At most one reminder goes out
// per calendar day regardless of the tick interval.
type ReminderService struct {
	settings SettingsStore
	notifier ReminderBroadcaster
	logger   *zap.Logger
	interval time.Duration
	bot      *tgbotapi.BotAPI
	chatID   int64

	mu          sync.Mutex
	lastSentDay string
}

func NewReminderService(settings SettingsStore, notifier ReminderBroadcaster, logger *zap.Logger) *ReminderService {
	service := &ReminderService{
		settings: settings,
		notifier: notifier,
		logger:   logger,
		interval: 6 * time.Hour,
	}

	if raw := os.Getenv("REMINDER_INTERVAL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			service.interval = time.Duration(parsed) * time.Hour
		}
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	rawChatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token != "" && rawChatID != "" {
		chatID, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			logger.Warn("reminders: invalid TELEGRAM_CHAT_ID, telegram push disabled", zap.Error(err))
		} else if bot, err := tgbotapi.NewBotAPI(token); err != nil {
			logger.Warn("reminders: telegram bot init failed, telegram push disabled", zap.Error(err))
		} else {
			service.bot = bot
			service.chatID = chatID
		}
	}

	return service
}

func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.run(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.run(time.Now())
			}
		}
	}()
}

func (service *ReminderService) run(now time.Time) {
	settings, err := service.settings.Get()
	if err != nil {
		service.logger.Error("reminders: load settings failed", zap.Error(err))
		return
	}
	if !settings.RemindersEnabled {
		return
	}

	day := now.Format("2006-01-02")
	service.mu.Lock()
	alreadySent := service.lastSentDay == day
	service.mu.Unlock()
	if alreadySent {
		return
	}

	if _, err := service.notifier.Broadcast(reminderBody); err != nil {
		service.logger.Error("reminders: broadcast failed", zap.Error(err))
		return
	}

	service.mu.Lock()
	service.lastSentDay = day
	service.mu.Unlock()
	service.logger.Info("reminders: contribution reminder broadcast", zap.String("day", day))

	if service.bot != nil {
		if _, err := service.bot.Send(tgbotapi.NewMessage(service.chatID, reminderBody)); err != nil {
			service.logger.Warn("reminders: telegram push failed", zap.Error(err))
		}
	}
}
