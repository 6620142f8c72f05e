package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "fwhr-bot/internal/application"
	"fwhr-bot/internal/container"
	"fwhr-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я считаю FWHR — отношение ширины лица к его высоте.

📸 Отправьте фото лица анфас, и я посчитаю коэффициент.

📋 Команды:
/measure — начать измерение
/method — способ: left, right или average
/top — верхняя линия: eyebrow или eyelid
/settings — текущие настройки
/again — пересчитать последнее фото
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото лица
2️⃣ Бот найдёт точки лица и проверит, что вы смотрите прямо в камеру
3️⃣ Вы получите коэффициент и фото с прямоугольником

💡 Рекомендации:
• Смотрите прямо в камеру, не наклоняйте голову
• Лицо должно быть хорошо освещено
• В кадре должно быть одно лицо

⚙️ Настройки:
/method left|right|average — по какой стороне лица брать высоту
/top eyebrow|eyelid — верхняя линия по бровям или по векам`

	msgAwaitingPhoto   = "📸 Отправьте фото лица анфас."
	msgCancelled       = "❌ Операция отменена. Отправьте /measure для нового измерения."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото лица для измерения."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoFace          = "🙈 Лицо не найдено. Попробуйте другое фото."
	msgNoPhoto         = "📭 Нет недавнего фото. Сначала отправьте фото лица."
	msgBadTop          = "⚠️ Используйте /top eyebrow или /top eyelid."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// fetcher скачивает файл по ссылке
type fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api          *tgbotapi.BotAPI
	users        *app.UserService
	measurements *app.MeasurementService
	files        fetcher
	log          *logrus.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, files fetcher, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Infof("telegram: authorized on account %s", api.Self.UserName)

	return &Bot{
		api:          api,
		users:        c.UserService,
		measurements: c.MeasurementService,
		files:        files,
		log:          log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	logger := b.log.WithFields(logrus.Fields{"user_id": userID, "command": msg.Command()})

	switch msg.Command() {
	case "start":
		if _, err := b.users.Cancel(ctx, userID, chatID); err != nil {
			logger.WithError(err).Error("telegram: reset state")
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "measure":
		if _, err := b.users.BeginMeasure(ctx, userID, chatID); err != nil {
			logger.WithError(err).Error("telegram: begin measure")
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "method":
		user, err := b.users.SetMethod(ctx, userID, chatID, msg.CommandArguments())
		if err != nil {
			logger.WithError(err).Error("telegram: set method")
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, formatSettings(user.Settings))

	case "top":
		user, err := b.users.SetTop(ctx, userID, chatID, msg.CommandArguments())
		if errors.Is(err, entity.ErrInvalidArgument) {
			b.sendMessage(chatID, msgBadTop)
			return
		}
		if err != nil {
			logger.WithError(err).Error("telegram: set top")
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, formatSettings(user.Settings))

	case "settings":
		user, err := b.users.Get(ctx, userID, chatID)
		if err != nil {
			logger.WithError(err).Error("telegram: get user")
			return
		}
		b.sendMessage(chatID, formatSettings(user.Settings))

	case "again":
		b.sendMessage(chatID, msgProcessing)
		out, err := b.measurements.Remeasure(ctx, userID, chatID)
		b.reply(chatID, out, err)

	case "cancel":
		if _, err := b.users.Cancel(ctx, userID, chatID); err != nil {
			logger.WithError(err).Error("telegram: cancel")
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.log.WithFields(logrus.Fields{"user_id": msg.From.ID, "error": err}).Error("telegram: download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	out, err := b.measurements.AcceptPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData)
	b.reply(msg.Chat.ID, out, err)
}

// reply отправляет результат измерения: фото с подписью или текст
func (b *Bot) reply(chatID int64, out *app.MeasurementOutput, err error) {
	if err != nil {
		b.sendMessage(chatID, errorMessage(err))
		if errorMessage(err) == msgProcessingError {
			b.log.WithFields(logrus.Fields{"chat_id": chatID, "error": err}).Error("telegram: measurement failed")
		}
		return
	}

	text := formatResult(out)
	if len(out.Highlighted) == 0 {
		b.sendMessage(chatID, text)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "fwhr.jpg", Bytes: out.Highlighted})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		b.log.WithError(err).Error("telegram: send photo")
		b.sendMessage(chatID, text)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	return b.files.Fetch(ctx, file.Link(b.api.Token))
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).Error("telegram: send message")
	}
}

// formatResult текст ответа с коэффициентом или причиной отказа
func formatResult(out *app.MeasurementOutput) string {
	v := out.Result.Verdict
	if !out.Result.HasRatio() {
		return fmt.Sprintf("🚫 Фото не подходит для расчёта FWHR: голова повёрнута или наклонена.\n"+
			"Наклон глаз: %.2f, смещение носа: %.2f, отступы: %.2f", v.EyeDif, v.NoseDif, v.SpaceRatio)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📏 FWHR: %.3f", out.Result.Ratio)
	if out.Faces > 1 {
		fmt.Fprintf(&sb, "\n👥 Найдено лиц: %d, посчитано первое.", out.Faces)
	}
	return sb.String()
}

// formatSettings текущие настройки пользователя
func formatSettings(o entity.Options) string {
	return fmt.Sprintf("⚙️ Способ: %s\n⬆️ Верхняя линия: %s", o.Method, o.Top)
}

// errorMessage сообщение пользователю для ошибки расчёта
func errorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrNoFaceDetected):
		return msgNoFace
	case errors.Is(err, app.ErrNoPhoto):
		return msgNoPhoto
	case errors.Is(err, entity.ErrInvalidArgument):
		return msgBadTop
	default:
		return msgProcessingError
	}
}
