package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"commabot/internal/examples"
	"commabot/internal/quiz"
)

// Bot translates Telegram updates into engine calls and renders the
// responses. The update loop is effectively single-threaded, so engine
// calls for one chat are applied in delivery order.
type Bot struct {
	api         *tgbotapi.BotAPI
	engine      *quiz.Engine
	bank        *examples.Bank
	log         *zap.Logger
	pollTimeout time.Duration
}

func NewBot(token string, engine *quiz.Engine, bank *examples.Bank, log *zap.Logger, debug bool, pollTimeout time.Duration) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	return &Bot{
		api:         api,
		engine:      engine,
		bank:        bank,
		log:         log,
		pollTimeout: pollTimeout,
	}, nil
}

// Run processes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.log.Info("authorised on account", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)
	chatID := msg.Chat.ID

	switch ParseEvent(msg) {
	case EventStart:
		b.handleStart(chatID, userID, msg.From.FirstName)
	case EventShowRule:
		b.send(chatID, b.bank.Rule(), nil)
	case EventShowStats:
		b.handleStats(chatID, userID)
	case EventShowMistakes:
		b.handleMistakes(chatID, userID)
	case EventClearMistakes:
		b.handleClearMistakes(chatID, userID)
	case EventStartTest, EventNextQuestion:
		b.handleStartTest(chatID, userID, msg.From.FirstName)
	case EventAnswerYes:
		b.handleAnswer(chatID, userID, true)
	case EventAnswerNo:
		b.handleAnswer(chatID, userID, false)
	case EventBackToMenu:
		b.engine.AbandonQuestion(userID)
		b.send(chatID, "Возвращаемся в главное меню...", mainKeyboard())
	default:
		b.send(chatID, "Я не понимаю эту команду. Используйте меню ниже:", mainKeyboard())
	}
}

func (b *Bot) handleStart(chatID int64, userID, firstName string) {
	b.engine.EnsureProfile(userID, firstName)
	b.log.Info("user started the bot",
		zap.String("user_id", userID), zap.String("name", firstName))

	welcome := fmt.Sprintf(`Привет, %s! 👋

*Я бот-тренажёр по русскому языку!*

Я помогу тебе научиться правильно ставить запятую перед союзом *«И»*.

📊 *Что я умею:*
• Объяснять правило с примерами
• Проводить тесты (у нас %d примеров!)
• Показывать статистику
• Помогать работать над ошибками

Выбери действие в меню ниже:`, firstName, b.bank.Count())

	b.send(chatID, welcome, mainKeyboard())
}

func (b *Bot) handleStats(chatID int64, userID string) {
	stats, err := b.engine.GetStats(userID)
	if err != nil {
		b.send(chatID, "Статистика не найдена. Нажмите /start", nil)
		return
	}

	if stats.TotalTests == 0 {
		b.send(chatID, "Вы ещё не прошли ни одного теста. Нажмите '🚀 Начать тест'!", nil)
		return
	}

	mastered := stats.CorrectAnswers
	if mastered > b.bank.Count() {
		mastered = b.bank.Count()
	}

	text := fmt.Sprintf(`*📊 Ваша статистика*

👤 Имя: %s
✅ Правильных ответов: %d
❌ Неправильных ответов: %d
📈 Всего тестов: %d
🎯 Точность: %.1f%%
🔄 Прогресс: %d из %d примеров освоено`,
		stats.DisplayName,
		stats.CorrectAnswers,
		stats.IncorrectAnswers,
		stats.TotalTests,
		stats.Accuracy,
		mastered, b.bank.Count())

	b.send(chatID, text, nil)
}

func (b *Bot) handleMistakes(chatID int64, userID string) {
	mistakes, total, err := b.engine.GetMistakes(userID, 10)
	if err != nil {
		b.send(chatID, "Статистика не найдена. Нажмите /start", nil)
		return
	}

	if total == 0 {
		b.send(chatID, "🎉 У вас пока нет ошибок! Продолжайте в том же духе!", nil)
		return
	}

	text := "💪 *Работа над ошибками*\n\n"
	text += fmt.Sprintf("Всего ошибок: %d\n\n", total)

	for i, m := range mistakes {
		text += fmt.Sprintf("%d. `%s`\n", i+1, examples.Corrected(m.Example))
		text += fmt.Sprintf("   📝 *Объяснение:* %s\n\n", m.Example.Explanation)
	}

	b.send(chatID, text, mistakesKeyboard())
}

func (b *Bot) handleClearMistakes(chatID int64, userID string) {
	if err := b.engine.ClearMistakes(userID); err != nil {
		b.send(chatID, "❌ Ошибка: данные пользователя не найдены", mainKeyboard())
		return
	}
	b.send(chatID, "✅ История ошибок очищена!", mainKeyboard())
}

func (b *Bot) handleStartTest(chatID int64, userID, firstName string) {
	idx, ex, err := b.engine.IssueQuestion(userID)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			b.handleStart(chatID, userID, firstName)
			return
		}
		b.log.Error("cannot issue question", zap.String("user_id", userID), zap.Error(err))
		b.send(chatID, "❌ Что-то пошло не так, попробуйте ещё раз", mainKeyboard())
		return
	}

	text := fmt.Sprintf("*Пример %d из %d*\n\n`%s`\n\n❓ *Вопрос:* Нужна ли запятая перед союзом *«и»* в этом предложении?",
		idx+1, b.bank.Count(), ex.Text)

	b.send(chatID, text, testKeyboard())
}

func (b *Bot) handleAnswer(chatID int64, userID string, saidCommaNeeded bool) {
	res, err := b.engine.SubmitAnswer(userID, saidCommaNeeded)
	if err != nil {
		b.send(chatID, "❌ Сначала начните тест, нажав '🚀 Начать тест'", mainKeyboard())
		return
	}

	verdict := "✅ *ПРАВИЛЬНО!*"
	if !res.IsCorrect {
		verdict = "❌ *НЕПРАВИЛЬНО*"
	}

	text := fmt.Sprintf(`%s

*Ваш ответ:* %s
*Правильный ответ:* %s

*Правильный вариант:*
`+"`%s`"+`

*Объяснение:*
%s

*Ваша статистика:*
Правильно: %d из %d
Точность: %.1f%%`,
		verdict,
		answerLabel(res.UserAnswer),
		answerLabel(res.Example.NeedsComma),
		examples.Corrected(res.Example),
		res.Example.Explanation,
		res.CorrectAnswers, res.TotalTests,
		res.Accuracy)

	b.send(chatID, text, nil)

	time.Sleep(2 * time.Second)
	b.send(chatID, "Хотите продолжить тренировку?", continueKeyboard())
}

func answerLabel(needsComma bool) string {
	if needsComma {
		return btnAnswerYes
	}
	return btnAnswerNo
}

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("cannot send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
