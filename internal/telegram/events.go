package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Event is the closed set of inbound event kinds the adapter produces.
// Raw command and button text is mapped here once; the engine never sees
// free-form strings.
type Event int

const (
	EventUnrecognized Event = iota
	EventStart
	EventShowRule
	EventShowStats
	EventShowMistakes
	EventClearMistakes
	EventStartTest
	EventAnswerYes
	EventAnswerNo
	EventNextQuestion
	EventBackToMenu
)

// Button labels shown on the reply keyboards.
const (
	btnRule          = "📖 Правило"
	btnStartTest     = "🚀 Начать тест"
	btnStats         = "📊 Статистика"
	btnMistakes      = "💪 Работа над ошибками"
	btnAnswerYes     = "✅ Да, нужна"
	btnAnswerNo      = "❌ Нет, не нужна"
	btnNextQuestion  = "➡️ Следующий вопрос"
	btnBackToMenu    = "🔙 В меню"
	btnClearMistakes = "🧹 Очистить историю ошибок"
)

// ParseEvent maps an inbound message onto an Event. Any unmapped input
// becomes EventUnrecognized.
func ParseEvent(msg *tgbotapi.Message) Event {
	if msg.IsCommand() {
		if msg.Command() == "start" {
			return EventStart
		}
		return EventUnrecognized
	}

	switch msg.Text {
	case btnRule:
		return EventShowRule
	case btnStats:
		return EventShowStats
	case btnMistakes:
		return EventShowMistakes
	case btnClearMistakes:
		return EventClearMistakes
	case btnStartTest:
		return EventStartTest
	case btnAnswerYes:
		return EventAnswerYes
	case btnAnswerNo:
		return EventAnswerNo
	case btnNextQuestion:
		return EventNextQuestion
	case btnBackToMenu:
		return EventBackToMenu
	default:
		return EventUnrecognized
	}
}
