package examples

const ruleText = `📖 *Запятая перед союзом «И»*

*Запятая СТАВИТСЯ,* если «и» соединяет части сложного предложения —
у каждой части своя грамматическая основа:

` + "`Наступила ночь, и город затих.`" + `
(«ночь наступила» + «город затих»)

*Запятая НЕ СТАВИТСЯ:*

1️⃣ Если «и» соединяет однородные члены при одном подлежащем:
` + "`Он открыл окно и вдохнул свежий воздух.`" + `

2️⃣ Если у частей сложного предложения есть общий второстепенный член:
` + "`Вчера шёл дождь и дул сильный ветер.`" + `
(«вчера» относится к обеим частям)

💡 *Как проверить:* найдите грамматические основы. Две основы без
общего слова — запятая нужна. Одна основа или общее слово — не нужна.`

var defaultExamples = []Example{
	{
		Text:        "Наступила ночь и город затих",
		NeedsComma:  true,
		Explanation: "Две грамматические основы — «ночь наступила» и «город затих», общего второстепенного члена нет, поэтому запятая нужна.",
	},
	{
		Text:        "Он открыл окно и вдохнул свежий воздух",
		NeedsComma:  false,
		Explanation: "Одно подлежащее «он» и два однородных сказуемых, соединённых одиночным союзом «и» — запятая не ставится.",
	},
	{
		Text:        "Солнце село и сразу стало прохладно",
		NeedsComma:  true,
		Explanation: "Сложное предложение: вторая часть безличная («стало прохладно»), общего второстепенного члена нет — запятая нужна.",
	},
	{
		Text:        "Мама ушла и папа остался",
		NeedsComma:  false,
		Explanation: "Короткие части тесно связаны по смыслу и произносятся как единое целое — запятая не ставится.",
	},
	{
		Text:        "Вчера шёл дождь и дул сильный ветер",
		NeedsComma:  false,
		Explanation: "У частей есть общий второстепенный член «вчера», поэтому запятая перед «и» не ставится.",
	},
	{
		Text:        "Поезд остановился и пассажиры вышли на перрон",
		NeedsComma:  true,
		Explanation: "Две основы — «поезд остановился» и «пассажиры вышли», общего члена нет — запятая обязательна.",
	},
	{
		Text:        "Бабушка испекла пироги и угостила соседей",
		NeedsComma:  false,
		Explanation: "Однородные сказуемые при одном подлежащем «бабушка» — запятая не нужна.",
	},
	{
		Text:        "Прозвенел звонок и ученики разошлись по классам",
		NeedsComma:  true,
		Explanation: "Сложносочинённое предложение: у каждой части своё подлежащее — запятая нужна.",
	},
	{
		Text:        "Кот спрыгнул с подоконника и убежал в сад",
		NeedsComma:  false,
		Explanation: "Одно подлежащее «кот», однородные сказуемые — запятая не ставится.",
	},
	{
		Text:        "Зимой рано темнеет и часто метут метели",
		NeedsComma:  false,
		Explanation: "Общий второстепенный член «зимой» объединяет обе части — запятая не ставится.",
	},
	{
		Text:        "Дверь скрипнула и в комнату вошла сестра",
		NeedsComma:  true,
		Explanation: "Две грамматические основы без общего члена — запятая перед «и» нужна.",
	},
	{
		Text:        "Туристы разбили лагерь и развели костёр",
		NeedsComma:  false,
		Explanation: "Однородные сказуемые при одном подлежащем «туристы» — запятая не нужна.",
	},
	{
		Text:        "Гром грянул и молния осветила небо",
		NeedsComma:  true,
		Explanation: "Две самостоятельные части со своими подлежащими — запятая нужна.",
	},
	{
		Text:        "Река замёрзла и дети побежали на каток",
		NeedsComma:  true,
		Explanation: "Сложносочинённое предложение без общего второстепенного члена — запятая нужна.",
	},
	{
		Text:        "Художник взял кисть и начал новую картину",
		NeedsComma:  false,
		Explanation: "Одно подлежащее и два однородных сказуемых — запятая не ставится.",
	},
	{
		Text:        "Ветер утих и море постепенно успокоилось",
		NeedsComma:  true,
		Explanation: "У каждой части своя грамматическая основа, общего члена нет — запятая нужна.",
	},
}
