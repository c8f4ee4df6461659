package telegram

const (
	CmdStart = "/start"
	CmdHelp  = "/help"
	CmdClear = "/clear"

	MsgWelcome = "👋 Welcome! / Willkommen!\n\n" +
		"I answer in English and German. Just write your question in one of these languages.\n" +
		"Ich antworte auf Englisch und Deutsch. Schreib deine Frage einfach in einer dieser Sprachen.\n\n" +
		"/clear clears the chat history."
	MsgHelp = "How it works:\n" +
		"• Write in English and the English assistant answers.\n" +
		"• Schreib auf Deutsch und der deutsche Assistent antwortet.\n" +
		"• Other languages get a short notice.\n\n" +
		"Commands: /start, /help, /clear"
	MsgCleared     = "Chat history cleared!"
	MsgRateLimited = "⏳ Too many messages, please slow down."
	MsgFailed      = "Something went wrong while processing your message. Please try again."

	ChatActionTyping = "typing"
)
