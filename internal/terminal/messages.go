package terminal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.Japanese,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	ja := language.Japanese
	message.SetString(ja, "title", "ペアさがし")
	message.SetString(ja, "status.playing", "ゲーム中")
	message.SetString(ja, "status.ready", "スタート")
	message.SetString(ja, "time.pending", "タイム : ーー")
	message.SetString(ja, "time.result", "おめでとうございます！ タイムは : %.2f 秒")
	message.SetString(ja, "help", "s: スタート  1-%d: タイルをめくる  b: 盤面  q: 終了")
	message.SetString(ja, "unknown", "不明なコマンド: %s")
	message.SetString(ja, "session", "セッション: %s")

	en := language.English
	message.SetString(en, "title", "Pair Match")
	message.SetString(en, "status.playing", "Playing")
	message.SetString(en, "status.ready", "Start")
	message.SetString(en, "time.pending", "Time : --")
	message.SetString(en, "time.result", "Congratulations! Your time is : %.2f s")
	message.SetString(en, "help", "s: start  1-%d: reveal a tile  b: board  q: quit")
	message.SetString(en, "unknown", "unknown command: %s")
	message.SetString(en, "session", "session: %s")
}

// NewPrinter returns a printer for the closest supported language. Unknown
// languages fall back to Japanese.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		return message.NewPrinter(supportedTags[0])
	}

	_, index, _ := tagMatcher.Match(tag)

	return message.NewPrinter(supportedTags[index])
}
