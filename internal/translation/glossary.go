package translation

import (
	"context"
	"fmt"
	"strings"
)

// glossaryNote is attached to every glossary result so callers can tell the
// user why the output is limited.
const glossaryNote = "offline glossary lookup; configure an API key for full translation"

// a1Glossary covers common A1-level vocabulary for offline lookups.
var a1Glossary = map[string]string{
	"hallo":          "你好",
	"danke":          "谢谢",
	"bitte":          "请; 不客气",
	"ja":             "是",
	"nein":           "不",
	"wasser":         "水",
	"brot":           "面包",
	"apfel":          "苹果",
	"milch":          "牛奶",
	"kaffee":         "咖啡",
	"tee":            "茶",
	"haus":           "房子",
	"schule":         "学校",
	"buch":           "书",
	"tisch":          "桌子",
	"stuhl":          "椅子",
	"hund":           "狗",
	"katze":          "猫",
	"mann":           "男人",
	"frau":           "女人",
	"kind":           "孩子",
	"freund":         "朋友",
	"familie":        "家庭",
	"mutter":         "母亲",
	"vater":          "父亲",
	"tag":            "白天; 日",
	"nacht":          "夜晚",
	"morgen":         "早晨; 明天",
	"abend":          "晚上",
	"woche":          "星期",
	"jahr":           "年",
	"zeit":           "时间",
	"deutsch":        "德语",
	"deutschland":    "德国",
	"lernen":         "学习",
	"sprechen":       "说话",
	"essen":          "吃",
	"trinken":        "喝",
	"gehen":          "走; 去",
	"kommen":         "来",
	"sein":           "是 (动词)",
	"haben":          "有",
	"gut":            "好",
	"schlecht":       "坏",
	"groß":           "大",
	"klein":          "小",
	"schön":          "美丽",
	"tschüss":        "再见",
	"entschuldigung": "对不起",
	"wiedersehen":    "再见",
}

// Glossary is the offline fallback for the translation capability. It only
// resolves single German words it knows about.
type Glossary struct {
	entries map[string]string
}

// NewGlossary creates the built-in A1 glossary.
func NewGlossary() *Glossary {
	return &Glossary{entries: a1Glossary}
}

// Lookup returns the gloss for a single German word.
func (g *Glossary) Lookup(word string) (string, bool) {
	meaning, ok := g.entries[strings.ToLower(strings.TrimSpace(word))]
	return meaning, ok
}

// Serve implements capability.Backend. Multi-word input is translated word by
// word; unknown words stay as-is, marked with a question mark.
func (g *Glossary) Serve(ctx context.Context, text string) (any, error) {
	source, target := DetectDirection(text, DefaultTargetLang)
	if source != "de" {
		return nil, fmt.Errorf("offline glossary only supports German to Chinese lookups")
	}

	words := strings.Fields(text)
	parts := make([]string, 0, len(words))
	known := 0
	for _, word := range words {
		trimmed := strings.Trim(word, ".,!?;:\"'()")
		if meaning, ok := g.Lookup(trimmed); ok {
			parts = append(parts, meaning)
			known++
		} else {
			parts = append(parts, word+"(?)")
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("no glossary entries for %q", text)
	}

	return &Outcome{
		Source:     text,
		Translated: strings.Join(parts, " "),
		SourceLang: source,
		TargetLang: target,
		Note:       glossaryNote,
	}, nil
}

// Name implements capability.Backend.
func (g *Glossary) Name() string {
	return "glossary"
}
