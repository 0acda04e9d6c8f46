package engine

import (
	"fmt"
	"strings"
	"time"
)

// smallTalkIntent is one conversational intent the matcher can intercept.
// Either replies or render is set; render builds a clock-dependent reply.
type smallTalkIntent struct {
	name     string
	triggers []string
	replies  []string
	render   func(now time.Time) string
	guarded  bool // decline when the utterance carries a medical term
}

// smallTalkIntents are tested in this order; the first matching intent wins.
var smallTalkIntents = []smallTalkIntent{
	{
		name:     "greeting",
		triggers: []string{"سلام", "السلام عليكم", "مرحبا", "مرحباً", "اهلا", "أهلاً", "هاي", "هلو"},
		replies:  greetingReplies,
	},
	{
		name:     "time",
		triggers: []string{"الساعة كام", "كام الساعة", "الوقت", "الساعه كام"},
		render: func(now time.Time) string {
			return fmt.Sprintf("🕐 الساعة الآن %s\n\nكيف يمكنني مساعدتك طبياً؟ هل تشعر بأي أعراض؟", now.Format("03:04 PM"))
		},
	},
	{
		name:     "date",
		triggers: []string{"انهارده كام", "النهارده كام", "اليوم كام", "التاريخ", "تاريخ اليوم"},
		render: func(now time.Time) string {
			return fmt.Sprintf("📅 اليوم هو %s\n\nآمل أن تكون بخير! هل تحتاج مساعدة طبية؟", now.Format("02/01/2006"))
		},
	},
	{
		name:     "how-are-you",
		triggers: []string{"ازيك", "إزيك", "كيفك", "ايه اخبارك", "اخبارك", "كيف حالك", "إيه أخبارك"},
		replies:  howAreYouReplies,
	},
	{
		name:     "weather",
		triggers: []string{"الطقس", "الجو", "الجو ايه", "الطقس إيه"},
		replies:  []string{weatherReply},
	},
	{
		name:     "thanks",
		triggers: []string{"شكرا", "شكراً", "متشكر", "تسلم", "الله يعطيك العافية", "جزاك الله خير"},
		replies:  thanksReplies,
	},
	{
		name:     "identity",
		triggers: []string{"انت مين", "أنت مين", "ايه اللي بتعمله", "إيه شغلك", "وظيفتك ايه"},
		replies:  []string{identityReply},
	},
	{
		name:     "farewell",
		triggers: []string{"مع السلامة", "باي", "وداعا", "وداعاً", "تصبح على خير"},
		replies:  farewellReplies,
	},
	{
		name:     "off-topic",
		triggers: []string{"اكل ايه", "فين", "ازاي", "امتى", "مين", "ليه"},
		replies:  []string{offTopicReply},
		guarded:  true,
	},
}

// medicalTriggerWords keep the off-topic deflection from swallowing a message
// that actually belongs to the symptom pipeline.
var medicalTriggerWords = []string{"صداع", "ألم", "وجع", "حمى", "سعال", "مرض", "دواء", "طبيب", "مستشفى", "أعراض"}

// matchSmallTalk tests the utterance against the intent table and, when one
// matches, picks a reply uniformly at random from its pool. The second return
// is false when no intent matched and the symptom pipeline should run.
func (e *Engine) matchSmallTalk(utterance string) (Response, bool) {
	normalized := Normalize(utterance)
	if normalized == "" {
		return Response{}, false
	}

	for _, intent := range smallTalkIntents {
		if !containsAny(normalized, intent.triggers) {
			continue
		}
		if intent.guarded && containsAny(normalized, medicalTriggerWords) {
			continue
		}
		text := ""
		if intent.render != nil {
			text = intent.render(e.now())
		} else {
			text = e.pick(intent.replies)
		}
		return Response{Text: text, Type: MessageNormal}, true
	}
	return Response{}, false
}

func containsAny(normalized string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(normalized, Normalize(p)) {
			return true
		}
	}
	return false
}
