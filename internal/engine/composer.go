package engine

import (
	"fmt"
	"strings"
)

var severityEmoji = map[Severity]string{
	SeverityLow:    "🟢",
	SeverityMedium: "🟡",
	SeverityHigh:   "🟠",
	SeverityUrgent: "🔴",
}

func clarificationPrompt() Response {
	return Response{Text: clarificationPromptText, Type: MessageQuestion}
}

func cannotDetermine() Response {
	return Response{Text: cannotDetermineText, Type: MessageNormal}
}

// composeAssessment is the below-threshold reply: it lists what was detected
// and asks the follow-up questions that would sharpen the picture. The
// clinical mode leads with an emergency block when red flags fired.
func (e *Engine) composeAssessment(analysis ClinicalAnalysis) Response {
	if e.mode == ModeClinical && analysis.Urgency == SeverityUrgent {
		return composeUrgentAssessment(analysis)
	}

	var b strings.Builder
	b.WriteString("تم تحليل الأعراض بنجاح! 📊\n\n")
	b.WriteString(fmt.Sprintf("🎯 **الأعراض المكتشفة:** %s\n", strings.Join(analysis.Symptoms, ", ")))
	if len(analysis.BodySystems) > 0 {
		b.WriteString(fmt.Sprintf("🫀 **الأنظمة المتأثرة:** %s\n", strings.Join(analysis.BodySystems, ", ")))
	}
	if e.mode == ModeClinical {
		b.WriteString(fmt.Sprintf("📈 **مؤشر الخطورة:** %d/5\n", int(analysis.SeverityScore+0.5)))
		b.WriteString(fmt.Sprintf("🔍 **السياق الطبي:** %s\n", analysis.ContextSummary))
	}
	b.WriteString("\nللحصول على تشخيص دقيق، أحتاج لمعرفة المزيد:\n\n❓ **أسئلة مهمة:**\n")
	for i, q := range analysis.ClinicalQuestions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	b.WriteString("\nكلما زادت التفاصيل، كان التشخيص أدق! 🎯")

	return Response{Text: b.String(), Type: MessageAnalysis}
}

func composeUrgentAssessment(analysis ClinicalAnalysis) Response {
	var b strings.Builder
	b.WriteString("🚨 **تقييم طبي عاجل - أولوية قصوى**\n\n")
	b.WriteString("بناءً على التحليل السريري للأعراض التي وصفتها، هناك مؤشرات تستدعي التدخل الطبي الفوري.\n\n")
	b.WriteString("🔴 **علامات الإنذار المبكر المرصودة:**\n")
	for _, flag := range analysis.RedFlags {
		b.WriteString(fmt.Sprintf("• %s\n", flag))
	}
	b.WriteString("\n⚡ **الإجراء المطلوب فوراً:**\n")
	b.WriteString("• اتصل بالإسعاف على الرقم 123 الآن\n")
	b.WriteString("• لا تقود السيارة بنفسك\n")
	b.WriteString("• ابق في مكان آمن ولا تبذل أي مجهود\n")
	b.WriteString("• أعلم أحد أفراد العائلة بحالتك")

	return Response{Text: b.String(), Type: MessageAnalysis}
}

// composeDiagnosis renders the final diagnosis message with its structured
// payload. The emergency banner is appended only for عاجل conditions.
func (e *Engine) composeDiagnosis(match Match) Response {
	cond := match.Condition

	var b strings.Builder
	b.WriteString("## 🎯 نتيجة التحليل الطبي\n\n")
	b.WriteString(fmt.Sprintf("**الحالة المحتملة:** %s\n", cond.Name))
	b.WriteString(fmt.Sprintf("**مستوى الأولوية:** %s %s\n", severityEmoji[cond.Severity], cond.Severity))
	b.WriteString(fmt.Sprintf("**التخصص المناسب:** %s\n", cond.Specialty))
	b.WriteString(fmt.Sprintf("**دقة التحليل:** %d%%\n", match.Confidence))

	if e.mode == ModeClinical && len(match.Trace) > 0 {
		b.WriteString("\n🔬 **التحليل التشخيصي:**\n")
		for _, reason := range match.Trace {
			b.WriteString(fmt.Sprintf("• %s\n", reason))
		}
	}

	b.WriteString("\n### 📋 التوصيات الطبية:\n")
	for i, rec := range cond.Recommendations {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}

	if e.mode == ModeClinical && len(cond.Investigations) > 0 {
		b.WriteString("\n### 🔬 الفحوصات المطلوبة:\n")
		for _, inv := range cond.Investigations {
			b.WriteString(fmt.Sprintf("• %s\n", inv))
		}
	}

	if cond.Severity == SeverityUrgent {
		b.WriteString("\n" + emergencyBanner + "\n")
	}
	b.WriteString("\n" + diagnosisDisclaimer)

	diagnosis := &Diagnosis{
		Condition:       cond.Name,
		Confidence:      match.Confidence,
		Severity:        cond.Severity,
		Specialty:       cond.Specialty,
		Recommendations: cond.Recommendations,
	}
	if e.mode == ModeClinical {
		diagnosis.Investigations = cond.Investigations
		diagnosis.DifferentialDiagnosis = cond.Differential
		diagnosis.RedFlags = cond.RedFlags
	}

	return Response{Text: b.String(), Type: MessageDiagnosis, Diagnosis: diagnosis}
}

// composeFollowUp is the post-diagnosis acknowledgment; it never re-derives
// a diagnosis.
func (e *Engine) composeFollowUp() Response {
	reply := e.pick(followUpReplies)
	text := reply + "\n\n🔬 **ملاحظة سريرية:** هذا التقييم يبقى تقييماً مساعداً ولا يحل محل الفحص السريري المباشر. إذا أردت البدء من جديد، اطلب إعادة تعيين المحادثة."
	return Response{Text: text, Type: MessageNormal}
}
