package engine

// ConditionDefinition is one row of the static condition table. Confidence is
// the baseline percentage reported by the basic scorer; Symptoms is the
// required set scored against the accumulated symptoms.
type ConditionDefinition struct {
	Name            string
	Symptoms        []string
	Specialty       string
	Severity        Severity
	Confidence      int
	Recommendations []string
	Investigations  []string
	Differential    []string
	RedFlags        []string
}

// conditionTable definition order is load-bearing: when two conditions reach
// the same score, the one defined first wins.
var conditionTable = []ConditionDefinition{
	{
		Name:       "نزلة برد",
		Symptoms:   []string{"صداع", "حمى", "سعال"},
		Specialty:  "طب الأسرة",
		Severity:   SeverityLow,
		Confidence: 85,
		Recommendations: []string{
			"الراحة في المنزل لمدة 3-5 أيام",
			"شرب السوائل الدافئة بكثرة",
			"تناول فيتامين سي",
			"استخدام البخار لتنظيف الجيوب الأنفية",
		},
	},
	{
		Name:       "التهاب الجهاز التنفسي",
		Symptoms:   []string{"سعال", "حمى", "ألم صدر"},
		Specialty:  "طب الباطنة",
		Severity:   SeverityMedium,
		Confidence: 78,
		Recommendations: []string{
			"مراجعة الطبيب خلال 24-48 ساعة",
			"تجنب المجهود البدني",
			"شرب كمية كافية من السوائل",
			"مراقبة درجة الحرارة",
		},
	},
	{
		Name:       "الصداع النصفي",
		Symptoms:   []string{"صداع", "غثيان", "دوار"},
		Specialty:  "طبيب أعصاب",
		Severity:   SeverityMedium,
		Confidence: 72,
		Recommendations: []string{
			"الراحة في مكان مظلم وهادئ",
			"تجنب المحفزات",
			"استخدام كمادات باردة",
			"مراجعة الطبيب المختص",
		},
	},
	{
		Name:       "مشاكل قلبية",
		Symptoms:   []string{"ألم صدر", "ضيق تنفس"},
		Specialty:  "طب القلب - طوارئ",
		Severity:   SeverityUrgent,
		Confidence: 92,
		Recommendations: []string{
			"التوجه فوراً للطوارئ",
			"الاتصال بالإسعاف 123",
			"عدم القيادة بنفسك",
			"تجنب أي مجهود",
		},
		Investigations: []string{
			"تخطيط القلب الكهربائي (ECG) فوري",
			"إنزيمات القلب (Troponin)",
			"صورة أشعة للصدر",
			"فحوصات الدم الأساسية",
		},
		Differential: []string{
			"احتشاء عضلة القلب الحاد (STEMI/NSTEMI)",
			"الذبحة الصدرية غير المستقرة",
			"تسلخ الشريان الأبهر",
			"الانصمام الرئوي الحاد",
		},
		RedFlags: []string{
			"ألم صدر شديد مستمر > 20 دقيقة",
			"ألم ينتشر للذراع الأيسر أو الفك",
			"ضيق تنفس شديد مع تعرق غزير",
			"انخفاض ضغط الدم أو فقدان الوعي",
		},
	},
	{
		Name:       "الالتهاب الرئوي المكتسب من المجتمع",
		Symptoms:   []string{"سعال", "حمى", "ضيق تنفس"},
		Specialty:  "طب الباطنة والأمراض الصدرية",
		Severity:   SeverityHigh,
		Confidence: 85,
		Recommendations: []string{
			"مراجعة الطبيب في نفس اليوم",
			"الراحة التامة وتجنب المجهود",
			"شرب السوائل بكثرة",
			"مراقبة درجة الحرارة والتنفس",
		},
		Investigations: []string{
			"صورة أشعة سينية للصدر",
			"تحليل البلغم والزراعة",
			"تعداد دم كامل مع CRP",
			"غازات الدم الشرياني",
		},
		Differential: []string{
			"الالتهاب الرئوي البكتيري",
			"الالتهاب الرئوي الفيروسي",
			"التهاب الشعب الهوائية الحاد",
			"خراج الرئة",
		},
		RedFlags: []string{
			"حمى > 38.5°C مع رعشة",
			"ضيق تنفس في الراحة",
			"سعال مع بلغم صديدي أو دموي",
			"ألم صدر حاد مع التنفس العميق",
		},
	},
}

// Conditions returns the static condition table in definition order.
func Conditions() []ConditionDefinition {
	return conditionTable
}
