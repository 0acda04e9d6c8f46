package engine

// SymptomDefinition maps a canonical complaint to the surface keywords that
// reveal it, plus the clinical metadata used by the analyzer. The table is
// immutable after process start.
type SymptomDefinition struct {
	Name              string
	Keywords          []string
	BodySystems       []string
	UrgencyWeight     int // 1..5
	ClinicalQuestions []string
	RedFlags          []string
}

var symptomTable = []SymptomDefinition{
	{
		Name:          "صداع",
		Keywords:      []string{"رأس", "دماغ", "وجع راس", "صداع", "ألم رأس", "شقيقة", "صداع نصفي"},
		BodySystems:   []string{"عصبي"},
		UrgencyWeight: 2,
		ClinicalQuestions: []string{
			"أين بالضبط موقع الصداع؟",
			"هل الصداع نابض، ضاغط، أم طاعن؟",
			"هل يصاحبه غثيان أو قيء؟",
			"هل يزداد مع الضوء أو الصوت؟",
			"هل هناك محفزات معينة للصداع؟",
		},
		RedFlags: []string{
			"صداع مفاجئ شديد",
			"صداع مع حمى وتيبس الرقبة",
			"صداع مع اضطراب الرؤية",
			"صداع مع ضعف في الأطراف",
		},
	},
	{
		Name:          "حمى",
		Keywords:      []string{"حرارة", "سخونة", "حمى", "ارتفاع درجة الحرارة"},
		BodySystems:   []string{"عام"},
		UrgencyWeight: 3,
		ClinicalQuestions: []string{
			"كم درجة حرارتك تقريباً؟",
			"هل تتناول خافض للحرارة؟",
			"هل الحرارة مستمرة أم متقطعة؟",
		},
	},
	{
		Name:          "سعال",
		Keywords:      []string{"كحة", "سعال", "بلغم"},
		BodySystems:   []string{"تنفسي"},
		UrgencyWeight: 2,
		ClinicalQuestions: []string{
			"هل السعال جاف أم مصحوب ببلغم؟",
			"هل يزداد السعال ليلاً؟",
		},
	},
	{
		Name:          "ألم صدر",
		Keywords:      []string{"صدر", "قلب", "ألم صدر", "وجع صدر", "ضغط صدر", "حرقة صدر", "طعن صدر"},
		BodySystems:   []string{"قلبي", "تنفسي", "عضلي"},
		UrgencyWeight: 4,
		ClinicalQuestions: []string{
			"صف طبيعة الألم: هل هو ضاغط، طاعن، أم حارق؟",
			"هل الألم ينتشر لمناطق أخرى مثل الذراع أو الفك أو الظهر؟",
			"هل يزداد الألم مع المجهود أم في الراحة؟",
			"كم تقدر شدة الألم على مقياس من 1 إلى 10؟",
			"هل يصاحب الألم ضيق في التنفس أو تعرق؟",
		},
		RedFlags: []string{
			"ألم صدر مع ضيق تنفس",
			"ألم ينتشر للذراع الأيسر",
			"ألم مع تعرق غزير",
			"ألم مع غثيان وقيء",
		},
	},
	{
		Name:          "ضيق تنفس",
		Keywords:      []string{"نفس", "تنفس", "نهجان", "ضيق تنفس", "صعوبة تنفس", "انقطاع نفس", "اختناق"},
		BodySystems:   []string{"تنفسي", "قلبي"},
		UrgencyWeight: 4,
		ClinicalQuestions: []string{
			"متى بدأ ضيق التنفس: فجأة أم تدريجياً؟",
			"هل يحدث في الراحة أم فقط مع المجهود؟",
			"هل يزداد عند الاستلقاء؟",
			"هل يصاحبه سعال أو بلغم؟",
			"هل تشعر بخفقان في القلب؟",
		},
		RedFlags: []string{
			"ضيق تنفس مفاجئ شديد",
			"عدم القدرة على إكمال الجملة",
			"ازرقاق الشفاه أو الأصابع",
			"ضيق تنفس مع ألم صدر",
		},
	},
	{
		Name:          "غثيان",
		Keywords:      []string{"غثيان", "استفراغ", "قيء"},
		BodySystems:   []string{"هضمي"},
		UrgencyWeight: 2,
		ClinicalQuestions: []string{
			"هل الغثيان مصحوب بقيء فعلي؟",
			"هل يرتبط الغثيان بتناول الطعام؟",
		},
	},
	{
		Name:          "ألم بطن",
		Keywords:      []string{"بطن", "معدة", "مغص", "أمعاء"},
		BodySystems:   []string{"هضمي"},
		UrgencyWeight: 3,
		ClinicalQuestions: []string{
			"أين موقع الألم في البطن تحديداً؟",
			"هل الألم مستمر أم على شكل مغص متقطع؟",
		},
	},
	{
		Name:          "إسهال",
		Keywords:      []string{"إسهال", "براز سائل"},
		BodySystems:   []string{"هضمي"},
		UrgencyWeight: 2,
		ClinicalQuestions: []string{
			"كم مرة في اليوم تقريباً؟",
			"هل يوجد دم أو مخاط في البراز؟",
		},
	},
	{
		Name:          "دوار",
		Keywords:      []string{"دوخة", "توازن", "دوار"},
		BodySystems:   []string{"عصبي"},
		UrgencyWeight: 2,
		ClinicalQuestions: []string{
			"هل الدوار يشبه الدوران أم عدم الاتزان؟",
			"هل يحدث عند تغيير وضعية الجسم؟",
		},
	},
}

// Symptoms returns the static symptom table in definition order.
func Symptoms() []SymptomDefinition {
	return symptomTable
}

func symptomByName(name string) (SymptomDefinition, bool) {
	for _, def := range symptomTable {
		if def.Name == name {
			return def, true
		}
	}
	return SymptomDefinition{}, false
}
