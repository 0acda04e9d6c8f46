package engine

// responses.go holds every canned Arabic text the engine can emit. Keeping
// the copy in one file makes it easy to tweak without touching the logic.

var greetingReplies = []string{
	"وعليكم السلام ورحمة الله وبركاته! 😊\n\nأهلاً وسهلاً بك، أنا طبيبك الذكي وسأساعدك في تحليل أعراضك الطبية.\n\nكيف يمكنني مساعدتك اليوم؟",
	"مرحباً بك! 👋\n\nسعيد برؤيتك هنا. أنا مساعدك الطبي الذكي، جاهز لتحليل أي أعراض تشعر بها.\n\nما الذي يقلقك صحياً اليوم؟",
	"أهلاً وسهلاً! 🌟\n\nتشرفت بلقائك. أنا هنا لأساعدك في فهم الأعراض وتقديم النصائح الطبية.\n\nحدثني عن حالتك الصحية.",
}

var howAreYouReplies = []string{
	"الحمد لله، أنا بخير وجاهز لمساعدتك! 😊\n\nوأنت كيف حالك؟ هل تشعر بخير أم هناك شيء يقلقك صحياً؟",
	"بخير والحمد لله! شكراً لسؤالك 💙\n\nالأهم هو صحتك أنت. كيف تشعر اليوم؟",
	"أنا تمام وفي أفضل حال لخدمتك! 🌟\n\nما أخبارك الصحية؟ هل كل شيء على ما يرام؟",
}

const weatherReply = "أعتذر، لا أستطيع معرفة حالة الطقس حالياً 🌤️\n\nلكن يمكنني مساعدتك في شيء أهم - صحتك!\n\nهل تشعر بأي أعراض قد تكون متعلقة بتغيرات الطقس مثل الصداع أو احتقان الأنف؟"

var thanksReplies = []string{
	"العفو! سعيد جداً أنني ساعدتك 😊\n\nصحتك أهم شيء، لا تتردد في سؤالي عن أي أعراض أخرى.",
	"وإياك! الله يعافيك ويشفيك 🤲\n\nأنا موجود دائماً لمساعدتك طبياً.",
	"تسلم! دي وظيفتي وأنا سعيد بخدمتك 💙\n\nاعتني بصحتك واتصل بي إذا احتجت أي مساعدة.",
}

const identityReply = "أنا مساعدك الطبي الذكي! 👨‍⚕️🤖\n\n**وظيفتي:**\n• تحليل الأعراض الطبية\n• تقديم التوجيه الأولي\n• مساعدتك في فهم حالتك\n• توجيهك للتخصص المناسب\n\n**كيف أعمل:**\nأحلل الأعراض التي تصفها وأقدم تقييماً أولياً مع التوصيات المناسبة.\n\n💡 **تذكر:** أنا مساعد وليس بديل عن الطبيب المختص!\n\nهل تود البدء في وصف أعراضك؟"

var farewellReplies = []string{
	"مع السلامة! اعتني بصحتك جيداً 🌟\n\nأتمنى لك الصحة والعافية، وأنا موجود إذا احتجتني.",
	"وداعاً! أتمنى أن أكون ساعدتك 💙\n\nلا تتردد في العودة إذا شعرت بأي أعراض.",
	"تصبح على خير! الله يشفيك ويعافيك 🤲\n\nصحتك أمانة، اعتني بها.",
}

const offTopicReply = "أعتذر، أنا مختص في المساعدة الطبية فقط 👨‍⚕️\n\nيمكنني مساعدتك في:\n• تحليل الأعراض\n• التوجيه الطبي\n• النصائح الصحية\n• معلومات عن الأمراض\n\nهل لديك أي أعراض تريد مناقشتها؟"

const clarificationPromptText = `مرحباً! أنا طبيبك الذكي هنا لمساعدتك. 👨‍⚕️

لم أتمكن من تحديد أعراض واضحة من رسالتك. يرجى وصف الأعراض بتفصيل أكثر:

🔍 **مثال على الوصف الجيد:**
• "أشعر بصداع شديد في مقدمة الرأس منذ يومين"
• "لدي ألم في الصدر مع صعوبة في التنفس"
• "أعاني من حمى 38 درجة مع سعال"

📝 **معلومات مهمة:**
• مكان الألم تحديداً
• شدة الألم (من 1-10)
• متى بدأ وكم يستمر
• أي عوامل تزيد أو تقلل منه`

const cannotDetermineText = "عذراً، لا أستطيع تحديد تشخيص دقيق بناءً على الأعراض المتاحة. يُنصح بمراجعة طبيب مختص."

const emergencyBanner = "🚨 **تحذير:** يُنصح بمراجعة الطوارئ فوراً!"

const diagnosisDisclaimer = "⚠️ **تنبيه مهم:** هذا تحليل مساعد ولا يغني عن استشارة طبيب مختص."

var followUpReplies = []string{
	"أشكرك على هذه المعلومات الإضافية القيمة. كل تفصيل يساعد في بناء صورة سريرية أكثر وضوحاً ودقة.",
	"معلومات مهمة جداً من الناحية السريرية. هذا التفاعل الإيجابي يحسن كثيراً من جودة التقييم الطبي.",
	"تقدير عالٍ لتجاوبك المفصل. هذه المعطيات تساعد في استكمال اللوحة السريرية وتأكيد أو نفي الاحتمالات التشخيصية.",
	"ممتاز! هذه التفاصيل الإضافية تعزز من دقة التحليل وتساعد في وضع الخطة العلاجية المناسبة.",
}
