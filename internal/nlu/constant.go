package nlu

// Log prefixes
const (
	LogPrefixClassify = "internal.nlu.Classify"
	LogPrefixExtract  = "internal.nlu.ExtractEntities"
	LogPrefixResolve  = "internal.nlu.Resolve"
)

const (
	DefaultLanguage = "vi"

	// ShortQuestionWords is the largest word count treated as a bare follow-up.
	ShortQuestionWords = 4
	// FragmentWords is the largest word count merged with the previous question.
	FragmentWords = 2

	ClassifierTemperature = 0.1
)

// PromptClassify takes the question and the language.
const PromptClassify = `Phân tích câu hỏi sau và xác định ý định (intent) của người dùng.
Các intent có thể là:
- definition: hỏi về định nghĩa, khái niệm
- safety_advice: hỏi về hướng dẫn an toàn
- location_info: hỏi về thông tin địa điểm
- report_uxo: báo cáo vật nổ
- ask_hotline: hỏi số hotline
- general: câu hỏi chung khác

Câu hỏi: %s
Ngôn ngữ: %s

Trả lời dưới dạng JSON với cấu trúc:
{"intent": "tên_intent", "confidence": số_thập_phân_từ_0_đến_1}`

// PromptExtract takes the question and the language.
const PromptExtract = `Trích xuất thực thể (entities) từ câu hỏi sau:
Câu hỏi: %s
Ngôn ngữ: %s

Các loại thực thể cần trích xuất:
- location: địa điểm, tỉnh thành
- uxo_type: loại vật nổ (bom, mìn, lựu đạn, ...)
- action: hành động

Trả lời dưới dạng JSON với cấu trúc:
{"entities": {"location": [], "uxo_type": [], "action": []}}`
