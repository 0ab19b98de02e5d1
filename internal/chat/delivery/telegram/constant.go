package telegram

const (
	SessionPrefix = "telegram_"
	Language      = "vi"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandReset = "/reset"
)

const (
	messageStart = "Xin chào! Tôi là trợ lý về bom mìn và vật nổ chưa nổ (UXO).\n\n" +
		"Bạn có thể hỏi tôi về:\n" +
		"- Nhận biết các loại bom mìn, vật nổ\n" +
		"- Cách xử lý an toàn khi phát hiện vật nghi ngờ\n" +
		"- Số hotline báo cáo bom mìn theo tỉnh\n\n" +
		"Gõ /help để xem hướng dẫn, /reset để bắt đầu cuộc trò chuyện mới."
	messageHelp = "Cách sử dụng:\n\n" +
		"Gửi câu hỏi bằng tiếng Việt, ví dụ:\n" +
		"- Bom bi là gì?\n" +
		"- Phát hiện vật lạ nghi là mìn thì phải làm gì?\n" +
		"- Số hotline Quảng Trị là gì?\n\n" +
		"/reset xóa lịch sử hội thoại."
	messageReset = "Đã xóa lịch sử hội thoại. Bạn có thể bắt đầu câu hỏi mới."
	messageError = "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
)
