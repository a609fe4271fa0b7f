package model

// 消息角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message 单轮对话消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest 聊天请求
//
// 字段使用 interface{} 接收任意 JSON 形状：校验（类型、长度、历史条目过滤）
// 由 validate 服务完成，而不是交给绑定层——非数组的 conversationHistory
// 要按空历史处理而不是报错。
type ChatRequest struct {
	Message             interface{} `json:"message"`
	ConversationHistory interface{} `json:"conversationHistory"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Response           string `json:"response"`
	ConsultationIntent bool   `json:"consultationIntent"`
}
